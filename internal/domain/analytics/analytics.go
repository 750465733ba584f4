package analytics

import (
	"context"
	"time"

	"euroasia/internal/common"
)

type Event struct {
	ID        common.UUID
	Name      string
	Payload   map[string]string
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, event Event) error
}
