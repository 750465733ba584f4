package job

import (
	"context"

	"euroasia/internal/common"
)

type Repository interface {
	Create(ctx context.Context, posting Job) (*Job, error)
	Update(ctx context.Context, posting Job) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	Delete(ctx context.Context, id common.UUID) error
	List(ctx context.Context) ([]Job, error)
}
