package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"euroasia/internal/common"
	"euroasia/internal/domain/analytics"
)

type AnalyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Create(ctx context.Context, event analytics.Event) error {
	if event.ID == "" {
		event.ID = common.NewUUID()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to encode event payload", err)
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO analytics_events (id, name, payload, created_at) VALUES ($1, $2, $3, $4)`,
		event.ID, event.Name, payload, event.CreatedAt)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to store event", err)
	}
	return nil
}
