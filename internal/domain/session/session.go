package session

import (
	"context"
	"time"
)

// CookieName carries the admin session token between browser and server.
const CookieName = "admin_session"

// Record is a server-side session marker. The token is opaque to the
// client; validity is decided entirely by the store.
type Record struct {
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (r Record) Expired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}

type Store interface {
	Save(ctx context.Context, record Record) error
	Get(ctx context.Context, token string) (*Record, error)
	Delete(ctx context.Context, token string) error
}
