package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"euroasia/internal/common"
	"euroasia/internal/domain/session"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps session records as TTL'd redis keys, so expiry needs
// no sweeping. The stored value is the record's expiry timestamp.
type SessionStore struct {
	client *goredis.Client
}

func NewSessionStore(client *goredis.Client) *SessionStore {
	if client == nil {
		return nil
	}
	return &SessionStore{client: client}
}

func (s *SessionStore) Save(ctx context.Context, record session.Record) error {
	ttl := time.Until(record.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	err := s.client.Set(ctx, sessionKeyPrefix+record.Token, record.ExpiresAt.UTC().Format(time.RFC3339), ttl).Err()
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to save session", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (*session.Record, error) {
	value, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to load session", err)
	}
	expiresAt, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "corrupt session record", err)
	}
	return &session.Record{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return common.NewError(common.CodeInternal, "failed to delete session", err)
	}
	return nil
}
