package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"euroasia/internal/common"
	"euroasia/internal/domain/analytics"
	"euroasia/internal/domain/session"
	"euroasia/internal/security"
)

type fakeSessionStore struct {
	mu      sync.Mutex
	records map[string]session.Record
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{records: make(map[string]session.Record)}
}

func (s *fakeSessionStore) Save(ctx context.Context, record session.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Token] = record
	return nil
}

func (s *fakeSessionStore) Get(ctx context.Context, token string) (*session.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[token]
	if !ok {
		return nil, nil
	}
	copy := record
	return &copy, nil
}

func (s *fakeSessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, token)
	return nil
}

type noopAnalyticsRepo struct{}

func (noopAnalyticsRepo) Create(ctx context.Context, event analytics.Event) error {
	return nil
}

func newTestAuthService(store session.Store) *AuthService {
	creds := security.NewCredentials("admin", "s3cret")
	return NewAuthService(creds, store, noopAnalyticsRepo{}, nil, 24*time.Hour)
}

func TestAuthServiceLogin_Success(t *testing.T) {
	store := newFakeSessionStore()
	service := newTestAuthService(store)

	result, err := service.Login(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected session token")
	}
	record, ok := store.records[result.Token]
	if !ok {
		t.Fatal("expected session to be stored")
	}
	ttl := time.Until(record.ExpiresAt)
	if ttl < 23*time.Hour || ttl > 24*time.Hour {
		t.Fatalf("expected ~24h expiry, got %v", ttl)
	}
}

func TestAuthServiceLogin_RejectsMismatches(t *testing.T) {
	service := newTestAuthService(newFakeSessionStore())
	pairs := [][2]string{
		{"admin", "wrong"},
		{"Admin", "s3cret"},
		{"ADMIN", "s3cret"},
		{"someone", "s3cret"},
		{"", ""},
		{"admin", ""},
	}
	for _, pair := range pairs {
		_, err := service.Login(context.Background(), pair[0], pair[1])
		if !common.Is(err, common.CodeUnauthorized) {
			t.Fatalf("expected unauthorized for %q/%q, got %v", pair[0], pair[1], err)
		}
	}
}

func TestAuthServiceCheck(t *testing.T) {
	store := newFakeSessionStore()
	service := newTestAuthService(store)

	if service.Check(context.Background(), "") {
		t.Fatal("expected empty token to be invalid")
	}
	if service.Check(context.Background(), "unknown") {
		t.Fatal("expected unknown token to be invalid")
	}

	result, err := service.Login(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !service.Check(context.Background(), result.Token) {
		t.Fatal("expected fresh session to be valid")
	}
}

func TestAuthServiceCheck_ExpiredSession(t *testing.T) {
	store := newFakeSessionStore()
	service := newTestAuthService(store)
	now := time.Now().UTC()
	store.records["stale"] = session.Record{Token: "stale", CreatedAt: now.Add(-25 * time.Hour), ExpiresAt: now.Add(-time.Hour)}

	if service.Check(context.Background(), "stale") {
		t.Fatal("expected expired session to be invalid")
	}
}

func TestAuthServiceLogout(t *testing.T) {
	store := newFakeSessionStore()
	service := newTestAuthService(store)

	result, err := service.Login(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := service.Logout(context.Background(), result.Token); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if service.Check(context.Background(), result.Token) {
		t.Fatal("expected session to be terminated")
	}
	if err := service.Logout(context.Background(), "never-issued"); err != nil {
		t.Fatalf("expected logout without session to succeed, got %v", err)
	}
	if err := service.Logout(context.Background(), ""); err != nil {
		t.Fatalf("expected logout with empty token to succeed, got %v", err)
	}
}
