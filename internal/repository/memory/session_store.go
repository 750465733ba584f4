package memory

import (
	"context"
	"sync"
	"time"

	"euroasia/internal/domain/session"
)

// SessionStore keeps session records in a mutex-guarded map. Expired
// entries are dropped on read and reaped by Sweep, which main runs on a
// cron schedule.
type SessionStore struct {
	mu      sync.Mutex
	records map[string]session.Record
}

func NewSessionStore() *SessionStore {
	return &SessionStore{records: make(map[string]session.Record)}
}

func (s *SessionStore) Save(ctx context.Context, record session.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Token] = record
	return nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (*session.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[token]
	if !ok {
		return nil, nil
	}
	if record.Expired(time.Now().UTC()) {
		delete(s.records, token)
		return nil, nil
	}
	copy := record
	return &copy, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, token)
	return nil
}

func (s *SessionStore) Sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, record := range s.records {
		if record.Expired(now) {
			delete(s.records, token)
		}
	}
}
