package app

import (
	"context"
	"time"

	"euroasia/internal/common"
	"euroasia/internal/domain/analytics"
	"euroasia/internal/domain/session"
	"euroasia/internal/security"
)

type Logger interface {
	Info(msg string)
	Error(msg string)
}

// AuthService is the single admin session policy: one credential pair and
// one expiry window, both supplied by configuration.
type AuthService struct {
	creds      security.Credentials
	sessions   session.Store
	analytics  analytics.Repository
	logger     Logger
	sessionTTL time.Duration
}

func NewAuthService(creds security.Credentials, sessions session.Store, analyticsRepo analytics.Repository, logger Logger, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		creds:      creds,
		sessions:   sessions,
		analytics:  analyticsRepo,
		logger:     logger,
		sessionTTL: sessionTTL,
	}
}

type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Login issues a session marker on an exact credential match. Every
// mismatch collapses into one generic unauthorized error; the caller cannot
// tell an unknown username from a wrong password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	if !s.creds.Match(username, password) {
		return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
	}
	token, err := security.GenerateSessionToken()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to generate session token", err)
	}
	now := time.Now().UTC()
	record := session.Record{Token: token, CreatedAt: now, ExpiresAt: now.Add(s.sessionTTL)}
	if err := s.sessions.Save(ctx, record); err != nil {
		return nil, err
	}
	s.logInfo("admin logged in")
	_ = s.analytics.Create(ctx, analytics.Event{Name: "admin.logged_in", Payload: analyticsPayload(ctx, nil)})
	return &Session{Token: token, ExpiresAt: record.ExpiresAt}, nil
}

// Check reports whether the presented token names a stored, unexpired
// session. An empty token, a store miss, and an expired record all read
// as false.
func (s *AuthService) Check(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	record, err := s.sessions.Get(ctx, token)
	if err != nil {
		s.logError("session lookup failed: " + err.Error())
		return false
	}
	if record == nil {
		return false
	}
	return !record.Expired(time.Now().UTC())
}

// Logout invalidates the session immediately. Terminating an absent or
// already-expired session is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return err
	}
	s.logInfo("admin logged out")
	_ = s.analytics.Create(ctx, analytics.Event{Name: "admin.logged_out", Payload: analyticsPayload(ctx, nil)})
	return nil
}

func (s *AuthService) logInfo(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info(msg)
}

func (s *AuthService) logError(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Error(msg)
}
