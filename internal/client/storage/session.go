package storage

import "context"

//go:generate moq -out sessionstorage_mock.go . SessionStorage

// SessionData holds the authenticated session persisted between
// invocations. Tokens are stored as received; verification is the
// server's job.
type SessionData struct {
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // epoch seconds from the token's exp claim
}

// SessionStorage defines interface for persisting the current session
type SessionStorage interface {
	// SaveSession stores session data, replacing any existing session
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}
