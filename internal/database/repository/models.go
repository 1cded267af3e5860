package repository

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// User represents a users row.
type User struct {
	ID           string
	Name         string
	PasswordHash string
	AvatarURL    *string
	CreatedAt    time.Time
}

// Session represents a sessions row.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// Active reports whether the session is usable at now.
func (s Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// QuickAction represents a quick_actions row.
type QuickAction struct {
	ID        string
	Route     string
	LabelID   string
	Target    string
	SortOrder int
}
