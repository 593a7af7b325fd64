package store

import (
	"context"
	"time"
)

// KVRepo stores opaque values under string keys.
type KVRepo interface {
	// Load returns the value for key, or nil if none exists.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save inserts or replaces the value for key.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// SessionRecord is the summary of one finished play session.
type SessionRecord struct {
	ID           string
	StartedAt    time.Time
	EndedAt      time.Time
	Score        int
	Solved       int
	Attempted    int
	BestStreak   int
	Accuracy     int // percent
	StartTier    int
	EndTier      int
	NewHighScore bool
}

// Duration is the wall time the session lasted.
func (r SessionRecord) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// SessionRepo manages finished session history.
type SessionRepo interface {
	// AppendSession stores a finished session.
	AppendSession(ctx context.Context, rec SessionRecord) error

	// RecentSessions returns up to limit sessions, newest first.
	// A limit of 0 returns all of them.
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)

	// ClearSessions deletes all history.
	ClearSessions(ctx context.Context) error
}
