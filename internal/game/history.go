package game

import (
	"context"
	"time"
)

// SessionSummary describes one finished session.
type SessionSummary struct {
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

// History records finished sessions.
type History interface {
	AppendSession(ctx context.Context, s SessionSummary) error
}
