package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mathsprint/internal/game"
)

const sessionsTable = "sessions"

var sessionColumns = []string{
	"id", "started_at", "ended_at", "score", "solved", "attempted",
	"best_streak", "accuracy", "start_tier", "end_tier", "new_high_score",
}

// sessionRepo implements SessionRepo with ent's SQL builder.
type sessionRepo struct {
	drv *entsql.Driver
}

func (r *sessionRepo) AppendSession(ctx context.Context, rec SessionRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("append session: empty id")
	}
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(
			rec.ID,
			rec.StartedAt.UnixMilli(),
			rec.EndedAt.UnixMilli(),
			rec.Score,
			rec.Solved,
			rec.Attempted,
			rec.BestStreak,
			rec.Accuracy,
			rec.StartTier,
			rec.EndTier,
			rec.NewHighScore,
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save session %s: %w", rec.ID, err)
	}
	return nil
}

func (r *sessionRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(sessionColumns...).
		From(entsql.Table(sessionsTable)).
		OrderBy(entsql.Desc("ended_at"), entsql.Desc("started_at"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var (
			rec            SessionRecord
			started, ended int64
		)
		err := rows.Scan(
			&rec.ID, &started, &ended, &rec.Score, &rec.Solved, &rec.Attempted,
			&rec.BestStreak, &rec.Accuracy, &rec.StartTier, &rec.EndTier,
			&rec.NewHighScore,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.StartedAt = time.UnixMilli(started)
		rec.EndedAt = time.UnixMilli(ended)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

func (r *sessionRepo) ClearSessions(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(sessionsTable).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	return nil
}

// SessionHistory records finished game sessions in a SessionRepo.
type SessionHistory struct {
	repo SessionRepo
}

var _ game.History = (*SessionHistory)(nil)

// NewSessionHistory returns a game.History backed by repo.
func NewSessionHistory(repo SessionRepo) *SessionHistory {
	return &SessionHistory{repo: repo}
}

func (h *SessionHistory) AppendSession(ctx context.Context, s game.SessionSummary) error {
	return h.repo.AppendSession(ctx, SessionRecord{
		ID:           s.ID,
		StartedAt:    s.StartedAt,
		EndedAt:      s.EndedAt,
		Score:        s.Score,
		Solved:       s.Solved,
		Attempted:    s.Attempted,
		BestStreak:   s.BestStreak,
		Accuracy:     s.Accuracy,
		StartTier:    s.StartTier,
		EndTier:      s.EndTier,
		NewHighScore: s.NewHighScore,
	})
}
