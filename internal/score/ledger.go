package score

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"
)

// Snapshot is the current session's score state.
type Snapshot struct {
	Score      int
	Streak     int
	BestStreak int
	Correct    int
	Attempted  int
	Accuracy   int
}

// Update is returned from UpdateScore.
type Update struct {
	Snapshot
	PointsEarned int
	WasCorrect   bool
}

// Results summarizes a finished session.
type Results struct {
	FinalScore     int
	ProblemsSolved int
	TotalProblems  int
	BestStreak     int
	Accuracy       int
	IsNewHighScore bool
	HighScore      int
}

// Ledger accumulates session score and owns the persisted player record.
// It is not safe for concurrent use; the game loop owns it.
type Ledger struct {
	cfg     Config
	storage Storage
	logger  *log.Logger
	now     func() time.Time

	record PlayerRecord

	score      int
	streak     int
	bestStreak int
	correct    int
	attempted  int
}

// NewLedger creates a Ledger and loads the player record from storage.
// Missing or unreadable data leaves the defaults in place.
func NewLedger(storage Storage, cfg Config) *Ledger {
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}
	l := &Ledger{
		cfg:     cfg,
		storage: storage,
		logger:  cfg.Logger,
		now:     cfg.Now,
		record:  DefaultRecord(),
	}
	if l.logger == nil {
		l.logger = log.Default()
	}
	if l.now == nil {
		l.now = time.Now
	}
	l.load()
	return l
}

// Points computes the award for a correct answer at the given streak
// length (including this answer) and tier.
func (c Config) Points(streak, tier int) int {
	if tier < 1 {
		tier = 1
	}
	base := float64(c.BasePoints + max(0, streak-1)*c.StreakBonus)
	scale := 1 + float64(tier-1)*(c.LevelMultiplier-1)
	return int(math.Round(base * scale))
}

// UpdateScore records one answer given at tier.
func (l *Ledger) UpdateScore(correct bool, tier int) Update {
	l.attempted++

	points := 0
	if correct {
		l.streak++
		l.correct++
		if l.streak > l.bestStreak {
			l.bestStreak = l.streak
		}
		points = l.cfg.Points(l.streak, tier)
		l.score += points
	} else {
		l.streak = 0
	}

	return Update{
		Snapshot:     l.Snapshot(),
		PointsEarned: points,
		WasCorrect:   correct,
	}
}

// Snapshot returns the current session state.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{
		Score:      l.score,
		Streak:     l.streak,
		BestStreak: l.bestStreak,
		Correct:    l.correct,
		Attempted:  l.attempted,
		Accuracy:   accuracy(l.correct, l.attempted),
	}
}

// EndGame folds the session into the player record, persists it and
// returns the session results. The high score only moves when the
// session score strictly exceeds it.
func (l *Ledger) EndGame() Results {
	l.record.GamesPlayed++
	l.record.TotalAttempted += l.attempted
	l.record.TotalCorrect += l.correct
	played := l.now()
	l.record.LastPlayed = &played

	newHigh := l.score > l.record.HighScore
	if newHigh {
		l.record.HighScore = l.score
	}
	l.persist()

	return Results{
		FinalScore:     l.score,
		ProblemsSolved: l.correct,
		TotalProblems:  l.attempted,
		BestStreak:     l.bestStreak,
		Accuracy:       accuracy(l.correct, l.attempted),
		IsNewHighScore: newHigh,
		HighScore:      l.record.HighScore,
	}
}

// ResetGame clears the session counters. The player record is untouched.
func (l *Ledger) ResetGame() {
	l.score = 0
	l.streak = 0
	l.bestStreak = 0
	l.correct = 0
	l.attempted = 0
}

// ResetAllData restores the player record to defaults, including the
// high score. Storage that implements Deleter has the record removed;
// other storage gets the default record written over it.
func (l *Ledger) ResetAllData() error {
	l.ResetGame()
	l.record = DefaultRecord()

	if d, ok := l.storage.(Deleter); ok {
		if err := d.Delete(context.Background(), l.cfg.Key); err != nil {
			return fmt.Errorf("delete player record: %w", err)
		}
		return nil
	}
	return l.Flush()
}

// Record returns a copy of the player record.
func (l *Ledger) Record() PlayerRecord {
	rec := l.record
	if rec.LastPlayed != nil {
		t := *rec.LastPlayed
		rec.LastPlayed = &t
	}
	return rec
}

// HighScore returns the persisted high score.
func (l *Ledger) HighScore() int {
	return l.record.HighScore
}

// Settings returns the player's preferences.
func (l *Ledger) Settings() Settings {
	return l.record.Settings()
}

// SetSoundEnabled stores the sound preference.
func (l *Ledger) SetSoundEnabled(enabled bool) {
	l.record.SoundEnabled = enabled
	l.persist()
}

// SetStartingTier stores the starting tier preference (clamped).
func (l *Ledger) SetStartingTier(tier int) {
	l.record.StartingTier = clampTier(tier)
	l.persist()
}

func (l *Ledger) load() {
	if l.storage == nil {
		return
	}
	data, err := l.storage.Load(context.Background(), l.cfg.Key)
	if err != nil {
		l.logger.Printf("warning: load player record: %v", err)
		return
	}
	if data == nil {
		return
	}
	rec, err := decodeRecord(data)
	if err != nil {
		l.logger.Printf("warning: %v; using defaults", err)
		return
	}
	l.record = rec
}

// Flush writes the full record and reports any failure.
func (l *Ledger) Flush() error {
	if l.storage == nil {
		return nil
	}
	data, err := json.Marshal(l.record)
	if err != nil {
		return fmt.Errorf("encode player record: %w", err)
	}
	if err := l.storage.Save(context.Background(), l.cfg.Key, data); err != nil {
		return fmt.Errorf("save player record: %w", err)
	}
	return nil
}

// persist is Flush for gameplay paths: failures are logged and the
// in-memory record stays authoritative.
func (l *Ledger) persist() {
	if err := l.Flush(); err != nil {
		l.logger.Printf("warning: %v", err)
	}
}

func accuracy(correct, attempted int) int {
	if attempted == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(attempted)))
}
