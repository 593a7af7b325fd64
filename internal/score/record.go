package score

import (
	"encoding/json"
	"fmt"
	"time"
)

// recordVersion is bumped when the persisted shape changes incompatibly.
const recordVersion = 1

// PlayerRecord is the cross-session state persisted for the player.
type PlayerRecord struct {
	Version        int        `json:"version"`
	HighScore      int        `json:"high_score"`
	GamesPlayed    int        `json:"games_played"`
	TotalAttempted int        `json:"total_attempted"`
	TotalCorrect   int        `json:"total_correct"`
	StartingTier   int        `json:"starting_tier"`
	SoundEnabled   bool       `json:"sound_enabled"`
	LastPlayed     *time.Time `json:"last_played,omitempty"`
}

// Settings are the player preferences stored in the record.
type Settings struct {
	SoundEnabled bool
	StartingTier int
}

// DefaultRecord returns the record of a player who has never played.
func DefaultRecord() PlayerRecord {
	return PlayerRecord{
		Version:      recordVersion,
		StartingTier: minTier,
		SoundEnabled: true,
	}
}

// Settings returns the preference part of the record.
func (r PlayerRecord) Settings() Settings {
	return Settings{
		SoundEnabled: r.SoundEnabled,
		StartingTier: r.StartingTier,
	}
}

// LifetimeAccuracy returns the rounded lifetime accuracy percentage.
func (r PlayerRecord) LifetimeAccuracy() int {
	return accuracy(r.TotalCorrect, r.TotalAttempted)
}

// decodeRecord parses persisted data. Fields missing from data keep
// their defaults; out-of-range values are pulled back into range.
func decodeRecord(data []byte) (PlayerRecord, error) {
	rec := DefaultRecord()
	if err := json.Unmarshal(data, &rec); err != nil {
		return DefaultRecord(), fmt.Errorf("decode player record: %w", err)
	}
	if rec.Version > recordVersion {
		return DefaultRecord(), fmt.Errorf("player record version %d is newer than supported %d", rec.Version, recordVersion)
	}
	rec.Version = recordVersion
	rec.HighScore = max(rec.HighScore, 0)
	rec.GamesPlayed = max(rec.GamesPlayed, 0)
	rec.TotalAttempted = max(rec.TotalAttempted, 0)
	rec.TotalCorrect = min(max(rec.TotalCorrect, 0), rec.TotalAttempted)
	rec.StartingTier = clampTier(rec.StartingTier)
	return rec, nil
}

const (
	minTier = 1
	maxTier = 3
)

func clampTier(tier int) int {
	return min(max(tier, minTier), maxTier)
}
