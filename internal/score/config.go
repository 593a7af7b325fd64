package score

import (
	"log"
	"time"
)

// DefaultKey is the storage key of the player record.
const DefaultKey = "mathsprint:player"

// Config controls scoring and persistence of a Ledger.
type Config struct {
	// Key is the storage key of the player record.
	Key string

	// BasePoints is awarded for every correct answer.
	BasePoints int

	// StreakBonus is added per streak step beyond the first correct answer.
	StreakBonus int

	// LevelMultiplier scales points per tier above 1: tier t earns
	// 1 + (t-1)*(LevelMultiplier-1) times the base award.
	LevelMultiplier float64

	// Logger receives persistence warnings. Nil uses log.Default().
	Logger *log.Logger

	// Now stamps last-played times. Nil uses time.Now.
	Now func() time.Time
}

// DefaultConfig returns the standard scoring rules.
func DefaultConfig() Config {
	return Config{
		Key:             DefaultKey,
		BasePoints:      10,
		StreakBonus:     5,
		LevelMultiplier: 1.5,
	}
}
