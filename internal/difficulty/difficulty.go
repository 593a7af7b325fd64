package difficulty

import "time"

const (
	MinTier = 1
	MaxTier = 3

	// LevelUpThreshold is the number of consecutive correct answers that
	// moves the player up one tier.
	LevelUpThreshold = 3

	// LevelDownThreshold is the number of consecutive incorrect answers that
	// moves the player down one tier.
	LevelDownThreshold = 3
)

// Direction records which way a tier change went.
type Direction string

const (
	DirectionNone Direction = ""
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Adjustment is the most recent tier change.
type Adjustment struct {
	Direction Direction
	From      int
	To        int
	At        time.Time
}

// Change is returned from every recorded answer.
type Change struct {
	// Changed is true when the answer moved the tier.
	Changed bool

	Previous  int
	New       int
	Direction Direction

	// Name is the display name of New.
	Name string
}

// TierName returns the display name of a tier.
func TierName(tier int) string {
	switch Clamp(tier) {
	case 2:
		return "Medium"
	case 3:
		return "Hard"
	default:
		return "Easy"
	}
}

// Clamp restricts tier to [MinTier, MaxTier].
func Clamp(tier int) int {
	if tier < MinTier {
		return MinTier
	}
	if tier > MaxTier {
		return MaxTier
	}
	return tier
}
