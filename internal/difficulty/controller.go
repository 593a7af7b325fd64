package difficulty

import "time"

// Controller tracks answer streaks and maps them to a difficulty tier.
// It is not safe for concurrent use; the game loop owns it.
type Controller struct {
	tier            int
	correctStreak   int
	incorrectStreak int
	last            *Adjustment
	now             func() time.Time
}

// New creates a Controller at startTier (clamped).
func New(startTier int) *Controller {
	return &Controller{
		tier: Clamp(startTier),
		now:  time.Now,
	}
}

// WithClock replaces the clock used to stamp adjustments.
func (c *Controller) WithClock(now func() time.Time) *Controller {
	c.now = now
	return c
}

// Tier returns the current tier.
func (c *Controller) Tier() int {
	return c.tier
}

// Streaks returns the current correct and incorrect streak lengths.
// At most one of them is non-zero.
func (c *Controller) Streaks() (correct, incorrect int) {
	return c.correctStreak, c.incorrectStreak
}

// LastAdjustment returns the most recent tier change, or nil.
func (c *Controller) LastAdjustment() *Adjustment {
	if c.last == nil {
		return nil
	}
	adj := *c.last
	return &adj
}

// RecordCorrect counts a correct answer and moves up a tier when the
// streak reaches LevelUpThreshold. At MaxTier the streak keeps growing
// without effect.
func (c *Controller) RecordCorrect() Change {
	c.correctStreak++
	c.incorrectStreak = 0

	if c.correctStreak >= LevelUpThreshold && c.tier < MaxTier {
		return c.move(c.tier+1, DirectionUp)
	}
	return c.unchanged()
}

// RecordIncorrect counts an incorrect answer and moves down a tier when
// the streak reaches LevelDownThreshold. At MinTier the streak keeps
// growing without effect.
func (c *Controller) RecordIncorrect() Change {
	c.incorrectStreak++
	c.correctStreak = 0

	if c.incorrectStreak >= LevelDownThreshold && c.tier > MinTier {
		return c.move(c.tier-1, DirectionDown)
	}
	return c.unchanged()
}

// SetDifficulty jumps to tier (clamped) and clears both streaks.
func (c *Controller) SetDifficulty(tier int) {
	c.tier = Clamp(tier)
	c.correctStreak = 0
	c.incorrectStreak = 0
}

// Reset is SetDifficulty plus forgetting the last adjustment.
func (c *Controller) Reset(tier int) {
	c.SetDifficulty(tier)
	c.last = nil
}

func (c *Controller) move(to int, dir Direction) Change {
	from := c.tier
	c.tier = to
	c.correctStreak = 0
	c.incorrectStreak = 0
	c.last = &Adjustment{
		Direction: dir,
		From:      from,
		To:        to,
		At:        c.now(),
	}
	return Change{
		Changed:   true,
		Previous:  from,
		New:       to,
		Direction: dir,
		Name:      TierName(to),
	}
}

func (c *Controller) unchanged() Change {
	return Change{
		Previous: c.tier,
		New:      c.tier,
		Name:     TierName(c.tier),
	}
}
