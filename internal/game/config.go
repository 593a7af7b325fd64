package game

import "time"

// Config controls session pacing.
type Config struct {
	// ProblemsPerSession is the fixed session length.
	ProblemsPerSession int

	// CorrectDelay is how long feedback stays up after a correct answer.
	CorrectDelay time.Duration

	// IncorrectDelay is how long feedback stays up after an incorrect
	// answer. It is longer so the player can read the correct answer.
	IncorrectDelay time.Duration
}

// DefaultConfig returns the standard 20-problem session pacing.
func DefaultConfig() Config {
	return Config{
		ProblemsPerSession: 20,
		CorrectDelay:       1200 * time.Millisecond,
		IncorrectDelay:     2500 * time.Millisecond,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.ProblemsPerSession <= 0 {
		c.ProblemsPerSession = def.ProblemsPerSession
	}
	if c.CorrectDelay < 0 {
		c.CorrectDelay = def.CorrectDelay
	}
	if c.IncorrectDelay < 0 {
		c.IncorrectDelay = def.IncorrectDelay
	}
	return c
}
