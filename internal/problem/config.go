package problem

import (
	"math/rand/v2"
	"time"
)

// Config controls the behavior of the Engine.
type Config struct {
	// Tiers maps a tier number to its problem configuration. Tier 1 must
	// be present; unknown tiers fall back to it.
	Tiers map[int]TierConfig

	// Seed seeds the random source. Zero means seed from the clock.
	Seed uint64
}

// DefaultTiers returns the standard Easy/Medium/Hard tier table.
func DefaultTiers() map[int]TierConfig {
	return map[int]TierConfig{
		1: {
			Min:        1,
			Max:        10,
			Operations: []Operation{OpAdd, OpSubtract},
			MaxFactor:  5,
		},
		2: {
			Min:        1,
			Max:        50,
			Operations: []Operation{OpAdd, OpSubtract, OpMultiply},
			MaxFactor:  10,
		},
		3: {
			Min:           1,
			Max:           100,
			Operations:    []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide},
			MaxFactor:     12,
			AllowNegative: true,
		},
	}
}

// DefaultConfig returns a Config with the standard tier table and a
// clock-derived seed.
func DefaultConfig() Config {
	return Config{
		Tiers: DefaultTiers(),
	}
}

func (c Config) source() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
