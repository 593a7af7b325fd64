package effects

import (
	"os"
	"strconv"
)

// Config controls sound output.
type Config struct {
	// Enabled is a hard switch. When false no audio device is opened and
	// the in-game sound setting has no effect.
	Enabled bool

	// Volume is the master volume in [0, 1].
	Volume float64

	SampleRate int
}

// DefaultConfig returns sound on at a moderate volume.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.6,
		SampleRate: 44100,
	}
}

// LoadConfig reads overrides from the environment:
// MATHSPRINT_SOUND (bool) and MATHSPRINT_VOLUME (0-100).
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("MATHSPRINT_SOUND"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = on
		}
	}

	if v := os.Getenv("MATHSPRINT_VOLUME"); v != "" {
		if pct, err := strconv.Atoi(v); err == nil {
			cfg.Volume = min(max(float64(pct)/100, 0), 1)
		}
	}

	return cfg
}
