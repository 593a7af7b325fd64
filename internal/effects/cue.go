package effects

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Cue names a sound.
type Cue string

const (
	CueCelebrate Cue = "celebrate"
	CueEncourage Cue = "encourage"
	CueLevelUp   Cue = "level-up"
	CueLevelDown Cue = "level-down"
	CueStreak    Cue = "streak"
)

// streakThreshold is the streak length at which the streak cue starts.
const streakThreshold = 3

// maxStreakStep caps the streak cue's pitch climb at one octave.
const maxStreakStep = 12

// Build renders cue at the configured volume. streak is only used by
// CueStreak. Unknown cues return nil.
func Build(cue Cue, cfg Config, streak int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch cue {
	case CueCelebrate:
		// Bright two-note chime with an octave overtone.
		first, second := note{noteC6, 90 * time.Millisecond}, note{noteE6, 160 * time.Millisecond}
		over1, over2 := note{2 * first.freq, first.dur}, note{2 * second.freq, second.dur}
		s = beep.Take(rate.N(first.dur+second.dur), beep.Mix(
			withVolume(melody(rate, waveSine, first, second), 0.7),
			withVolume(melody(rate, waveSine, over1, over2), 0.2),
		))
	case CueEncourage:
		// Soft falling pair, never a buzzer.
		s = melody(rate, waveTriangle, note{noteA4, 140 * time.Millisecond}, note{noteE4, 220 * time.Millisecond})
	case CueLevelUp:
		s = withVolume(melody(rate, waveSquare,
			note{noteC5, 80 * time.Millisecond},
			note{noteE5, 80 * time.Millisecond},
			note{noteG5, 80 * time.Millisecond},
			note{noteC6, 200 * time.Millisecond},
		), 0.4)
	case CueLevelDown:
		s = melody(rate, waveTriangle,
			note{noteG4, 120 * time.Millisecond},
			note{noteE4, 120 * time.Millisecond},
			note{noteC4, 240 * time.Millisecond},
		)
	case CueStreak:
		step := min(max(streak-streakThreshold, 0), maxStreakStep)
		freq := noteC5 * math.Pow(2, float64(step)/12)
		s = withVolume(melody(rate, waveSquare, note{freq, 60 * time.Millisecond}), 0.3)
	default:
		return nil
	}
	return withVolume(s, cfg.Volume)
}
