package effects

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Output plays streamers.
type Output interface {
	Play(s beep.Streamer)
}

// Speaker plays through the system audio device. Streams are added to a
// single mixer so cues can overlap.
type Speaker struct {
	mixer *beep.Mixer
}

var (
	speakerOnce sync.Once
	speakerOut  *Speaker
	speakerErr  error
)

// OpenSpeaker initializes the audio device. The device is process-wide,
// so every call returns the same Speaker.
func OpenSpeaker(cfg Config) (*Speaker, error) {
	speakerOnce.Do(func() {
		rate := beep.SampleRate(cfg.SampleRate)
		if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
			speakerErr = fmt.Errorf("init speaker: %w", err)
			return
		}
		speakerOut = &Speaker{mixer: &beep.Mixer{}}
		speaker.Play(speakerOut.mixer)
	})
	return speakerOut, speakerErr
}

func (s *Speaker) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}

// Player turns game cues into sounds. It is muted when the config
// disables sound, when the player turns sound off, or when it has no
// output.
type Player struct {
	cfg Config
	out Output
	on  bool
}

// NewPlayer returns a Player writing to out. out may be nil.
func NewPlayer(cfg Config, out Output) *Player {
	return &Player{cfg: cfg, out: out, on: cfg.Enabled}
}

// Enabled reports whether cues are currently audible.
func (p *Player) Enabled() bool {
	return p.cfg.Enabled && p.on && p.out != nil
}

func (p *Player) SetSoundEnabled(enabled bool) { p.on = enabled }

func (p *Player) Celebrate() { p.play(CueCelebrate, 0) }
func (p *Player) Encourage() { p.play(CueEncourage, 0) }
func (p *Player) LevelUp()   { p.play(CueLevelUp, 0) }
func (p *Player) LevelDown() { p.play(CueLevelDown, 0) }

// StreakIntensity plays a rising tick once the streak reaches three.
func (p *Player) StreakIntensity(n int) {
	if n < streakThreshold {
		return
	}
	p.play(CueStreak, n)
}

func (p *Player) play(cue Cue, streak int) {
	if !p.Enabled() {
		return
	}
	if s := Build(cue, p.cfg, streak); s != nil {
		p.out.Play(s)
	}
}
