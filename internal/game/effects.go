package game

// Effects receives semantic cues. Implementations decide how (or whether)
// to render them: tones, banners, nothing.
type Effects interface {
	Celebrate()
	Encourage()
	LevelUp()
	LevelDown()
	StreakIntensity(n int)
	SetSoundEnabled(enabled bool)
}

// NopEffects ignores every cue.
type NopEffects struct{}

func (NopEffects) Celebrate()           {}
func (NopEffects) Encourage()           {}
func (NopEffects) LevelUp()             {}
func (NopEffects) LevelDown()           {}
func (NopEffects) StreakIntensity(int)  {}
func (NopEffects) SetSoundEnabled(bool) {}

// MultiEffects fans every cue out to each member in order.
type MultiEffects []Effects

func (m MultiEffects) Celebrate() {
	for _, e := range m {
		e.Celebrate()
	}
}

func (m MultiEffects) Encourage() {
	for _, e := range m {
		e.Encourage()
	}
}

func (m MultiEffects) LevelUp() {
	for _, e := range m {
		e.LevelUp()
	}
}

func (m MultiEffects) LevelDown() {
	for _, e := range m {
		e.LevelDown()
	}
}

func (m MultiEffects) StreakIntensity(n int) {
	for _, e := range m {
		e.StreakIntensity(n)
	}
}

func (m MultiEffects) SetSoundEnabled(enabled bool) {
	for _, e := range m {
		e.SetSoundEnabled(enabled)
	}
}
