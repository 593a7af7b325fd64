// Package display holds everything the session controller has asked the
// screens to show. Screens read from it; only the controller writes.
package display

import (
	"fmt"

	"github.com/abhisek/mathsprint/internal/difficulty"
	"github.com/abhisek/mathsprint/internal/game"
	"github.com/abhisek/mathsprint/internal/problem"
	"github.com/abhisek/mathsprint/internal/score"
)

// BannerKind selects the banner style.
type BannerKind string

const (
	BannerNone      BannerKind = ""
	BannerCorrect   BannerKind = "correct"
	BannerEncourage BannerKind = "encourage"
	BannerLevelUp   BannerKind = "level-up"
	BannerLevelDown BannerKind = "level-down"
	BannerHighScore BannerKind = "high-score"
)

var (
	cheers        = []string{"Nice!", "Great job!", "You got it!", "Awesome!", "Spot on!"}
	encouragement = []string{"Keep going!", "Almost!", "You'll get the next one!", "Nice try!"}
)

// View is the render state for every screen. It implements
// game.Renderer and game.Effects; the effects show up as banners and
// streak flames.
type View struct {
	screen game.Screen

	problem  *problem.Problem
	feedback *game.Feedback
	score    score.Snapshot
	tier     int
	progress float64

	paused      bool
	pausedScore score.Snapshot

	results   *score.Results
	highScore int
	settings  score.Settings

	banner     string
	bannerKind BannerKind
	flames     int

	// cues rotates through the banner phrases.
	cues int
}

var (
	_ game.Renderer = (*View)(nil)
	_ game.Effects  = (*View)(nil)
)

// New returns a View showing the menu.
func New() *View {
	return &View{screen: game.ScreenMenu, tier: difficulty.MinTier}
}

func (v *View) DisplayProblem(p problem.Problem) {
	v.problem = &p
	v.feedback = nil
	v.clearBanner()
}

func (v *View) ShowFeedback(fb game.Feedback) {
	v.feedback = &fb
	if !fb.Correct {
		v.flames = 0
	}
}

func (v *View) UpdateScoreDisplay(s score.Snapshot) { v.score = s }

func (v *View) UpdateDifficultyDisplay(tier int) { v.tier = difficulty.Clamp(tier) }

func (v *View) UpdateProgress(fraction float64) {
	v.progress = min(max(fraction, 0), 1)
}

func (v *View) ShowScreen(s game.Screen) {
	v.screen = s
	v.paused = false
	v.clearBanner()
	switch s {
	case game.ScreenGame:
		v.results = nil
		v.problem = nil
		v.feedback = nil
		v.flames = 0
	case game.ScreenMenu:
		v.results = nil
	}
}

func (v *View) ShowPauseOverlay(s score.Snapshot) {
	v.paused = true
	v.pausedScore = s
}

func (v *View) HidePauseOverlay() { v.paused = false }

func (v *View) ShowGameOverSummary(r score.Results) {
	v.results = &r
	v.problem = nil
	v.feedback = nil
}

func (v *View) UpdateHighScoreDisplay(highScore int) { v.highScore = highScore }

func (v *View) UpdateSettingsDisplay(s score.Settings) { v.settings = s }

func (v *View) Celebrate() {
	if v.screen == game.ScreenGameOver {
		v.setBanner(BannerHighScore, "New high score!")
		return
	}
	v.setBanner(BannerCorrect, cheers[v.next()%len(cheers)])
}

func (v *View) Encourage() {
	v.setBanner(BannerEncourage, encouragement[v.next()%len(encouragement)])
}

func (v *View) LevelUp() {
	v.setBanner(BannerLevelUp, fmt.Sprintf("Level up! Now %s", difficulty.TierName(v.tier)))
}

func (v *View) LevelDown() {
	v.setBanner(BannerLevelDown, fmt.Sprintf("Let's try %s for a bit", difficulty.TierName(v.tier)))
}

func (v *View) StreakIntensity(n int) { v.flames = n }

// SetSoundEnabled is a no-op; the settings display carries the sound state.
func (v *View) SetSoundEnabled(bool) {}

// Screen returns the screen the controller last asked for.
func (v *View) Screen() game.Screen { return v.screen }

// Problem returns the problem on display, if any.
func (v *View) Problem() (problem.Problem, bool) {
	if v.problem == nil {
		return problem.Problem{}, false
	}
	return *v.problem, true
}

// Feedback returns the feedback for the current problem, or nil while
// an answer is awaited.
func (v *View) Feedback() *game.Feedback { return v.feedback }

func (v *View) Score() score.Snapshot { return v.score }

func (v *View) Tier() int { return v.tier }

func (v *View) Progress() float64 { return v.progress }

// Paused reports whether the pause overlay is up, and the score it shows.
func (v *View) Paused() (bool, score.Snapshot) { return v.paused, v.pausedScore }

// Results returns the game-over summary, or nil before a session ends.
func (v *View) Results() *score.Results { return v.results }

func (v *View) HighScore() int { return v.highScore }

func (v *View) Settings() score.Settings { return v.settings }

// Banner returns the current banner text and kind.
func (v *View) Banner() (string, BannerKind) { return v.banner, v.bannerKind }

// Flames returns the current streak intensity.
func (v *View) Flames() int { return v.flames }

func (v *View) setBanner(kind BannerKind, text string) {
	// A level change outranks the per-answer cheer that precedes it.
	if v.bannerKind == BannerLevelUp || v.bannerKind == BannerLevelDown {
		if kind == BannerCorrect || kind == BannerEncourage {
			return
		}
	}
	v.banner = text
	v.bannerKind = kind
}

func (v *View) clearBanner() {
	v.banner = ""
	v.bannerKind = BannerNone
}

func (v *View) next() int {
	n := v.cues
	v.cues++
	return n
}
