package game

import (
	"github.com/abhisek/mathsprint/internal/difficulty"
	"github.com/abhisek/mathsprint/internal/problem"
	"github.com/abhisek/mathsprint/internal/score"
)

// Screen identifies a top-level screen of the presentation layer.
type Screen string

const (
	ScreenMenu     Screen = "menu"
	ScreenGame     Screen = "game"
	ScreenGameOver Screen = "gameover"
)

// Feedback describes the outcome of one answer.
type Feedback struct {
	Correct bool

	// Answer is what the player typed.
	Answer string

	// CorrectAnswer is shown when Correct is false.
	CorrectAnswer float64

	Points int
	Streak int

	// Level is the difficulty change caused by this answer.
	Level difficulty.Change
}

// Renderer is the presentation sink. The controller only writes to it;
// player input comes back through the controller's event methods.
type Renderer interface {
	DisplayProblem(p problem.Problem)
	ShowFeedback(fb Feedback)
	UpdateScoreDisplay(s score.Snapshot)
	UpdateDifficultyDisplay(tier int)

	// UpdateProgress reports the fraction of the session answered, in [0, 1].
	UpdateProgress(fraction float64)

	ShowScreen(s Screen)
	ShowPauseOverlay(s score.Snapshot)
	HidePauseOverlay()
	ShowGameOverSummary(r score.Results)
	UpdateHighScoreDisplay(highScore int)
	UpdateSettingsDisplay(s score.Settings)
}
