package game

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathsprint/internal/difficulty"
	"github.com/abhisek/mathsprint/internal/problem"
	"github.com/abhisek/mathsprint/internal/score"
)

var (
	ErrNoRenderer   = errors.New("game: renderer is required")
	ErrNoEngine     = errors.New("game: problem engine is required")
	ErrNoDifficulty = errors.New("game: difficulty controller is required")
	ErrNoLedger     = errors.New("game: score ledger is required")
	ErrNoScheduler  = errors.New("game: scheduler is required")
)

// Deps are the controller's collaborators. Effects, History, Logger and
// Now are optional.
type Deps struct {
	Renderer   Renderer
	Engine     *problem.Engine
	Difficulty *difficulty.Controller
	Ledger     *score.Ledger
	Scheduler  Scheduler
	Effects    Effects
	History    History
	Logger     *log.Logger
	Now        func() time.Time
}

// SettingsChange carries a partial settings update. Nil fields are left
// unchanged.
type SettingsChange struct {
	SoundEnabled *bool
	StartingTier *int
}

// Controller orchestrates a play session: it turns player events into
// calls on the problem engine, difficulty controller and score ledger,
// and reports the outcome to the renderer and effects.
//
// Controller is not safe for concurrent use. All methods, including
// scheduler callbacks, must run on one loop.
type Controller struct {
	cfg      Config
	renderer Renderer
	engine   *problem.Engine
	diff     *difficulty.Controller
	ledger   *score.Ledger
	sched    Scheduler
	effects  Effects
	history  History
	logger   *log.Logger
	now      func() time.Time

	state    State
	resumeTo State
	current  *problem.Problem

	// answered counts problems shown this session, including the current one.
	answered int

	// turn invalidates scheduled advances. It changes on every submit and
	// every session boundary.
	turn       uint64
	advanceDue bool

	sessionID string
	startedAt time.Time
	startTier int
}

// New builds a controller in the menu state.
func New(cfg Config, deps Deps) (*Controller, error) {
	switch {
	case deps.Renderer == nil:
		return nil, ErrNoRenderer
	case deps.Engine == nil:
		return nil, ErrNoEngine
	case deps.Difficulty == nil:
		return nil, ErrNoDifficulty
	case deps.Ledger == nil:
		return nil, ErrNoLedger
	case deps.Scheduler == nil:
		return nil, ErrNoScheduler
	}

	c := &Controller{
		cfg:      cfg.withDefaults(),
		renderer: deps.Renderer,
		engine:   deps.Engine,
		diff:     deps.Difficulty,
		ledger:   deps.Ledger,
		sched:    deps.Scheduler,
		effects:  deps.Effects,
		history:  deps.History,
		logger:   deps.Logger,
		now:      deps.Now,
		state:    StateMenu,
	}
	if c.effects == nil {
		c.effects = NopEffects{}
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c, nil
}

// Init renders the menu with the persisted high score and settings.
func (c *Controller) Init() {
	settings := c.ledger.Settings()
	c.effects.SetSoundEnabled(settings.SoundEnabled)
	c.renderer.ShowScreen(ScreenMenu)
	c.renderer.UpdateHighScoreDisplay(c.ledger.HighScore())
	c.renderer.UpdateSettingsDisplay(settings)
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// CurrentProblem returns the problem on screen, if any.
func (c *Controller) CurrentProblem() (problem.Problem, bool) {
	if c.current == nil {
		return problem.Problem{}, false
	}
	return *c.current, true
}

// Position returns the 1-based index of the current problem and the
// session length.
func (c *Controller) Position() (int, int) {
	return c.answered, c.cfg.ProblemsPerSession
}

// Start begins a session from the menu.
func (c *Controller) Start() {
	if c.state != StateMenu {
		return
	}
	c.startSession()
}

// PlayAgain begins a fresh session from the game-over screen.
func (c *Controller) PlayAgain() {
	if c.state != StateGameOver {
		return
	}
	c.startSession()
}

// GoToMenu returns from the game-over screen to the menu.
func (c *Controller) GoToMenu() {
	if c.state != StateGameOver {
		return
	}
	c.state = StateMenu
	c.renderer.ShowScreen(ScreenMenu)
	c.renderer.UpdateHighScoreDisplay(c.ledger.HighScore())
	c.renderer.UpdateSettingsDisplay(c.ledger.Settings())
}

// Submit grades answer against the current problem. It is ignored
// unless a problem is awaiting an answer.
func (c *Controller) Submit(answer string) {
	if c.state != StatePlaying || c.current == nil {
		return
	}
	p := *c.current

	correct := problem.CheckAnswer(answer, p.CorrectAnswer)
	upd := c.ledger.UpdateScore(correct, p.Difficulty)

	var change difficulty.Change
	if correct {
		change = c.diff.RecordCorrect()
	} else {
		change = c.diff.RecordIncorrect()
	}

	c.state = StateFeedback
	c.renderer.ShowFeedback(Feedback{
		Correct:       correct,
		Answer:        answer,
		CorrectAnswer: p.CorrectAnswer,
		Points:        upd.PointsEarned,
		Streak:        upd.Streak,
		Level:         change,
	})
	c.renderer.UpdateScoreDisplay(upd.Snapshot)
	c.renderer.UpdateProgress(c.progress())
	if change.Changed {
		c.renderer.UpdateDifficultyDisplay(change.New)
	}

	if correct {
		c.effects.Celebrate()
		c.effects.StreakIntensity(upd.Streak)
	} else {
		c.effects.Encourage()
	}
	switch change.Direction {
	case difficulty.DirectionUp:
		c.effects.LevelUp()
	case difficulty.DirectionDown:
		c.effects.LevelDown()
	}

	delay := c.cfg.IncorrectDelay
	if correct {
		delay = c.cfg.CorrectDelay
	}
	c.turn++
	token := c.turn
	c.sched.After(delay, func() { c.onAdvance(token) })
}

// Pause shows the pause overlay. Valid while playing or showing feedback.
func (c *Controller) Pause() {
	if c.state != StatePlaying && c.state != StateFeedback {
		return
	}
	c.resumeTo = c.state
	c.state = StatePaused
	c.renderer.ShowPauseOverlay(c.ledger.Snapshot())
}

// Resume returns to the state held before Pause. An advance that came
// due while paused runs now.
func (c *Controller) Resume() {
	if c.state != StatePaused {
		return
	}
	c.state = c.resumeTo
	c.renderer.HidePauseOverlay()
	if c.state == StateFeedback && c.advanceDue {
		c.advance()
	}
}

// Quit ends the running session immediately.
func (c *Controller) Quit() {
	if !c.state.active() {
		return
	}
	if c.state == StatePaused {
		c.renderer.HidePauseOverlay()
	}
	c.endSession()
}

// ChangeSettings applies a settings update. Accepted in every state.
func (c *Controller) ChangeSettings(ch SettingsChange) {
	if ch.SoundEnabled != nil {
		c.ledger.SetSoundEnabled(*ch.SoundEnabled)
		c.effects.SetSoundEnabled(*ch.SoundEnabled)
	}
	if ch.StartingTier != nil {
		c.ledger.SetStartingTier(*ch.StartingTier)
	}
	c.renderer.UpdateSettingsDisplay(c.ledger.Settings())
}

func (c *Controller) startSession() {
	c.turn++
	c.advanceDue = false
	c.current = nil
	c.answered = 0

	c.ledger.ResetGame()
	tier := c.ledger.Settings().StartingTier
	c.diff.Reset(tier)

	c.sessionID = uuid.NewString()
	c.startedAt = c.now()
	c.startTier = c.diff.Tier()

	c.state = StatePlaying
	c.renderer.ShowScreen(ScreenGame)
	c.renderer.UpdateScoreDisplay(c.ledger.Snapshot())
	c.renderer.UpdateDifficultyDisplay(c.diff.Tier())
	c.renderer.UpdateProgress(0)
	c.nextProblem()
}

func (c *Controller) onAdvance(token uint64) {
	if token != c.turn {
		return
	}
	switch c.state {
	case StateFeedback:
		c.advance()
	case StatePaused:
		if c.resumeTo == StateFeedback {
			c.advanceDue = true
		}
	}
}

func (c *Controller) advance() {
	c.advanceDue = false
	if c.answered >= c.cfg.ProblemsPerSession {
		c.endSession()
		return
	}
	c.nextProblem()
}

func (c *Controller) nextProblem() {
	p := c.engine.Generate("", c.diff.Tier())
	c.current = &p
	c.answered++
	c.state = StatePlaying
	c.renderer.DisplayProblem(p)
}

func (c *Controller) endSession() {
	c.turn++
	c.advanceDue = false
	c.current = nil

	results := c.ledger.EndGame()
	c.state = StateGameOver
	c.renderer.ShowScreen(ScreenGameOver)
	c.renderer.ShowGameOverSummary(results)
	c.renderer.UpdateHighScoreDisplay(results.HighScore)
	if results.IsNewHighScore {
		c.effects.Celebrate()
	}
	c.recordHistory(results)
}

func (c *Controller) recordHistory(r score.Results) {
	if c.history == nil {
		return
	}
	rec := SessionSummary{
		ID:           c.sessionID,
		StartedAt:    c.startedAt,
		EndedAt:      c.now(),
		Score:        r.FinalScore,
		Solved:       r.ProblemsSolved,
		Attempted:    r.TotalProblems,
		BestStreak:   r.BestStreak,
		Accuracy:     r.Accuracy,
		StartTier:    c.startTier,
		EndTier:      c.diff.Tier(),
		NewHighScore: r.IsNewHighScore,
	}
	if err := c.history.AppendSession(context.Background(), rec); err != nil {
		c.logger.Printf("warning: record session: %v", err)
	}
}

func (c *Controller) progress() float64 {
	if c.cfg.ProblemsPerSession <= 0 {
		return 0
	}
	return float64(c.answered) / float64(c.cfg.ProblemsPerSession)
}
