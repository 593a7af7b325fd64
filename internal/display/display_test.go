package display

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/abhisek/mathsprint/internal/difficulty"
	"github.com/abhisek/mathsprint/internal/game"
	"github.com/abhisek/mathsprint/internal/problem"
	"github.com/abhisek/mathsprint/internal/score"
)

type queue struct{ fns []func() }

func (q *queue) After(_ time.Duration, fn func()) { q.fns = append(q.fns, fn) }

func (q *queue) flush() {
	fns := q.fns
	q.fns = nil
	for _, fn := range fns {
		fn()
	}
}

func newControlled(t *testing.T) (*View, *game.Controller, *queue) {
	t.Helper()
	v := New()
	q := &queue{}
	cfg := score.DefaultConfig()
	cfg.Logger = log.New(io.Discard, "", 0)
	c, err := game.New(game.Config{ProblemsPerSession: 5}, game.Deps{
		Renderer:   v,
		Engine:     problem.New(problem.Config{Tiers: problem.DefaultTiers(), Seed: 1}),
		Difficulty: difficulty.New(1),
		Ledger:     score.NewLedger(score.NewMemoryStorage(), cfg),
		Scheduler:  q,
		Effects:    v,
	})
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	c.Init()
	return v, c, q
}

func submitCorrect(c *game.Controller) {
	p, _ := c.CurrentProblem()
	c.Submit(problem.FormatAnswer(p.CorrectAnswer))
}

func TestNew_ShowsMenu(t *testing.T) {
	v := New()
	if v.Screen() != game.ScreenMenu {
		t.Errorf("screen = %s, want menu", v.Screen())
	}
	if _, ok := v.Problem(); ok {
		t.Error("expected no problem")
	}
	if v.Tier() != 1 {
		t.Errorf("tier = %d, want 1", v.Tier())
	}
}

func TestView_FollowsSession(t *testing.T) {
	v, c, q := newControlled(t)

	c.Start()
	if v.Screen() != game.ScreenGame {
		t.Fatalf("screen = %s, want game", v.Screen())
	}
	p, ok := v.Problem()
	if !ok {
		t.Fatal("expected a problem")
	}
	if cur, _ := c.CurrentProblem(); cur.ID != p.ID {
		t.Error("view shows a different problem than the controller")
	}

	submitCorrect(c)
	fb := v.Feedback()
	if fb == nil || !fb.Correct {
		t.Fatalf("feedback = %+v, want correct", fb)
	}
	if v.Score().Score != 10 {
		t.Errorf("score = %d, want 10", v.Score().Score)
	}
	if v.Progress() != 0.2 {
		t.Errorf("progress = %v, want 0.2", v.Progress())
	}
	if text, kind := v.Banner(); kind != BannerCorrect || text == "" {
		t.Errorf("banner = %q (%s), want a cheer", text, kind)
	}
	if v.Flames() != 1 {
		t.Errorf("flames = %d, want 1", v.Flames())
	}

	q.flush()
	if v.Feedback() != nil {
		t.Error("feedback should clear on the next problem")
	}
	if _, kind := v.Banner(); kind != BannerNone {
		t.Errorf("banner kind = %s, want none", kind)
	}
}

func TestView_LevelUpBannerWins(t *testing.T) {
	v, c, q := newControlled(t)
	c.Start()

	for i := 0; i < 3; i++ {
		submitCorrect(c)
		if i < 2 {
			q.flush()
		}
	}

	text, kind := v.Banner()
	if kind != BannerLevelUp {
		t.Fatalf("banner kind = %s, want level-up", kind)
	}
	if text != "Level up! Now Medium" {
		t.Errorf("banner = %q", text)
	}
	if v.Tier() != 2 {
		t.Errorf("tier = %d, want 2", v.Tier())
	}
	if v.Flames() != 3 {
		t.Errorf("flames = %d, want 3", v.Flames())
	}
}

func TestView_IncorrectResetsFlames(t *testing.T) {
	v, c, q := newControlled(t)
	c.Start()

	submitCorrect(c)
	q.flush()
	c.Submit("nope")

	if v.Flames() != 0 {
		t.Errorf("flames = %d, want 0", v.Flames())
	}
	if _, kind := v.Banner(); kind != BannerEncourage {
		t.Errorf("banner kind = %s, want encourage", kind)
	}
	if fb := v.Feedback(); fb == nil || fb.Correct {
		t.Errorf("feedback = %+v, want incorrect", fb)
	}
}

func TestView_PauseOverlay(t *testing.T) {
	v, c, _ := newControlled(t)
	c.Start()
	submitCorrect(c)

	c.Pause()
	paused, snap := v.Paused()
	if !paused || snap.Score != 10 {
		t.Errorf("paused = %v score = %d, want paused with 10", paused, snap.Score)
	}

	c.Resume()
	if paused, _ := v.Paused(); paused {
		t.Error("overlay should be hidden after resume")
	}
}

func TestView_GameOverAndHighScore(t *testing.T) {
	v, c, q := newControlled(t)
	c.Start()
	for i := 0; i < 5; i++ {
		submitCorrect(c)
		q.flush()
	}

	if v.Screen() != game.ScreenGameOver {
		t.Fatalf("screen = %s, want gameover", v.Screen())
	}
	r := v.Results()
	if r == nil || r.ProblemsSolved != 5 || !r.IsNewHighScore {
		t.Fatalf("results = %+v", r)
	}
	if v.HighScore() != r.FinalScore {
		t.Errorf("high score = %d, want %d", v.HighScore(), r.FinalScore)
	}
	if _, kind := v.Banner(); kind != BannerHighScore {
		t.Errorf("banner kind = %s, want high-score", kind)
	}

	c.GoToMenu()
	if v.Screen() != game.ScreenMenu || v.Results() != nil {
		t.Errorf("screen = %s results = %v, want menu without results", v.Screen(), v.Results())
	}
}

func TestView_Settings(t *testing.T) {
	v, c, _ := newControlled(t)
	if !v.Settings().SoundEnabled {
		t.Error("initial settings should have sound on")
	}

	off := false
	c.ChangeSettings(game.SettingsChange{SoundEnabled: &off})
	if v.Settings().SoundEnabled {
		t.Error("settings display should show sound off")
	}
}

func TestView_ProgressClamped(t *testing.T) {
	v := New()
	v.UpdateProgress(1.7)
	if v.Progress() != 1 {
		t.Errorf("progress = %v, want 1", v.Progress())
	}
	v.UpdateProgress(-1)
	if v.Progress() != 0 {
		t.Errorf("progress = %v, want 0", v.Progress())
	}
}
