package app

import (
	"fmt"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsprint/internal/difficulty"
	"github.com/abhisek/mathsprint/internal/display"
	"github.com/abhisek/mathsprint/internal/game"
	"github.com/abhisek/mathsprint/internal/problem"
	"github.com/abhisek/mathsprint/internal/router"
	"github.com/abhisek/mathsprint/internal/score"
	"github.com/abhisek/mathsprint/internal/screen"
	"github.com/abhisek/mathsprint/internal/screens/gameover"
	"github.com/abhisek/mathsprint/internal/screens/history"
	"github.com/abhisek/mathsprint/internal/screens/menu"
	"github.com/abhisek/mathsprint/internal/screens/play"
	"github.com/abhisek/mathsprint/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	// Ledger is required.
	Ledger *score.Ledger

	Game    game.Config
	Problem problem.Config

	// Effects receives game cues in addition to the on-screen banners.
	Effects game.Effects

	// History records finished rounds; Rounds lists them. Both may be nil.
	History game.History
	Rounds  history.Source

	Logger *log.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctrl   *game.Controller
	view   *display.View
	sched  *teaScheduler
	router *router.Router

	// shown is the last screen the controller asked for.
	shown game.Screen

	width  int
	height int
}

// NewAppModel wires the session controller to the screens.
func NewAppModel(opts Options) (*AppModel, error) {
	if opts.Ledger == nil {
		return nil, fmt.Errorf("app: ledger is required")
	}

	view := display.New()
	sched := &teaScheduler{}

	effects := game.Effects(view)
	if opts.Effects != nil {
		effects = game.MultiEffects{view, opts.Effects}
	}

	ctrl, err := game.New(opts.Game, game.Deps{
		Renderer:   view,
		Engine:     problem.New(opts.Problem),
		Difficulty: difficulty.New(opts.Ledger.Settings().StartingTier),
		Ledger:     opts.Ledger,
		Scheduler:  sched,
		Effects:    effects,
		History:    opts.History,
		Logger:     opts.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build session: %w", err)
	}
	ctrl.Init()

	r := router.New(router.ID(game.ScreenMenu), menu.New(view, ctrl))
	r.Register(router.ID(game.ScreenGame), play.New(view, ctrl))
	r.Register(router.ID(game.ScreenGameOver), gameover.New(view, ctrl))
	r.Register(history.ID, history.New(opts.Rounds))

	return &AppModel{ctrl: ctrl, view: view, sched: sched, router: r, shown: view.Screen()}, nil
}

// Controller returns the session controller.
func (m *AppModel) Controller() *game.Controller {
	return m.ctrl
}

func (m *AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// Record the running session before leaving.
			m.ctrl.Quit()
			return m, tea.Quit
		}
		cmd = m.router.Update(msg)

	case timerFiredMsg:
		msg.fn()
		cmd = m.router.Update(display.RefreshMsg{})

	default:
		cmd = m.router.Update(msg)
	}

	return m, tea.Batch(cmd, m.follow(), m.sched.Drain())
}

// follow switches screens when the controller moves to a new one.
// Screens it does not own, like history, stay up until they navigate away.
func (m *AppModel) follow() tea.Cmd {
	want := m.view.Screen()
	if want == m.shown {
		return nil
	}
	m.shown = want
	return m.router.Show(router.ID(want))
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	header := layout.RenderHeader(title, fmt.Sprintf("★ Best %d  ", m.view.HighScore()), m.width)

	hints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hp.KeyHints(), hints...)
	}
	footer := layout.RenderFooter(hints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m, err := NewAppModel(opts)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
