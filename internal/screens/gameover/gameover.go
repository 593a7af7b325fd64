package gameover

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/display"
	"github.com/abhisek/mathsprint/internal/screen"
	"github.com/abhisek/mathsprint/internal/ui/components"
	"github.com/abhisek/mathsprint/internal/ui/layout"
	"github.com/abhisek/mathsprint/internal/ui/theme"
)

// Actions is what the game-over screen can ask of the session.
type Actions interface {
	PlayAgain()
	GoToMenu()
}

// GameOverScreen shows the session summary.
type GameOverScreen struct {
	view    *display.View
	actions Actions
	menu    components.Menu
}

var _ screen.Screen = (*GameOverScreen)(nil)
var _ screen.KeyHintProvider = (*GameOverScreen)(nil)

// New creates a GameOverScreen.
func New(view *display.View, actions Actions) *GameOverScreen {
	g := &GameOverScreen{view: view, actions: actions}
	g.menu = components.NewMenu([]components.MenuItem{
		{Label: "PLAY AGAIN", Action: func() tea.Cmd { g.actions.PlayAgain(); return nil }},
		{Label: "MAIN MENU", Action: func() tea.Cmd { g.actions.GoToMenu(); return nil }},
		{Label: "EXIT GAME", Action: func() tea.Cmd { return tea.Quit }},
	})
	return g
}

// Init puts the cursor back on "play again".
func (g *GameOverScreen) Init() tea.Cmd {
	g.menu.Selected = 0
	return nil
}

func (g *GameOverScreen) Title() string {
	return "Game Over"
}

func (g *GameOverScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (g *GameOverScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			g.actions.GoToMenu()
			return g, nil
		case "r":
			g.actions.PlayAgain()
			return g, nil
		}
	}
	var cmd tea.Cmd
	g.menu, cmd = g.menu.Update(msg)
	return g, cmd
}

func (g *GameOverScreen) View(width, height int) string {
	r := g.view.Results()
	if r == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var sections []string

	heading := "GAME OVER"
	if r.IsNewHighScore {
		heading = "NEW HIGH SCORE!"
	}
	sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(theme.Title.Render(heading)))

	score := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render(fmt.Sprintf("%d", r.FinalScore))
	stats := strings.Join([]string{
		"Score  " + score,
		fmt.Sprintf("Solved %d of %d", r.ProblemsSolved, r.TotalProblems),
		fmt.Sprintf("Accuracy %d%%", r.Accuracy),
		fmt.Sprintf("Best streak %d", r.BestStreak),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("High score %d", r.HighScore)),
	}, "\n")
	sections = append(sections, components.ArcadeCard(stats, cw))

	if msg := message(r.Accuracy, r.TotalProblems); msg != "" {
		sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Render(theme.Hint.Render(msg)))
	}

	sections = append(sections, g.menu.View(cw-8))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

// message picks a closing line for the given accuracy.
func message(accuracy, attempted int) string {
	switch {
	case attempted == 0:
		return ""
	case accuracy == 100:
		return "Perfect round!"
	case accuracy >= 80:
		return "Excellent work!"
	case accuracy >= 50:
		return "Good effort, keep practicing!"
	default:
		return "Every round makes you faster."
	}
}
