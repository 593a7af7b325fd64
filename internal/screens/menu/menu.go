package menu

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/difficulty"
	"github.com/abhisek/mathsprint/internal/display"
	"github.com/abhisek/mathsprint/internal/game"
	"github.com/abhisek/mathsprint/internal/router"
	"github.com/abhisek/mathsprint/internal/screen"
	"github.com/abhisek/mathsprint/internal/screens/history"
	"github.com/abhisek/mathsprint/internal/ui/components"
	"github.com/abhisek/mathsprint/internal/ui/layout"
	"github.com/abhisek/mathsprint/internal/ui/theme"
)

// Actions is what the menu can ask of the session.
type Actions interface {
	Start()
	ChangeSettings(game.SettingsChange)
}

const (
	itemStart = iota
	itemSound
	itemLevel
	itemHistory
	itemExit
)

// MenuScreen is the start screen: high score, settings and the start button.
type MenuScreen struct {
	view    *display.View
	actions Actions
	menu    components.Menu
}

var _ screen.Screen = (*MenuScreen)(nil)
var _ screen.KeyHintProvider = (*MenuScreen)(nil)

// New creates a MenuScreen.
func New(view *display.View, actions Actions) *MenuScreen {
	m := &MenuScreen{view: view, actions: actions}

	items := []components.MenuItem{
		{Label: "START GAME", Action: func() tea.Cmd { m.actions.Start(); return nil }},
		{Label: "SOUND", Action: func() tea.Cmd { m.toggleSound(); return nil }},
		{Label: "LEVEL", Action: func() tea.Cmd { m.shiftLevel(1); return nil }},
		{Label: "HISTORY", Action: showHistory},
		{Label: "EXIT GAME", Action: func() tea.Cmd { return tea.Quit }},
	}
	m.menu = components.NewMenu(items)
	m.menu.OnLeft = func(i int) tea.Cmd { return m.adjust(i, -1) }
	m.menu.OnRight = func(i int) tea.Cmd { return m.adjust(i, 1) }
	return m
}

func (m *MenuScreen) Init() tea.Cmd {
	return nil
}

func (m *MenuScreen) Title() string {
	return "Menu"
}

func (m *MenuScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Select"},
	}
}

func (m *MenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "s" {
		m.actions.Start()
		return m, nil
	}
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func showHistory() tea.Cmd {
	return func() tea.Msg { return router.ShowScreenMsg{ID: history.ID} }
}

func (m *MenuScreen) adjust(item, delta int) tea.Cmd {
	switch item {
	case itemSound:
		m.toggleSound()
	case itemLevel:
		m.shiftLevel(delta)
	}
	return nil
}

func (m *MenuScreen) toggleSound() {
	on := !m.view.Settings().SoundEnabled
	m.actions.ChangeSettings(game.SettingsChange{SoundEnabled: &on})
}

// shiftLevel moves the starting tier by delta, wrapping around.
func (m *MenuScreen) shiftLevel(delta int) {
	span := difficulty.MaxTier - difficulty.MinTier + 1
	tier := m.view.Settings().StartingTier - difficulty.MinTier
	tier = (tier+delta%span+span)%span + difficulty.MinTier
	m.actions.ChangeSettings(game.SettingsChange{StartingTier: &tier})
}

func (m *MenuScreen) View(width, height int) string {
	settings := m.view.Settings()
	sound := "OFF"
	if settings.SoundEnabled {
		sound = "ON"
	}
	m.menu.SetLabel(itemSound, "SOUND: "+sound)
	m.menu.SetLabel(itemLevel, "LEVEL: "+strings.ToUpper(difficulty.TierName(settings.StartingTier)))

	cw := components.ContentWidth(width)
	compact := layout.IsCompactHeight(height + 6)

	sections := []string{renderTitle(cw, compact)}
	sections = append(sections, renderHighScore(m.view.HighScore(), cw))
	sections = append(sections, components.ArcadeCard(m.menu.View(cw-8), cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

const titleFull = `╔╦╗╔═╗╔╦╗╦ ╦  ╔═╗╔═╗╦═╗╦╔╗╔╔╦╗
║║║╠═╣ ║ ╠═╣  ╚═╗╠═╝╠╦╝║║║║ ║
╩ ╩╩ ╩ ╩ ╩ ╩  ╚═╝╩  ╩╚═╩╝╚╝ ╩`

const titleCompact = "M A T H · S P R I N T"

func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact || cw < lipgloss.Width(titleFull) {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Title.Render(art))
}

func renderHighScore(highScore, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().
			Foreground(theme.ArcadeYellow).
			Bold(true).
			Render(fmt.Sprintf("★ HIGH SCORE %d", highScore)))
}
