package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/difficulty"
	"github.com/abhisek/mathsprint/internal/game"
	"github.com/abhisek/mathsprint/internal/router"
	"github.com/abhisek/mathsprint/internal/screen"
	"github.com/abhisek/mathsprint/internal/store"
	"github.com/abhisek/mathsprint/internal/ui/layout"
	"github.com/abhisek/mathsprint/internal/ui/theme"
)

// ID is the router id of the history screen.
const ID router.ID = "history"

const limit = 50

// Source lists recorded rounds, newest first.
type Source interface {
	RecentSessions(ctx context.Context, limit int) ([]store.SessionRecord, error)
}

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Err      error
}

// HistoryScreen lists past rounds.
type HistoryScreen struct {
	source   Source
	sessions []store.SessionRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen. source may be nil when rounds are not saved.
func New(source Source) *HistoryScreen {
	return &HistoryScreen{
		source:   source,
		expanded: make(map[int]bool),
	}
}

// Init reloads the list each time the screen is shown.
func (s *HistoryScreen) Init() tea.Cmd {
	s.selected = 0
	s.expanded = make(map[int]bool)
	s.loaded = false
	s.errMsg = ""

	if s.source == nil {
		s.sessions = nil
		s.loaded = true
		return nil
	}

	source := s.source
	return func() tea.Msg {
		sessions, err := source.RecentSessions(context.Background(), limit)
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.ShowScreenMsg{ID: router.ID(game.ScreenMenu)} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if s.source == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Rounds are not being saved this time.")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No rounds yet. Go play one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		secs := int(sess.Duration().Seconds())
		durationStr := fmt.Sprintf("%d:%02d", secs/60, secs%60)

		star := ""
		if sess.NewHighScore {
			star = "  ★"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %4d pts  %d/%d solved  %d%%%s",
			prefix, sess.EndedAt.Local().Format("Jan 02 15:04"), durationStr,
			sess.Score, sess.Solved, sess.Attempted, sess.Accuracy, star)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    Best streak %d · Level %s",
				sess.BestStreak, difficulty.TierName(sess.StartTier))
			if sess.EndTier != sess.StartTier {
				detail += " → " + difficulty.TierName(sess.EndTier)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TierColor(sess.EndTier)).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
