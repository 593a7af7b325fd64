package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsprint/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	inits   int
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestNewDoesNotInit(t *testing.T) {
	s := &stubScreen{title: "menu"}
	r := New("menu", s)

	if r.ActiveID() != "menu" || r.Active() != s {
		t.Errorf("active = %q, want menu", r.ActiveID())
	}
	if s.inits != 0 {
		t.Errorf("inits = %d, want 0", s.inits)
	}
	r.Init()
	if s.inits != 1 {
		t.Errorf("inits after Init = %d, want 1", s.inits)
	}
}

func TestShow(t *testing.T) {
	menu := &stubScreen{title: "menu"}
	game := &stubScreen{title: "game"}
	r := New("menu", menu)
	r.Register("game", game)

	r.Show("game")
	if r.ActiveID() != "game" {
		t.Errorf("active = %q, want game", r.ActiveID())
	}
	if game.inits != 1 {
		t.Errorf("game inits = %d, want 1", game.inits)
	}

	r.Show("game")
	if game.inits != 1 {
		t.Error("showing the active screen should not re-init it")
	}

	r.Show("missing")
	if r.ActiveID() != "game" {
		t.Errorf("unknown id changed active to %q", r.ActiveID())
	}
}

func TestShowScreenMsg(t *testing.T) {
	menu := &stubScreen{title: "menu"}
	over := &stubScreen{title: "over"}
	r := New("menu", menu)
	r.Register("over", over)

	r.Update(ShowScreenMsg{ID: "over"})
	if r.Active().Title() != "over" {
		t.Errorf("active = %q, want over", r.Active().Title())
	}
	if menu.updates != 0 {
		t.Error("navigation message should not reach the screen")
	}
}

func TestUpdateAndViewUseActive(t *testing.T) {
	menu := &stubScreen{title: "menu"}
	game := &stubScreen{title: "game"}
	r := New("menu", menu)
	r.Register("game", game)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if menu.updates != 1 || game.updates != 0 {
		t.Errorf("updates menu=%d game=%d, want 1 and 0", menu.updates, game.updates)
	}
	if got := r.View(80, 24); got != "menu" {
		t.Errorf("view = %q, want menu", got)
	}
}
