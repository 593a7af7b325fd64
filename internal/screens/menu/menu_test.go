package menu

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsprint/internal/display"
	"github.com/abhisek/mathsprint/internal/game"
	"github.com/abhisek/mathsprint/internal/router"
	"github.com/abhisek/mathsprint/internal/score"
	"github.com/abhisek/mathsprint/internal/screens/history"
)

// fakeActions applies settings changes straight to the view, the way the
// controller would.
type fakeActions struct {
	view    *display.View
	started int
	changes []game.SettingsChange
}

func (f *fakeActions) Start() { f.started++ }

func (f *fakeActions) ChangeSettings(ch game.SettingsChange) {
	f.changes = append(f.changes, ch)
	s := f.view.Settings()
	if ch.SoundEnabled != nil {
		s.SoundEnabled = *ch.SoundEnabled
	}
	if ch.StartingTier != nil {
		s.StartingTier = *ch.StartingTier
	}
	f.view.UpdateSettingsDisplay(s)
}

func testMenu() (*MenuScreen, *fakeActions) {
	v := display.New()
	v.UpdateSettingsDisplay(score.Settings{SoundEnabled: true, StartingTier: 1})
	v.UpdateHighScoreDisplay(120)
	a := &fakeActions{view: v}
	return New(v, a), a
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenu_Title(t *testing.T) {
	m, _ := testMenu()
	if m.Title() != "Menu" {
		t.Errorf("title = %q", m.Title())
	}
	if len(m.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}

func TestMenu_EnterStarts(t *testing.T) {
	m, a := testMenu()
	m.Update(specialKey(tea.KeyEnter))
	if a.started != 1 {
		t.Errorf("started = %d, want 1", a.started)
	}
}

func TestMenu_HotkeyStarts(t *testing.T) {
	m, a := testMenu()
	m.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	if a.started != 1 {
		t.Errorf("started = %d, want 1", a.started)
	}
}

func TestMenu_ToggleSound(t *testing.T) {
	m, a := testMenu()
	m.Update(specialKey(tea.KeyDown))
	m.Update(specialKey(tea.KeyEnter))

	if len(a.changes) != 1 || a.changes[0].SoundEnabled == nil || *a.changes[0].SoundEnabled {
		t.Fatalf("changes = %+v, want sound off", a.changes)
	}

	m.Update(specialKey(tea.KeyRight))
	if !a.view.Settings().SoundEnabled {
		t.Error("right on sound should toggle it back on")
	}
}

func TestMenu_LevelCycles(t *testing.T) {
	m, a := testMenu()
	m.Update(specialKey(tea.KeyDown))
	m.Update(specialKey(tea.KeyDown))

	want := []int{2, 3, 1}
	for _, w := range want {
		m.Update(specialKey(tea.KeyRight))
		if got := a.view.Settings().StartingTier; got != w {
			t.Errorf("tier = %d, want %d", got, w)
		}
	}

	m.Update(specialKey(tea.KeyLeft))
	if got := a.view.Settings().StartingTier; got != 3 {
		t.Errorf("left from 1: tier = %d, want 3 (wraps)", got)
	}
}

func TestMenu_ExitQuits(t *testing.T) {
	m, _ := testMenu()
	for i := 0; i < 4; i++ {
		m.Update(specialKey(tea.KeyDown))
	}
	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestMenu_History(t *testing.T) {
	m, _ := testMenu()
	for i := 0; i < 3; i++ {
		m.Update(specialKey(tea.KeyDown))
	}
	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a navigation command from the menu item")
	}
	if msg, ok := cmd().(router.ShowScreenMsg); !ok || msg.ID != history.ID {
		t.Errorf("msg = %#v, want history", msg)
	}
}

func TestMenu_View(t *testing.T) {
	m, _ := testMenu()
	out := m.View(80, 24)
	for _, want := range []string{"HIGH SCORE 120", "START GAME", "SOUND: ON", "LEVEL: EASY", "HISTORY"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
