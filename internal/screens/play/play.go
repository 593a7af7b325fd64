package play

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsprint/internal/display"
	"github.com/abhisek/mathsprint/internal/screen"
	"github.com/abhisek/mathsprint/internal/ui/components"
	"github.com/abhisek/mathsprint/internal/ui/layout"
)

// Actions is what the play screen can ask of the session.
type Actions interface {
	Submit(answer string)
	Pause()
	Resume()
	Quit()
	Position() (index, total int)
}

const answerMaxLen = 8

// PlayScreen shows the current problem, takes the typed answer and
// shows feedback.
type PlayScreen struct {
	view    *display.View
	actions Actions
	input   components.AnswerInput

	// problemID is the problem the input belongs to.
	problemID string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a PlayScreen.
func New(view *display.View, actions Actions) *PlayScreen {
	return &PlayScreen{
		view:    view,
		actions: actions,
		input:   components.NewAnswerInput("?", answerMaxLen),
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	s.sync()
	return s.input.Init()
}

func (s *PlayScreen) Title() string {
	return "Play"
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if paused, _ := s.view.Paused(); paused {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Resume"},
			{Key: "Q", Description: "End game"},
		}
	}
	return []layout.KeyHint{
		{Key: "0-9 - .", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Pause"},
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.sync()

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if _, refresh := msg.(display.RefreshMsg); refresh {
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	if paused, _ := s.view.Paused(); paused {
		switch kmsg.String() {
		case "esc", "p", "enter", "space":
			s.actions.Resume()
		case "q":
			s.actions.Quit()
		}
		s.sync()
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		s.actions.Pause()
		return s, nil
	case "enter":
		if s.view.Feedback() != nil || s.input.Empty() {
			return s, nil
		}
		s.actions.Submit(s.input.Value())
		if fb := s.view.Feedback(); fb != nil {
			s.input.Grade(fb.Correct)
		}
		return s, nil
	}

	if s.view.Feedback() != nil {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// sync clears the input when a new problem has been displayed.
func (s *PlayScreen) sync() {
	p, ok := s.view.Problem()
	if !ok || p.ID == s.problemID {
		return
	}
	s.problemID = p.ID
	s.input.Reset()
}

func (s *PlayScreen) View(width, height int) string {
	if paused, snap := s.view.Paused(); paused {
		return renderPause(snap, width, height)
	}
	return s.renderGame(width, height)
}
