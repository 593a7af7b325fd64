package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for typed numeric answers. Digits,
// a leading minus sign and one decimal point are accepted.
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	correct   bool
}

// NewAnswerInput creates a focused answer input.
func NewAnswerInput(placeholder string, maxLen int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.Focus()
	if maxLen > 0 {
		ti.CharLimit = maxLen
		ti.SetWidth(maxLen + 1)
	}
	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages. Keys that cannot be part of a number are dropped.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if a.submitted {
		return a, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if key == "space" || (len(key) == 1 && !a.accepts(key[0])) {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

func (a AnswerInput) accepts(c byte) bool {
	v := a.Model.Value()
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '-':
		return a.Model.Position() == 0 && !strings.HasPrefix(v, "-")
	case c == '.':
		return !strings.Contains(v, ".")
	}
	return false
}

// View renders the input with a check or cross once graded.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.submitted {
		if a.correct {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Empty reports whether nothing but whitespace has been typed.
func (a AnswerInput) Empty() bool {
	return strings.TrimSpace(a.Model.Value()) == ""
}

// Submitted reports whether the input has been graded.
func (a AnswerInput) Submitted() bool {
	return a.submitted
}

// Grade locks the input and shows the result.
func (a *AnswerInput) Grade(correct bool) {
	a.submitted = true
	a.correct = correct
}

// Reset clears the value and unlocks the input.
func (a *AnswerInput) Reset() {
	a.Model.Reset()
	a.submitted = false
	a.correct = false
}
