package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wikiquiz/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with WikiQuiz styling and an
// invalid marker shown after a rejected submission.
type TextInput struct {
	Model   textinput.Model
	invalid bool
}

// NewTextInput creates a focused single-line input.
func NewTextInput(placeholder string, width int) TextInput {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = placeholder
	if width > 0 {
		ti.SetWidth(width)
	}
	ti.Focus()

	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the wrapped input. Editing clears the invalid
// marker.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	before := t.Model.Value()

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	if t.Model.Value() != before {
		t.invalid = false
	}
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.invalid {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetWidth resizes the visible portion of the input.
func (t *TextInput) SetWidth(w int) {
	if w > 0 {
		t.Model.SetWidth(w)
	}
}

// MarkInvalid flags the current value as rejected.
func (t *TextInput) MarkInvalid(invalid bool) {
	t.invalid = invalid
}

// Invalid reports whether the current value was rejected.
func (t TextInput) Invalid() bool {
	return t.invalid
}
