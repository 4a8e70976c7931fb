package components

import (
	"github.com/abhisek/wikiquiz/internal/ui/theme"
)

// Button is a styled, non-interactive button. The owning screen decides
// what Enter does; the button only shows whether it would act.
type Button struct {
	Label    string
	Disabled bool
}

// NewButton creates an enabled button.
func NewButton(label string) Button {
	return Button{Label: label}
}

// View renders the button.
func (b Button) View() string {
	if b.Disabled {
		return theme.ButtonDisabled.Render(b.Label)
	}
	return theme.ButtonActive.Render("▸ " + b.Label)
}
