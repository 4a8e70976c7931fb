package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wikiquiz/internal/ui/layout"
)

// Screen is one tab of the application.
type Screen interface {
	// Init returns a command to run once at startup.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body for the space between header and footer.
	View(width, height int) string

	// Title returns the tab label.
	Title() string
}

// KeyHintProvider is implemented by screens that add their own footer
// hints ahead of the global ones.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Activator is implemented by screens that refresh themselves each time
// they become the visible tab.
type Activator interface {
	Activate() tea.Cmd
}
