package app

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wikiquiz/internal/client"
	"github.com/abhisek/wikiquiz/internal/router"
	"github.com/abhisek/wikiquiz/internal/screen"
	"github.com/abhisek/wikiquiz/internal/screens/generate"
	"github.com/abhisek/wikiquiz/internal/screens/history"
	"github.com/abhisek/wikiquiz/internal/ui/layout"
	"github.com/abhisek/wikiquiz/internal/workflow"
)

// Options configures the TUI.
type Options struct {
	// Service is the quiz service backend. Required.
	Service client.Service

	// Workflow carries the request timeout and parent context.
	Workflow workflow.Options

	// ProgramOptions are passed to tea.NewProgram after the context.
	ProgramOptions []tea.ProgramOption
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel with the Generate and History tabs.
func newAppModel(opts Options) AppModel {
	gen := generate.New(workflow.NewGenerateWorkflow(opts.Service, opts.Workflow))
	hist := history.New(workflow.NewHistoryWorkflow(opts.Service, opts.Workflow))
	return AppModel{
		router: router.New(gen, hist),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			return m, m.router.Next()
		case "shift+tab":
			return m, m.router.Prev()
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.router.Titles(), m.router.ActiveIndex(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		footerHints = append(footerHints, p.KeyHints()...)
	}
	footerHints = append(footerHints,
		layout.KeyHint{Key: "Tab", Description: "Switch"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and blocks until the user quits.
// Requests still in flight are canceled on exit.
func Run(opts Options) error {
	parent := opts.Workflow.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	opts.Workflow.Context = ctx

	programOpts := append([]tea.ProgramOption{tea.WithContext(ctx)}, opts.ProgramOptions...)
	p := tea.NewProgram(newAppModel(opts), programOpts...)
	_, err := p.Run()
	return err
}
