package generate

import (
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wikiquiz/internal/render"
	"github.com/abhisek/wikiquiz/internal/screen"
	"github.com/abhisek/wikiquiz/internal/ui/components"
	"github.com/abhisek/wikiquiz/internal/ui/layout"
	"github.com/abhisek/wikiquiz/internal/ui/theme"
	"github.com/abhisek/wikiquiz/internal/workflow"
)

const scrollStep = 5

// GenerateScreen takes an article URL, submits it, and shows the
// generated quiz below the form.
type GenerateScreen struct {
	wf      *workflow.GenerateWorkflow
	input   components.TextInput
	button  components.Button
	spinner spinner.Model

	doc    *render.Document
	scroll int
}

var _ screen.Screen = (*GenerateScreen)(nil)
var _ screen.KeyHintProvider = (*GenerateScreen)(nil)

// New creates a GenerateScreen driving wf.
func New(wf *workflow.GenerateWorkflow) *GenerateScreen {
	return &GenerateScreen{
		wf:      wf,
		input:   components.NewTextInput("https://en.wikipedia.org/wiki/...", 60),
		button:  components.NewButton("Generate"),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.Loading)),
	}
}

func (s *GenerateScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *GenerateScreen) Title() string {
	return "Generate Quiz"
}

func (s *GenerateScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Generate"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
	}
}

func (s *GenerateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case workflow.QuizGeneratedMsg:
		if s.wf.Apply(msg) {
			s.sync()
		}
		return s, nil

	case spinner.TickMsg:
		if !s.wf.State().IsLoading() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return s, s.submit()
		case "pgdown":
			s.scroll += scrollStep
			return s, nil
		case "pgup":
			s.scroll = max(s.scroll-scrollStep, 0)
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.wf.SetURL(s.input.Value())
	return s, cmd
}

// submit sends the current input unless a request is already pending.
func (s *GenerateScreen) submit() tea.Cmd {
	if s.wf.State().IsLoading() {
		return nil
	}
	s.wf.SetURL(s.input.Value())
	cmd := s.wf.Submit()
	s.sync()
	if cmd == nil {
		s.input.MarkInvalid(true)
		return nil
	}
	s.input.MarkInvalid(false)
	return tea.Batch(cmd, s.spinner.Tick)
}

// sync rebuilds derived view state after the workflow state changed.
func (s *GenerateScreen) sync() {
	s.button.Disabled = s.wf.State().IsLoading()
	s.scroll = 0
	s.doc = nil
	if q, ok := s.wf.State().Payload(); ok {
		s.doc = render.Render(q)
	}
}

func (s *GenerateScreen) View(width, height int) string {
	contentWidth := layout.ContentWidth(width)
	s.input.SetWidth(min(contentWidth-6, 80))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Heading.Render("Wikipedia article URL"))
	b.WriteString("\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")
	b.WriteString(s.button.View())
	b.WriteString("\n\n")

	state := s.wf.State()
	switch {
	case state.IsLoading():
		b.WriteString(s.spinner.View() + " " + theme.Loading.Render("Generating quiz..."))
		b.WriteString("\n")
	case state.IsFailure():
		b.WriteString(lipgloss.NewStyle().Width(contentWidth).Inherit(theme.ErrorText).Render(state.Message()))
		b.WriteString("\n")
	case state.IsIdle():
		b.WriteString(theme.Hint.Render("Paste an English Wikipedia article link and press Enter."))
		b.WriteString("\n")
	}

	form := b.String()
	if s.doc == nil {
		return lipgloss.NewStyle().PaddingLeft(2).Render(form)
	}

	bodyHeight := max(height-lipgloss.Height(form)-1, 1)
	body, offset := layout.Clip(components.QuizView(s.doc, contentWidth), s.scroll, bodyHeight)
	s.scroll = offset

	return lipgloss.NewStyle().PaddingLeft(2).Render(form + body)
}
