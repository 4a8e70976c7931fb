package history

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wikiquiz/internal/quiz"
	"github.com/abhisek/wikiquiz/internal/screen"
	"github.com/abhisek/wikiquiz/internal/ui/components"
	"github.com/abhisek/wikiquiz/internal/ui/layout"
	"github.com/abhisek/wikiquiz/internal/ui/theme"
	"github.com/abhisek/wikiquiz/internal/workflow"
)

const scrollStep = 5

// HistoryScreen lists previously generated quizzes and shows one in an
// overlay when selected.
type HistoryScreen struct {
	wf       *workflow.HistoryWorkflow
	spinner  spinner.Model
	selected int
	scroll   int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.Activator = (*HistoryScreen)(nil)

// New creates a HistoryScreen driving wf.
func New(wf *workflow.HistoryWorkflow) *HistoryScreen {
	return &HistoryScreen{
		wf:      wf,
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(theme.Loading)),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

// Activate reloads the list. The router calls it each time the tab
// becomes visible.
func (s *HistoryScreen) Activate() tea.Cmd {
	return tea.Batch(s.wf.Activate(), s.spinner.Tick)
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.wf.Overlay().IsOpen() {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Close"},
			{Key: "PgUp/PgDn", Description: "Scroll"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "r", Description: "Reload"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case workflow.HistoryLoadedMsg:
		if s.wf.ApplyList(msg) {
			s.selected = min(s.selected, max(len(s.wf.History())-1, 0))
		}
		return s, nil

	case workflow.QuizFetchedMsg:
		if s.wf.ApplyDetail(msg) && s.wf.Overlay().IsOpen() {
			s.scroll = 0
		}
		return s, nil

	case spinner.TickMsg:
		if !s.busy() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		if s.wf.Overlay().IsOpen() {
			return s, s.overlayKey(msg)
		}
		return s, s.listKey(msg)
	}
	return s, nil
}

func (s *HistoryScreen) overlayKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q":
		s.wf.CloseDetail()
		s.scroll = 0
	case "pgdown", "down", "j":
		s.scroll += scrollStep
	case "pgup", "up", "k":
		s.scroll = max(s.scroll-scrollStep, 0)
	}
	return nil
}

func (s *HistoryScreen) listKey(msg tea.KeyMsg) tea.Cmd {
	entries := s.wf.History()
	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(entries)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(entries) && !s.wf.Detail().IsLoading() {
			return tea.Batch(s.wf.SelectEntry(entries[s.selected].ID), s.spinner.Tick)
		}
	case "r":
		return s.Activate()
	}
	return nil
}

func (s *HistoryScreen) busy() bool {
	return s.wf.ListState().IsLoading() || s.wf.Detail().IsLoading()
}

func (s *HistoryScreen) View(width, height int) string {
	if s.wf.Overlay().IsOpen() {
		return s.overlayView(width, height)
	}

	var b strings.Builder
	b.WriteString("\n")

	list := s.wf.ListState()
	if list.IsLoading() {
		b.WriteString(s.spinner.View() + " " + theme.Loading.Render("Loading history..."))
		b.WriteString("\n")
	}
	if list.IsFailure() {
		b.WriteString(theme.ErrorText.Render("Error: " + list.Message()))
		b.WriteString("\n")
	}
	if detail := s.wf.Detail(); detail.IsLoading() {
		b.WriteString(s.spinner.View() + " " + theme.Loading.Render("Loading quiz..."))
		b.WriteString("\n")
	} else if detail.IsFailure() {
		b.WriteString(theme.ErrorText.Render("Error: " + detail.Message()))
		b.WriteString("\n")
	}

	entries := s.wf.History()
	if len(entries) == 0 {
		if !list.IsLoading() {
			b.WriteString(theme.Hint.Render("No quizzes yet. Generate one first!"))
			b.WriteString("\n")
		}
		return lipgloss.NewStyle().PaddingLeft(2).Render(b.String())
	}

	b.WriteString("\n")
	top := b.String()
	rows := make([]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, entryLine(e, i == s.selected, layout.ContentWidth(width)))
	}

	// Keep the selected row visible.
	rowsHeight := max(height-lipgloss.Height(top), 1)
	offset := max(s.selected-rowsHeight+1, 0)
	body, _ := layout.Clip(strings.Join(rows, "\n"), offset, rowsHeight)

	return lipgloss.NewStyle().PaddingLeft(2).Render(top + body)
}

func entryLine(e quiz.HistoryEntry, selected bool, width int) string {
	prefix := "  "
	style := theme.Unselected
	if selected {
		prefix = "> "
		style = theme.Selected
	}

	title := e.Title
	if title == "" {
		title = "(untitled)"
	}
	date := "unknown date"
	if !e.DateGenerated.IsZero() {
		date = e.DateGenerated.Local().Format("Jan 02, 2006 15:04")
	}

	line := fmt.Sprintf("%s#%-4s %-32s %s", prefix, e.ID, truncate(title, 32), date)
	urlWidth := width - lipgloss.Width(line) - 2
	if urlWidth > 10 {
		line += "  " + theme.Label.Render(truncate(e.URL, urlWidth))
	}
	return style.Render(line)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func (s *HistoryScreen) overlayView(width, height int) string {
	doc := s.wf.Overlay().Document()

	// Border plus padding take four columns and two rows.
	innerWidth := max(layout.ContentWidth(width)-4, 10)
	innerHeight := max(height-4, 1)

	body, offset := layout.Clip(components.QuizView(doc, innerWidth), s.scroll, innerHeight)
	s.scroll = offset

	box := theme.Overlay.Width(innerWidth + 4).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, "\n"+box)
}
