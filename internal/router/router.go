package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wikiquiz/internal/screen"
)

// SwitchTabMsg requests the router to show the tab at Index.
type SwitchTabMsg struct {
	Index int
}

// Router owns a fixed set of tabbed screens, one of which is visible.
// Every tab stays alive while hidden so in-flight work keeps its state.
type Router struct {
	tabs   []screen.Screen
	active int
}

// New creates a Router showing the first tab.
func New(tabs ...screen.Screen) *Router {
	return &Router{tabs: tabs}
}

// Init runs every tab's Init and activates the first tab.
func (r *Router) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.tabs)+1)
	for _, t := range r.tabs {
		cmds = append(cmds, t.Init())
	}
	cmds = append(cmds, r.activate())
	return tea.Batch(cmds...)
}

// Switch shows the tab at i and activates it. Switching to the visible
// tab or an out-of-range index is a no-op.
func (r *Router) Switch(i int) tea.Cmd {
	if i < 0 || i >= len(r.tabs) || i == r.active {
		return nil
	}
	r.active = i
	return r.activate()
}

// Next switches to the following tab, wrapping around.
func (r *Router) Next() tea.Cmd {
	if len(r.tabs) < 2 {
		return nil
	}
	return r.Switch((r.active + 1) % len(r.tabs))
}

// Prev switches to the preceding tab, wrapping around.
func (r *Router) Prev() tea.Cmd {
	if len(r.tabs) < 2 {
		return nil
	}
	return r.Switch((r.active + len(r.tabs) - 1) % len(r.tabs))
}

// Active returns the visible tab.
func (r *Router) Active() screen.Screen {
	if len(r.tabs) == 0 {
		return nil
	}
	return r.tabs[r.active]
}

// ActiveIndex returns the index of the visible tab.
func (r *Router) ActiveIndex() int {
	return r.active
}

// Titles returns the tab labels in order.
func (r *Router) Titles() []string {
	titles := make([]string, len(r.tabs))
	for i, t := range r.tabs {
		titles[i] = t.Title()
	}
	return titles
}

// Update handles SwitchTabMsg, sends key input to the visible tab only,
// and delivers everything else to every tab so results for a hidden tab
// are not lost.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SwitchTabMsg:
		return r.Switch(msg.Index)
	case tea.KeyMsg:
		if len(r.tabs) == 0 {
			return nil
		}
		updated, cmd := r.tabs[r.active].Update(msg)
		r.tabs[r.active] = updated
		return cmd
	}

	cmds := make([]tea.Cmd, 0, len(r.tabs))
	for i, t := range r.tabs {
		updated, cmd := t.Update(msg)
		r.tabs[i] = updated
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// View renders the visible tab.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}

func (r *Router) activate() tea.Cmd {
	if a, ok := r.Active().(screen.Activator); ok {
		return a.Activate()
	}
	return nil
}
