package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wikiquiz/internal/screen"
)

type pingMsg struct{}

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	keys    int
	pings   int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg:
		s.keys++
	case pingMsg:
		s.pings++
	}
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

// activeStub counts activations.
type activeStub struct {
	stubScreen
	activations int
}

func (s *activeStub) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.stubScreen.Update(msg)
	return s, nil
}

func (s *activeStub) Activate() tea.Cmd {
	s.activations++
	return nil
}

func TestInitRunsEveryTab(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	s2 := &stubScreen{title: "second"}
	r := New(s1, s2)
	r.Init()

	if !s1.initRan || !s2.initRan {
		t.Error("expected Init() to run on every tab")
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestInitActivatesFirstTab(t *testing.T) {
	s1 := &activeStub{stubScreen: stubScreen{title: "first"}}
	r := New(s1, &stubScreen{title: "second"})
	r.Init()

	if s1.activations != 1 {
		t.Errorf("expected 1 activation, got %d", s1.activations)
	}
}

func TestSwitchActivatesEveryTime(t *testing.T) {
	hist := &activeStub{stubScreen: stubScreen{title: "history"}}
	r := New(&stubScreen{title: "generate"}, hist)

	r.Switch(1)
	r.Switch(0)
	r.Switch(1)

	if hist.activations != 2 {
		t.Errorf("expected 2 activations, got %d", hist.activations)
	}
	if r.ActiveIndex() != 1 {
		t.Errorf("expected active index 1, got %d", r.ActiveIndex())
	}
}

func TestSwitchNoops(t *testing.T) {
	s1 := &activeStub{stubScreen: stubScreen{title: "first"}}
	r := New(s1, &stubScreen{title: "second"})

	r.Switch(0)
	r.Switch(-1)
	r.Switch(5)

	if s1.activations != 0 {
		t.Errorf("switching to the visible tab should not activate, got %d", s1.activations)
	}
	if r.ActiveIndex() != 0 {
		t.Errorf("expected active index 0, got %d", r.ActiveIndex())
	}
}

func TestNextPrevWrap(t *testing.T) {
	r := New(&stubScreen{title: "a"}, &stubScreen{title: "b"}, &stubScreen{title: "c"})

	r.Prev()
	if r.Active().Title() != "c" {
		t.Errorf("Prev from first should wrap to 'c', got %q", r.Active().Title())
	}
	r.Next()
	if r.Active().Title() != "a" {
		t.Errorf("Next from last should wrap to 'a', got %q", r.Active().Title())
	}
}

func TestSwitchTabMsg(t *testing.T) {
	r := New(&stubScreen{title: "first"}, &stubScreen{title: "second"})
	r.Update(SwitchTabMsg{Index: 1})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
}

func TestKeysGoToActiveTabOnly(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	s2 := &stubScreen{title: "second"}
	r := New(s1, s2)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	if s1.keys != 1 || s2.keys != 0 {
		t.Errorf("expected key on active tab only, got first=%d second=%d", s1.keys, s2.keys)
	}
}

func TestOtherMessagesReachHiddenTabs(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	s2 := &stubScreen{title: "second"}
	r := New(s1, s2)

	r.Update(pingMsg{})

	if s1.pings != 1 || s2.pings != 1 {
		t.Errorf("expected every tab to see the message, got first=%d second=%d", s1.pings, s2.pings)
	}
}

func TestTitlesAndView(t *testing.T) {
	r := New(&stubScreen{title: "Generate Quiz"}, &stubScreen{title: "History"})

	titles := r.Titles()
	if len(titles) != 2 || titles[0] != "Generate Quiz" || titles[1] != "History" {
		t.Errorf("unexpected titles %v", titles)
	}
	if r.View(80, 24) != "Generate Quiz" {
		t.Errorf("expected view of active tab, got %q", r.View(80, 24))
	}
}

func TestEmptyRouter(t *testing.T) {
	r := New()
	if r.Active() != nil {
		t.Error("expected nil active screen")
	}
	if r.View(80, 24) != "" {
		t.Error("expected empty view")
	}
	if cmd := r.Update(tea.KeyPressMsg{Code: 'x'}); cmd != nil {
		t.Error("expected nil command")
	}
}
