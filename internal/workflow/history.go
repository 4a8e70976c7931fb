package workflow

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wikiquiz/internal/client"
	"github.com/abhisek/wikiquiz/internal/overlay"
	"github.com/abhisek/wikiquiz/internal/quiz"
	"github.com/abhisek/wikiquiz/internal/viewstate"
)

const (
	// ListFailedMessage is shown when the history list fails without a message.
	ListFailedMessage = "Failed to load history."
	// DetailFailedMessage is shown when a quiz fetch fails without a message.
	DetailFailedMessage = "Failed to load quiz."
)

// HistoryLoadedMsg carries the outcome of one ListHistory request.
type HistoryLoadedMsg struct {
	Token   viewstate.Token
	Entries []quiz.HistoryEntry
	Err     error
}

// QuizFetchedMsg carries the outcome of one FetchQuiz request.
type QuizFetchedMsg struct {
	Token viewstate.Token
	ID    quiz.ID
	Quiz  *quiz.Quiz
	Err   error
}

// HistoryWorkflow loads the history list and fetches single quizzes for
// the detail overlay.
type HistoryWorkflow struct {
	svc  client.Service
	opts Options

	history []quiz.HistoryEntry
	list    viewstate.State[[]quiz.HistoryEntry]
	detail  viewstate.State[*quiz.Quiz]
	overlay overlay.Overlay

	listTokens   viewstate.Tokens
	detailTokens viewstate.Tokens
}

// NewHistoryWorkflow creates a workflow with an empty list and an idle,
// closed detail view.
func NewHistoryWorkflow(svc client.Service, opts Options) *HistoryWorkflow {
	return &HistoryWorkflow{
		svc:     svc,
		opts:    opts,
		history: []quiz.HistoryEntry{},
	}
}

// History returns the list as of the most recent successful load.
func (w *HistoryWorkflow) History() []quiz.HistoryEntry { return w.history }

// ListState reports the status of the latest list load.
func (w *HistoryWorkflow) ListState() viewstate.State[[]quiz.HistoryEntry] { return w.list }

// Detail reports the status of the latest quiz fetch.
func (w *HistoryWorkflow) Detail() viewstate.State[*quiz.Quiz] { return w.detail }

// Overlay exposes the detail overlay for rendering.
func (w *HistoryWorkflow) Overlay() *overlay.Overlay { return &w.overlay }

// Activate loads the history list. Call it each time the history view
// becomes visible.
func (w *HistoryWorkflow) Activate() tea.Cmd {
	token := w.listTokens.Next()
	w.list = viewstate.Loading[[]quiz.HistoryEntry]()

	svc := w.svc
	opts := w.opts
	return func() tea.Msg {
		ctx, cancel := opts.requestContext()
		defer cancel()

		entries, err := svc.ListHistory(ctx)
		return HistoryLoadedMsg{Token: token, Entries: entries, Err: err}
	}
}

// ApplyList records a list result. On failure the previous list is kept
// and the failure is exposed through ListState. Stale results are
// dropped and false is returned.
func (w *HistoryWorkflow) ApplyList(msg HistoryLoadedMsg) bool {
	if !w.listTokens.IsLatest(msg.Token) {
		return false
	}
	if msg.Err != nil {
		w.list = viewstate.Failure[[]quiz.HistoryEntry](failureMessage(msg.Err, ListFailedMessage))
		return true
	}

	entries := msg.Entries
	if entries == nil {
		entries = []quiz.HistoryEntry{}
	}
	w.history = entries
	w.list = viewstate.Success(entries)
	return true
}

// SelectEntry fetches the full quiz for id. The overlay opens only once
// the fetch succeeds.
func (w *HistoryWorkflow) SelectEntry(id quiz.ID) tea.Cmd {
	token := w.detailTokens.Next()
	w.detail = viewstate.Loading[*quiz.Quiz]()

	svc := w.svc
	opts := w.opts
	return func() tea.Msg {
		ctx, cancel := opts.requestContext()
		defer cancel()

		q, err := svc.FetchQuiz(ctx, id)
		return QuizFetchedMsg{Token: token, ID: id, Quiz: q, Err: err}
	}
}

// ApplyDetail records a fetch result. Success opens the overlay with the
// quiz; failure leaves the overlay as it was. Stale results are dropped
// and false is returned.
func (w *HistoryWorkflow) ApplyDetail(msg QuizFetchedMsg) bool {
	if !w.detailTokens.IsLatest(msg.Token) {
		return false
	}
	switch {
	case msg.Err != nil:
		w.detail = viewstate.Failure[*quiz.Quiz](failureMessage(msg.Err, DetailFailedMessage))
	case msg.Quiz == nil:
		w.detail = viewstate.Failure[*quiz.Quiz](DetailFailedMessage)
	default:
		w.detail = viewstate.Success(msg.Quiz)
		w.overlay.Open(msg.Quiz)
	}
	return true
}

// CloseDetail hides the overlay and resets the detail state to Idle.
func (w *HistoryWorkflow) CloseDetail() {
	w.overlay.Close()
	w.detail = viewstate.Idle[*quiz.Quiz]()
}
