package workflow

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wikiquiz/internal/client"
	"github.com/abhisek/wikiquiz/internal/quiz"
	"github.com/abhisek/wikiquiz/internal/viewstate"
)

// GenerateFailedMessage is shown when generation fails without a message.
const GenerateFailedMessage = "Failed to generate quiz."

// QuizGeneratedMsg carries the outcome of one GenerateQuiz request.
type QuizGeneratedMsg struct {
	Token viewstate.Token
	URL   string
	Quiz  *quiz.Quiz
	Err   error
}

// GenerateWorkflow validates an article URL, requests a quiz for it, and
// tracks the request's view state.
type GenerateWorkflow struct {
	svc    client.Service
	opts   Options
	input  string
	state  viewstate.State[*quiz.Quiz]
	tokens viewstate.Tokens
}

// NewGenerateWorkflow creates an idle workflow.
func NewGenerateWorkflow(svc client.Service, opts Options) *GenerateWorkflow {
	return &GenerateWorkflow{svc: svc, opts: opts}
}

// SetURL updates the input string.
func (w *GenerateWorkflow) SetURL(text string) { w.input = text }

// URL returns the current input string.
func (w *GenerateWorkflow) URL() string { return w.input }

// State returns the current view state.
func (w *GenerateWorkflow) State() viewstate.State[*quiz.Quiz] { return w.state }

// Submit validates the input. An invalid URL moves the state to Failure
// and returns nil; no request is made. A valid URL moves the state to
// Loading and returns the command that performs exactly one GenerateQuiz
// call with the input as typed.
//
// Submit does not refuse while Loading: a newer submission supersedes the
// older one, whose result is then discarded by Apply. Views gate their
// trigger on State().IsLoading().
func (w *GenerateWorkflow) Submit() tea.Cmd {
	token := w.tokens.Next()

	if err := quiz.ValidateArticleURL(w.input); err != nil {
		w.state = viewstate.Failure[*quiz.Quiz](err.Error())
		return nil
	}

	w.state = viewstate.Loading[*quiz.Quiz]()
	url := w.input
	svc := w.svc
	opts := w.opts
	return func() tea.Msg {
		ctx, cancel := opts.requestContext()
		defer cancel()

		q, err := svc.GenerateQuiz(ctx, url)
		return QuizGeneratedMsg{Token: token, URL: url, Quiz: q, Err: err}
	}
}

// Apply records the outcome of a request. It returns false, changing
// nothing, when msg belongs to a superseded request.
func (w *GenerateWorkflow) Apply(msg QuizGeneratedMsg) bool {
	if !w.tokens.IsLatest(msg.Token) {
		return false
	}
	switch {
	case msg.Err != nil:
		w.state = viewstate.Failure[*quiz.Quiz](failureMessage(msg.Err, GenerateFailedMessage))
	case msg.Quiz == nil:
		w.state = viewstate.Failure[*quiz.Quiz](GenerateFailedMessage)
	default:
		w.state = viewstate.Success(msg.Quiz)
	}
	return true
}
