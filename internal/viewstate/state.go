package viewstate

import "sync/atomic"

// Phase is the stage of a single asynchronous operation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// State is a tagged variant over Idle, Loading, Success(payload) and
// Failure(message). The zero value is Idle. Exactly one phase holds; the
// payload is meaningful only in PhaseSuccess and the message only in
// PhaseFailure.
type State[T any] struct {
	phase   Phase
	payload T
	message string
}

// Idle returns the initial state.
func Idle[T any]() State[T] { return State[T]{} }

// Loading returns the in-flight state.
func Loading[T any]() State[T] { return State[T]{phase: PhaseLoading} }

// Success returns a completed state carrying v.
func Success[T any](v T) State[T] { return State[T]{phase: PhaseSuccess, payload: v} }

// Failure returns a failed state carrying a user-visible message.
func Failure[T any](msg string) State[T] { return State[T]{phase: PhaseFailure, message: msg} }

func (s State[T]) Phase() Phase    { return s.phase }
func (s State[T]) IsIdle() bool    { return s.phase == PhaseIdle }
func (s State[T]) IsLoading() bool { return s.phase == PhaseLoading }
func (s State[T]) IsSuccess() bool { return s.phase == PhaseSuccess }
func (s State[T]) IsFailure() bool { return s.phase == PhaseFailure }

// Payload returns the success value and whether the state is Success.
func (s State[T]) Payload() (T, bool) {
	if s.phase != PhaseSuccess {
		var zero T
		return zero, false
	}
	return s.payload, true
}

// Message returns the failure message, or "" outside PhaseFailure.
func (s State[T]) Message() string {
	if s.phase != PhaseFailure {
		return ""
	}
	return s.message
}

// Token tags one issued request.
type Token uint64

// Tokens issues monotonically increasing request tokens for a single
// operation slot and remembers the latest one.
type Tokens struct {
	latest atomic.Uint64
}

// Next issues a new token, superseding every earlier one.
func (t *Tokens) Next() Token {
	return Token(t.latest.Add(1))
}

// IsLatest reports whether tok is the most recently issued token.
func (t *Tokens) IsLatest(tok Token) bool {
	return tok != 0 && uint64(tok) == t.latest.Load()
}
