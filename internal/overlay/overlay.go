package overlay

import (
	"github.com/abhisek/wikiquiz/internal/quiz"
	"github.com/abhisek/wikiquiz/internal/render"
)

// Overlay is a dismissible surface showing one quiz. The zero value is
// closed.
type Overlay struct {
	open bool
	quiz *quiz.Quiz
}

// Open shows q, replacing whatever is displayed. A nil quiz is a no-op.
func (o *Overlay) Open(q *quiz.Quiz) {
	if q == nil {
		return
	}
	o.open = true
	o.quiz = q
}

// Close hides the overlay and drops the displayed quiz. Closing a closed
// overlay does nothing.
func (o *Overlay) Close() {
	if !o.open {
		return
	}
	o.open = false
	o.quiz = nil
}

// IsOpen reports whether the overlay is visible.
func (o *Overlay) IsOpen() bool { return o.open }

// Quiz returns the displayed quiz, or nil when closed.
func (o *Overlay) Quiz() *quiz.Quiz { return o.quiz }

// Document renders the displayed quiz; nil when closed.
func (o *Overlay) Document() *render.Document {
	if !o.open {
		return nil
	}
	return render.Render(o.quiz)
}
