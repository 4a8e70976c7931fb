package client

import (
	"context"

	"github.com/abhisek/wikiquiz/internal/quiz"
)

// Service is the logical contract of the quiz service: quiz generation
// plus the history store. Each method is a single round trip; failures are
// returned immediately and never retried.
type Service interface {
	// GenerateQuiz asks the service to build a quiz for a Wikipedia
	// article URL.
	GenerateQuiz(ctx context.Context, url string) (*quiz.Quiz, error)

	// ListHistory returns summaries of previously generated quizzes.
	ListHistory(ctx context.Context) ([]quiz.HistoryEntry, error)

	// FetchQuiz retrieves one stored quiz by ID.
	FetchQuiz(ctx context.Context, id quiz.ID) (*quiz.Quiz, error)
}

// Op names a Service operation in errors and logs.
type Op string

const (
	OpGenerateQuiz Op = "generate_quiz"
	OpListHistory  Op = "list_history"
	OpFetchQuiz    Op = "fetch_quiz"
)
