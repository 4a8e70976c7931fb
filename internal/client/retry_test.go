package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/wikiquiz/internal/quiz"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func down() error {
	return &ServiceError{Op: OpListHistory, Kind: KindUnavailable, Message: "quiz service unavailable"}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockService().OnHistory(MockResponse{History: []quiz.HistoryEntry{{ID: "1"}}})
	svc := WithRetry(mock, retryConfig())

	entries, err := svc.ListHistory(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if mock.HistoryCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.HistoryCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockService().OnFetch(
		MockResponse{Err: down()},
		MockResponse{Err: &ServiceError{Op: OpFetchQuiz, Kind: KindStatus, StatusCode: 503, Message: "busy"}},
		MockResponse{Quiz: &quiz.Quiz{ArticleTitle: "Dog"}},
	)
	svc := WithRetry(mock, retryConfig())

	q, err := svc.FetchQuiz(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ArticleTitle != "Dog" {
		t.Fatalf("unexpected quiz %q", q.ArticleTitle)
	}
	if mock.FetchCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.FetchCount())
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockService().OnHistory(
		MockResponse{Err: down()},
		MockResponse{Err: down()},
		MockResponse{Err: down()},
		MockResponse{History: []quiz.HistoryEntry{}},
	)
	svc := WithRetry(mock, retryConfig())

	_, err := svc.ListHistory(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.HistoryCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.HistoryCount())
	}
}

func TestRetry_PermanentErrorsNotRetried(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not found", &ServiceError{Op: OpFetchQuiz, Kind: KindNotFound, StatusCode: 404, Message: "Quiz not found"}},
		{"bad request", &ServiceError{Op: OpFetchQuiz, Kind: KindStatus, StatusCode: 400, Message: "bad"}},
		{"malformed", &ServiceError{Op: OpFetchQuiz, Kind: KindMalformedResponse, StatusCode: 200}},
		{"canceled", unavailable(OpFetchQuiz, context.Canceled)},
		{"plain", errors.New("boom")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockService().OnFetch(MockResponse{Err: tt.err}, MockResponse{Quiz: &quiz.Quiz{}})
			svc := WithRetry(mock, retryConfig())

			if _, err := svc.FetchQuiz(context.Background(), "1"); err == nil {
				t.Fatal("expected error")
			}
			if mock.FetchCount() != 1 {
				t.Fatalf("expected 1 call, got %d", mock.FetchCount())
			}
		})
	}
}

func TestRetry_RateLimitRetried(t *testing.T) {
	mock := NewMockService().OnHistory(
		MockResponse{Err: &ServiceError{Op: OpListHistory, Kind: KindStatus, StatusCode: 429, Message: "slow down"}},
		MockResponse{History: []quiz.HistoryEntry{}},
	)
	svc := WithRetry(mock, retryConfig())

	if _, err := svc.ListHistory(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.HistoryCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.HistoryCount())
	}
}

func TestRetry_GenerateNeverRetried(t *testing.T) {
	mock := NewMockService().OnGenerate(
		MockResponse{Err: &ServiceError{Op: OpGenerateQuiz, Kind: KindUnavailable, Message: "down"}},
		MockResponse{Quiz: &quiz.Quiz{}},
	)
	svc := WithRetry(mock, retryConfig())

	if _, err := svc.GenerateQuiz(context.Background(), "https://en.wikipedia.org/wiki/Dog"); err == nil {
		t.Fatal("expected error")
	}
	if mock.GenerateCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.GenerateCount())
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockService().OnHistory(
		MockResponse{Err: down()},
		MockResponse{History: []quiz.HistoryEntry{}},
	)
	cfg := retryConfig()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour
	svc := WithRetry(mock, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := svc.ListHistory(ctx)
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.HistoryCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.HistoryCount())
	}
}

func TestRetry_SingleAttemptIsPassthrough(t *testing.T) {
	mock := NewMockService()
	if svc := WithRetry(mock, RetryConfig{MaxAttempts: 1}); svc != Service(mock) {
		t.Error("expected the inner service back")
	}
}
