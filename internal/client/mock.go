package client

import (
	"context"
	"sync"

	"github.com/abhisek/wikiquiz/internal/quiz"
)

// MockResponse is a canned result for one MockService call.
type MockResponse struct {
	Quiz    *quiz.Quiz
	History []quiz.HistoryEntry
	Err     error

	// Release, when non-nil, holds the response until it is closed or the
	// call's context ends. Tests use it to control completion order.
	Release chan struct{}
}

// MockService is a deterministic Service for tests. Each operation has
// its own FIFO queue of canned responses; every call is recorded.
type MockService struct {
	mu       sync.Mutex
	generate []MockResponse
	history  []MockResponse
	fetch    []MockResponse

	GenerateCalls []string
	HistoryCalls  int
	FetchCalls    []quiz.ID
}

var _ Service = (*MockService)(nil)

// NewMockService creates an empty MockService.
func NewMockService() *MockService {
	return &MockService{}
}

// OnGenerate queues responses for GenerateQuiz.
func (m *MockService) OnGenerate(resps ...MockResponse) *MockService {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generate = append(m.generate, resps...)
	return m
}

// OnHistory queues responses for ListHistory.
func (m *MockService) OnHistory(resps ...MockResponse) *MockService {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append(m.history, resps...)
	return m
}

// OnFetch queues responses for FetchQuiz.
func (m *MockService) OnFetch(resps ...MockResponse) *MockService {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetch = append(m.fetch, resps...)
	return m
}

func (m *MockService) GenerateQuiz(ctx context.Context, url string) (*quiz.Quiz, error) {
	m.mu.Lock()
	m.GenerateCalls = append(m.GenerateCalls, url)
	resp, ok := pop(&m.generate)
	m.mu.Unlock()

	if err := wait(ctx, OpGenerateQuiz, resp, ok); err != nil {
		return nil, err
	}
	return resp.Quiz, nil
}

func (m *MockService) ListHistory(ctx context.Context) ([]quiz.HistoryEntry, error) {
	m.mu.Lock()
	m.HistoryCalls++
	resp, ok := pop(&m.history)
	m.mu.Unlock()

	if err := wait(ctx, OpListHistory, resp, ok); err != nil {
		return nil, err
	}
	return resp.History, nil
}

func (m *MockService) FetchQuiz(ctx context.Context, id quiz.ID) (*quiz.Quiz, error) {
	m.mu.Lock()
	m.FetchCalls = append(m.FetchCalls, id)
	resp, ok := pop(&m.fetch)
	m.mu.Unlock()

	if err := wait(ctx, OpFetchQuiz, resp, ok); err != nil {
		return nil, err
	}
	return resp.Quiz, nil
}

// GenerateCount returns the number of GenerateQuiz calls made.
func (m *MockService) GenerateCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.GenerateCalls)
}

// FetchCount returns the number of FetchQuiz calls made.
func (m *MockService) FetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.FetchCalls)
}

// HistoryCount returns the number of ListHistory calls made.
func (m *MockService) HistoryCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.HistoryCalls
}

func pop(queue *[]MockResponse) (MockResponse, bool) {
	if len(*queue) == 0 {
		return MockResponse{}, false
	}
	resp := (*queue)[0]
	*queue = (*queue)[1:]
	return resp, true
}

func wait(ctx context.Context, op Op, resp MockResponse, ok bool) error {
	if !ok {
		return &ServiceError{Op: op, Kind: KindUnavailable, Message: "no mock response queued"}
	}
	if resp.Release != nil {
		select {
		case <-resp.Release:
		case <-ctx.Done():
			return unavailable(op, ctx.Err())
		}
	}
	return resp.Err
}
