package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/wikiquiz/internal/quiz"
)

const (
	// DefaultBaseURL is where the reference service listens.
	DefaultBaseURL = "http://localhost:8000"

	// RequestIDHeader carries a per-request UUID for correlating client
	// and service logs.
	RequestIDHeader = "X-Request-ID"

	maxBodyBytes = 4 << 20
)

// HTTPClient implements Service over the quiz service's JSON HTTP API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	requestID  func() string
}

var _ Service = (*HTTPClient)(nil)

type generateRequest struct {
	URL string `json:"url"`
}

// NewHTTPClient creates a client addressing every operation relative to
// baseURL. A nil httpClient uses http.DefaultClient.
func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		requestID:  func() string { return uuid.New().String() },
	}
}

// BaseURL returns the normalized service location.
func (c *HTTPClient) BaseURL() string { return c.baseURL }

func (c *HTTPClient) GenerateQuiz(ctx context.Context, articleURL string) (*quiz.Quiz, error) {
	var q quiz.Quiz
	err := c.doJSON(ctx, OpGenerateQuiz, http.MethodPost, "/generate_quiz",
		generateRequest{URL: articleURL}, QuizSchema, &q)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *HTTPClient) ListHistory(ctx context.Context) ([]quiz.HistoryEntry, error) {
	var entries []quiz.HistoryEntry
	if err := c.doJSON(ctx, OpListHistory, http.MethodGet, "/history", nil, HistorySchema, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []quiz.HistoryEntry{}
	}
	return entries, nil
}

func (c *HTTPClient) FetchQuiz(ctx context.Context, id quiz.ID) (*quiz.Quiz, error) {
	if strings.TrimSpace(id.String()) == "" {
		return nil, &ServiceError{Op: OpFetchQuiz, Kind: KindNotFound, Message: "quiz id is required"}
	}
	var q quiz.Quiz
	path := "/quiz/" + url.PathEscape(id.String())
	if err := c.doJSON(ctx, OpFetchQuiz, http.MethodGet, path, nil, QuizSchema, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, op Op, method, path string, requestBody any, schema *Schema, responseBody any) error {
	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, c.requestID())
	if requestBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return unavailable(op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return unavailable(op, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		kind := KindStatus
		if resp.StatusCode == http.StatusNotFound {
			kind = KindNotFound
		}
		return &ServiceError{
			Op:         op,
			Kind:       kind,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw),
		}
	}

	if err := validateBody(schema, raw); err != nil {
		return malformed(op, resp.StatusCode, err)
	}
	if err := json.Unmarshal(raw, responseBody); err != nil {
		return malformed(op, resp.StatusCode, err)
	}
	return nil
}

// errorMessage extracts the service-provided failure text. Bare JSON
// strings and {"detail"|"error"|"message": "..."} objects yield the string.
// Other bodies are returned trimmed; an empty body yields "" so callers
// can apply their own fallback.
func errorMessage(raw []byte) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil && strings.TrimSpace(text) != "" {
		return text
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err == nil {
		for _, key := range []string{"detail", "error", "message"} {
			if s, ok := payload[key].(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return strings.TrimSpace(string(raw))
}

func unavailable(op Op, err error) error {
	msg := "quiz service unavailable"
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		msg = "quiz service did not respond in time"
	case errors.Is(err, context.Canceled):
		msg = "request canceled"
	}
	return &ServiceError{Op: op, Kind: KindUnavailable, Message: msg, Err: err}
}

func malformed(op Op, status int, err error) error {
	return &ServiceError{
		Op:         op,
		Kind:       KindMalformedResponse,
		StatusCode: status,
		Message:    "quiz service returned a malformed response",
		Err:        err,
	}
}
