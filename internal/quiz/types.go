package quiz

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ID identifies a quiz stored by the history service. The reference
// service uses integer keys; string keys are accepted as well.
type ID string

// ParseID validates a user-supplied identifier.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("quiz id is required")
	}
	return ID(s), nil
}

func (id ID) String() string { return string(id) }

// UnmarshalJSON accepts both JSON numbers and strings.
func (id *ID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("quiz id must be a number or string: %s", data)
	}
	*id = ID(s)
	return nil
}

// MarshalJSON emits integer IDs as numbers so they round-trip with the
// reference service.
func (id ID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Quiz is a generated multiple-choice quiz about one article.
type Quiz struct {
	// ID is set only when the quiz was retrieved from history.
	ID            *ID        `json:"id,omitempty"`
	ArticleTitle  string     `json:"article_title"`
	Summary       string     `json:"summary"`
	KeyEntities   []string   `json:"key_entities"`
	RelatedTopics []string   `json:"related_topics"`
	Questions     []Question `json:"questions"`
}

// Question is a single multiple-choice question.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

// AnswerIndex returns the index of the option equal to Answer, or -1.
// The generation service is expected to guarantee a match; the client
// does not enforce it.
func (q Question) AnswerIndex() int {
	for i, o := range q.Options {
		if o == q.Answer {
			return i
		}
	}
	return -1
}

// AnswerInOptions reports whether Answer is one of Options.
func (q Question) AnswerInOptions() bool {
	return q.AnswerIndex() >= 0
}

// HistoryEntry summarizes a previously generated quiz.
type HistoryEntry struct {
	ID            ID        `json:"id"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	DateGenerated time.Time `json:"date_generated"`
}

type historyEntryJSON struct {
	ID            ID      `json:"id"`
	Title         *string `json:"title"`
	URL           string  `json:"url"`
	DateGenerated string  `json:"date_generated"`
}

func (h *HistoryEntry) UnmarshalJSON(data []byte) error {
	var raw historyEntryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var ts time.Time
	if raw.DateGenerated != "" {
		parsed, err := ParseTimestamp(raw.DateGenerated)
		if err != nil {
			return err
		}
		ts = parsed
	}
	h.ID = raw.ID
	h.Title = ""
	if raw.Title != nil {
		h.Title = *raw.Title
	}
	h.URL = raw.URL
	h.DateGenerated = ts
	return nil
}

func (h HistoryEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID            ID     `json:"id"`
		Title         string `json:"title"`
		URL           string `json:"url"`
		DateGenerated string `json:"date_generated"`
	}{h.ID, h.Title, h.URL, h.DateGenerated.UTC().Format(time.RFC3339Nano)})
}

// Layouts without a zone are read as UTC; the reference backend stores
// naive UTC datetimes.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp parses a history timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
