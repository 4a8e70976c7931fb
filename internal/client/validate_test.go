package client

import (
	"strings"
	"testing"
)

func TestValidateBody_QuizValid(t *testing.T) {
	if err := validateBody(QuizSchema, []byte(dogQuizJSON)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateBody_QuizStringID(t *testing.T) {
	raw := `{"id":"abc","article_title":"Dog","summary":"s","questions":[]}`
	if err := validateBody(QuizSchema, []byte(raw)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateBody_QuizMissingAnswer(t *testing.T) {
	raw := `{"article_title":"Dog","summary":"s","questions":[{"question":"q","options":["a"]}]}`
	err := validateBody(QuizSchema, []byte(raw))
	if err == nil {
		t.Fatal("expected error for question without answer")
	}
	if !strings.Contains(err.Error(), "quiz") {
		t.Errorf("error should name the schema, got: %v", err)
	}
}

func TestValidateBody_HistoryValid(t *testing.T) {
	raw := `[{"id":1,"title":null,"url":"https://en.wikipedia.org/wiki/Dog","date_generated":"2024-01-01T00:00:00"}]`
	if err := validateBody(HistorySchema, []byte(raw)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateBody_HistoryMissingID(t *testing.T) {
	raw := `[{"title":"Dog","url":"u","date_generated":"2024-01-01"}]`
	if err := validateBody(HistorySchema, []byte(raw)); err == nil {
		t.Fatal("expected error for entry without id")
	}
}

func TestValidateBody_InvalidJSON(t *testing.T) {
	err := validateBody(nil, []byte(`{"unterminated"`))
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateBody_NilSchemaAcceptsAnyJSON(t *testing.T) {
	if err := validateBody(nil, []byte(`{"anything":[1,2,3]}`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestCompiledSchema_Cached(t *testing.T) {
	first, err := compiledSchema(QuizSchema)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, err := compiledSchema(QuizSchema)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if first != second {
		t.Error("expected cached schema to be reused")
	}
}
