package client

// Schema defines the JSON structure expected in a success response.
type Schema struct {
	// Name identifies the schema in the compile cache.
	Name string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

var stringList = map[string]any{
	"type":  []any{"array", "null"},
	"items": map[string]any{"type": "string"},
}

var questionDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{"type": "string"},
		"options": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"answer":      map[string]any{"type": "string"},
		"explanation": map[string]any{"type": []any{"string", "null"}},
	},
	"required": []any{"question", "options", "answer"},
}

// QuizSchema describes the quiz returned by generate_quiz and fetch_quiz.
// An empty questions array is accepted; renderers degrade gracefully.
var QuizSchema = &Schema{
	Name: "quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":             map[string]any{"type": []any{"integer", "string"}},
			"article_title":  map[string]any{"type": "string"},
			"summary":        map[string]any{"type": "string"},
			"key_entities":   stringList,
			"related_topics": stringList,
			"questions": map[string]any{
				"type":  "array",
				"items": questionDefinition,
			},
		},
		"required": []any{"article_title", "summary", "questions"},
	},
}

// HistorySchema describes the history list.
var HistorySchema = &Schema{
	Name: "history",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":             map[string]any{"type": []any{"integer", "string"}},
				"title":          map[string]any{"type": []any{"string", "null"}},
				"url":            map[string]any{"type": "string"},
				"date_generated": map[string]any{"type": []any{"string", "null"}},
			},
			"required": []any{"id", "url", "date_generated"},
		},
	},
}
