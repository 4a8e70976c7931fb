package quiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateArticleURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"article", "https://en.wikipedia.org/wiki/Dog", true},
		{"article with parens", "https://en.wikipedia.org/wiki/Python_(programming_language)", true},
		{"article with fragment", "https://en.wikipedia.org/wiki/Go#History", true},
		{"empty", "", false},
		{"http scheme", "http://en.wikipedia.org/wiki/Dog", false},
		{"other language", "https://de.wikipedia.org/wiki/Hund", false},
		{"mobile host", "https://en.m.wikipedia.org/wiki/Dog", false},
		{"missing article", "https://en.wikipedia.org/wiki/", false},
		{"not wiki path", "https://en.wikipedia.org/w/index.php?title=Dog", false},
		{"leading space", " https://en.wikipedia.org/wiki/Dog", false},
		{"lookalike host", "https://en.wikipedia.org.evil.com/wiki/Dog", false},
		{"plain text", "dogs", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArticleURL(tt.input)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.input, vErr.Input)
			assert.Equal(t, InvalidURLMessage, err.Error())
		})
	}
}
