package quiz

import "regexp"

// InvalidURLMessage is the user-visible text for a rejected article URL.
const InvalidURLMessage = "Please enter a valid Wikipedia article URL."

var articleURLPattern = regexp.MustCompile(`^https://en\.wikipedia\.org/wiki/.+`)

// ValidationError reports that the input is not an English Wikipedia
// article URL. Its message never includes the input.
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string {
	return InvalidURLMessage
}

// ValidateArticleURL checks that s is an https URL on en.wikipedia.org whose
// path is /wiki/ followed by a non-empty article segment. The input is
// matched as-is; callers that want trimming must trim first.
func ValidateArticleURL(s string) error {
	if !articleURLPattern.MatchString(s) {
		return &ValidationError{Input: s}
	}
	return nil
}
