package insight

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON is returned when no candidate in a model response parses as JSON.
var ErrNoJSON = errors.New("failed to parse AI response as JSON")

var fencedBlock = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)\\s*```")

// ExtractJSON pulls the first parseable JSON document out of free text. Candidates are
// tried in order: a fenced code block, the outermost bracket or brace delimited
// substring, then the whole text.
func ExtractJSON(text string) (interface{}, error) {
	for _, candidate := range jsonCandidates(text) {
		var value interface{}
		if err := json.Unmarshal([]byte(candidate), &value); err == nil {
			return value, nil
		}
	}
	return nil, ErrNoJSON
}

func jsonCandidates(text string) []string {
	candidates := make([]string, 0, 4)
	if match := fencedBlock.FindStringSubmatch(text); match != nil {
		candidates = append(candidates, match[1])
	}

	object, objectStart := delimited(text, '{', '}')
	array, arrayStart := delimited(text, '[', ']')
	switch {
	case objectStart >= 0 && (arrayStart < 0 || objectStart < arrayStart):
		candidates = append(candidates, object)
		if arrayStart >= 0 {
			candidates = append(candidates, array)
		}
	case arrayStart >= 0:
		candidates = append(candidates, array)
		if objectStart >= 0 {
			candidates = append(candidates, object)
		}
	}

	return append(candidates, strings.TrimSpace(text))
}

// delimited returns the span from the first open to the last close, and its start.
func delimited(text string, open, close byte) (string, int) {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start < 0 || end <= start {
		return "", -1
	}
	return text[start : end+1], start
}
