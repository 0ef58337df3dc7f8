package llm

import (
	"fmt"
	"regexp"
	"strings"
)

// FormatError means the model responded over a healthy transport but the
// content could not be interpreted. Kept distinct from network failures so
// callers retry the latter and surface the former.
type FormatError struct {
	Reason string
	Raw    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("llm format error: %s", e.Reason)
}

var fenceRe = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)```")

// extractJSON digs the JSON document out of a completion content. Models
// wrap their answer in code fences or prose despite instructions, so the
// extraction is lenient: prefer a fenced block, otherwise take the span from
// the first '{' to the last '}'.
func extractJSON(content string) (string, error) {
	text := strings.TrimSpace(content)
	if text == "" {
		return "", &FormatError{Reason: "empty content"}
	}

	if m := fenceRe.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	if !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "[") {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start < 0 || end <= start {
			return "", &FormatError{Reason: "no JSON document in content", Raw: content}
		}
		text = text[start : end+1]
	}

	return text, nil
}
