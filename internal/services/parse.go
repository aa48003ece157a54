package services

import (
	"encoding/json"
	"strings"
)

// ParseResult is the two-stage outcome of interpreting model output:
// either well-formed structured output, or raw text kept aside for
// salvage into the capability's best-fit field.
type ParseResult[T any] struct {
	Output   T
	Salvaged bool
	Raw      string
}

// parseModelJSON strips markdown fences and attempts a strict
// unmarshal, then a brace-delimited extraction. When both fail the
// trimmed raw text is handed back for salvage rather than discarded.
func parseModelJSON[T any](raw string) ParseResult[T] {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var out T
	if err := json.Unmarshal([]byte(text), &out); err == nil {
		return ParseResult[T]{Output: out}
	}

	// Models sometimes wrap the object in prose. Try the outermost braces.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(text[start:end+1]), &out); err == nil {
			return ParseResult[T]{Output: out}
		}
	}

	return ParseResult[T]{Salvaged: true, Raw: text}
}
