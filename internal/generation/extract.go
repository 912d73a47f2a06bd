package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractJSON finds the outermost JSON value of the given kind in s.
// Models sometimes wrap JSON in prose or markdown fences.
func extractJSON(s string, kind SchemaKind) (string, error) {
	open, closing := "{", "}"
	if kind == KindArrayOfStrings {
		open, closing = "[", "]"
	}

	s = strings.TrimSpace(s)
	start := strings.Index(s, open)
	end := strings.LastIndex(s, closing)
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON %s found in response", kind)
	}

	out := s[start : end+1]
	if !json.Valid([]byte(out)) {
		return "", fmt.Errorf("response does not contain valid JSON")
	}
	return out, nil
}
