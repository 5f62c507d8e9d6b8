package payoff

import (
	"encoding/json"
	"strings"
)

// Extraction is the result of a best-effort search for a JSON object in
// free text.
type Extraction struct {
	JSON   []byte
	Found  bool
	Reason string
}

// Decode unmarshals the extracted object into v. It reports false when
// nothing was found or the object does not fit v.
func (e Extraction) Decode(v any) bool {
	if !e.Found {
		return false
	}
	return json.Unmarshal(e.JSON, v) == nil
}

// ExtractJSONObject returns the first balanced {...} block in text that is
// valid JSON. Braces inside JSON strings are ignored. It never panics.
func ExtractJSONObject(text string) Extraction {
	if strings.TrimSpace(text) == "" {
		return Extraction{Reason: "empty response"}
	}

	reason := "no JSON object found"
	for start := 0; start < len(text); start++ {
		if text[start] != '{' {
			continue
		}
		end, ok := matchBrace(text, start)
		if !ok {
			reason = "unbalanced braces"
			continue
		}
		candidate := text[start : end+1]
		if json.Valid([]byte(candidate)) {
			return Extraction{JSON: []byte(candidate), Found: true}
		}
		reason = "invalid JSON object"
	}
	return Extraction{Reason: reason}
}

// matchBrace returns the index of the brace closing the one at start.
func matchBrace(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
