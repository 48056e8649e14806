package scan

import (
	"encoding/json"
	"strings"
)

// repairJSON recovers one JSON object from untrusted model output. Replies
// are frequently wrapped in prose or code fences, so a direct parse is only
// the first attempt:
//
//  1. parse the trimmed reply as-is,
//  2. slice from the first '{' to the last '}' and parse that,
//  3. scan for balanced top-level {...} spans, string-aware, and try each.
//
// The first-to-last heuristic alone breaks when surrounding prose contains
// brace characters; the balanced scan covers that case.
func repairJSON(raw string) (map[string]any, error) {
	trimmed := strings.TrimSpace(raw)
	if obj, ok := tryParse(trimmed); ok {
		return obj, nil
	}

	start := strings.IndexByte(trimmed, '{')
	end := strings.LastIndexByte(trimmed, '}')
	if start == -1 || end <= start {
		return nil, ErrNoJSON
	}
	if obj, ok := tryParse(trimmed[start : end+1]); ok {
		return obj, nil
	}

	for _, span := range balancedSpans(trimmed) {
		if obj, ok := tryParse(span); ok {
			return obj, nil
		}
	}
	return nil, ErrNoJSON
}

func tryParse(candidate string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, false
	}
	if obj == nil {
		return nil, false
	}
	return obj, true
}

// balancedSpans returns every top-level {...} span in s, tracking JSON
// string and escape state so braces inside string literals don't count.
func balancedSpans(s string) []string {
	var spans []string
	depth := 0
	start := -1
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					spans = append(spans, s[start:i+1])
					start = -1
				}
			}
		}
	}
	return spans
}
