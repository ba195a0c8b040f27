package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator checks a decoded value before ExtractJSON returns it.
type SchemaValidator[T any] func(T) error

// ExtractJSON digs a JSON object of type T out of raw model output.
// Models wrap their JSON in markdown fences, surrounding prose and the
// occasional comment, so the text is cleaned before decoding. A
// non-nil validator runs on the decoded value.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	block := firstObject(dropFences(raw))
	if block == "" {
		return zero, fmt.Errorf("%w: no JSON object in response", ErrInvalidOutput)
	}

	var out T
	if err := json.Unmarshal([]byte(stripComments(block)), &out); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validator != nil {
		if err := validator(out); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return out, nil
}

// dropFences removes markdown code fence lines, keeping what is
// between them.
func dropFences(s string) string {
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// firstObject returns the first balanced { ... } block, tracking
// string literals so braces inside values don't count.
func firstObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inStr, esc := false, false
	for i := start; i < len(s); i++ {
		switch c := s[i]; {
		case esc:
			esc = false
		case inStr && c == '\\':
			esc = true
		case c == '"':
			inStr = !inStr
		case inStr:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// stripComments drops // and /* */ comments outside string values.
// Some models sprinkle them into JSON no matter what the prompt says.
func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inStr, esc := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case esc:
			esc = false
		case inStr && c == '\\':
			esc = true
		case c == '"':
			inStr = !inStr
		case !inStr && c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		case !inStr && c == '/' && i+1 < len(s) && s[i+1] == '*':
			i += 2
			for i+1 < len(s) && !(s[i] == '*' && s[i+1] == '/') {
				i++
			}
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
