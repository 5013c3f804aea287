// Package scan locates literal pattern occurrences in text and maps them
// back onto line boundaries.
package scan

import "strings"

// Span is one occurrence of a pattern within a text, given as byte offsets.
// End is exclusive.
type Span struct {
	Start int
	End   int
}

// IndexAll finds every non-overlapping occurrence of pattern in text, left
// to right. Search resumes at the end of the previous match, so overlapping
// candidates are never double-counted. pattern must be non-empty.
func IndexAll(text, pattern string) []Span {
	var spans []Span
	start := 0
	for start < len(text) {
		idx := strings.Index(text[start:], pattern)
		if idx < 0 {
			break
		}
		pos := start + idx
		spans = append(spans, Span{Start: pos, End: pos + len(pattern)})
		start = pos + len(pattern)
	}
	return spans
}
