// Package ansi holds the fixed escape sequences used to mark matches and the
// per-line highlight rendering built on them.
package ansi

import (
	"strings"

	"github.com/dl/powpow/internal/scan"
)

// The markers are process-wide constants. Callers that want uncolored output
// skip highlighting entirely rather than swapping these out.
const (
	Red   = "\x1b[31m"
	Reset = "\x1b[0m"
)

// Highlight wraps every span of line in Red/Reset markers. Spans are
// line-relative, ordered and non-overlapping; a span that runs past the end
// of the line is clamped.
func Highlight(line string, spans []scan.Span) string {
	if len(spans) == 0 {
		return line
	}

	var b strings.Builder
	b.Grow(len(line) + len(spans)*(len(Red)+len(Reset)))

	prev := 0
	for _, sp := range spans {
		start, end := sp.Start, sp.End
		if start > len(line) {
			break
		}
		if end > len(line) {
			end = len(line)
		}
		if start > prev {
			b.WriteString(line[prev:start])
		}
		b.WriteString(Red)
		b.WriteString(line[start:end])
		b.WriteString(Reset)
		prev = end
	}
	if prev < len(line) {
		b.WriteString(line[prev:])
	}

	return b.String()
}

// Strip removes the highlight markers, recovering the plain text.
func Strip(s string) string {
	s = strings.ReplaceAll(s, Red, "")
	return strings.ReplaceAll(s, Reset, "")
}
