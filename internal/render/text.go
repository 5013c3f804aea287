package render

import (
	"strconv"
	"strings"

	"github.com/dl/powpow"
	"github.com/dl/powpow/internal/ansi"
)

// TextFormatter formats results as human-readable text with optional color.
type TextFormatter struct {
	styles      Styles
	lineNumbers bool
	countOnly   bool
	useColor    bool
}

// NewTextFormatter creates a TextFormatter.
func NewTextFormatter(styles Styles, lineNumbers bool, countOnly bool, useColor bool) *TextFormatter {
	return &TextFormatter{
		styles:      styles,
		lineNumbers: lineNumbers,
		countOnly:   countOnly,
		useColor:    useColor,
	}
}

func (f *TextFormatter) Format(buf []byte, result Result, multiSource bool) []byte {
	if f.countOnly {
		if multiSource {
			buf = append(buf, f.styles.Path.Render(result.Source)...)
			buf = append(buf, f.styles.Separator.Render(":")...)
		}
		buf = strconv.AppendInt(buf, int64(result.Res.NumMatches()), 10)
		buf = append(buf, '\n')
		return buf
	}

	for _, lm := range result.Res.LineMatches() {
		buf = f.formatLine(buf, result.Source, lm, multiSource)
	}
	return buf
}

func (f *TextFormatter) formatLine(buf []byte, src string, lm powpow.LineMatch, multiSource bool) []byte {
	if multiSource {
		buf = append(buf, f.styles.Path.Render(src)...)
		buf = append(buf, f.styles.Separator.Render(":")...)
	}

	// Display line numbers 1-based.
	if f.lineNumbers {
		buf = append(buf, f.styles.LineNum.Render(strconv.Itoa(lm.Index+1))...)
		buf = append(buf, f.styles.Separator.Render(":")...)
	}

	line := strings.TrimSuffix(lm.Line, "\n")
	if f.useColor && len(lm.Spans) > 0 {
		buf = highlightSpans(buf, line, lm.Spans)
	} else {
		buf = append(buf, line...)
	}

	buf = append(buf, '\n')
	return buf
}

// highlightSpans wraps each span of line in red/reset markers, clamping
// spans that run past the end of the line.
func highlightSpans(buf []byte, line string, spans []powpow.Span) []byte {
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
			buf = append(buf, line[prev:start]...)
		}
		buf = append(buf, ansi.Red...)
		buf = append(buf, line[start:end]...)
		buf = append(buf, ansi.Reset...)
		prev = end
	}
	if prev < len(line) {
		buf = append(buf, line[prev:]...)
	}
	return buf
}

var _ Formatter = (*TextFormatter)(nil)
