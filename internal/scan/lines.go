package scan

import "strings"

// LineMatch is a single line containing at least one span.
type LineMatch struct {
	Index int    // zero-based line index within the text
	Start int    // byte offset of the line start
	End   int    // byte offset past the line end, including the trailing \n if present
	Spans []Span // spans on this line, rebased to line-relative offsets
}

// lineCursor tracks position while scanning forward through text for line
// boundaries. Offsets must be processed in sorted (ascending) order.
type lineCursor struct {
	text      string
	index     int // zero-based line index at lineStart
	lineStart int // byte offset of current line start
	lineEnd   int // byte offset past the line and its \n, or len(text)
}

// newLineCursor initializes a cursor at the beginning of text.
func newLineCursor(text string) lineCursor {
	end := len(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		end = i + 1
	}
	return lineCursor{text: text, lineEnd: end}
}

// lineFromPos advances the cursor to the line containing pos and returns its
// index, start and end. pos must be >= the pos from the previous call.
func (c *lineCursor) lineFromPos(pos int) (int, int, int) {
	for pos >= c.lineEnd && c.lineEnd < len(c.text) {
		c.lineStart = c.lineEnd
		c.index++
		if i := strings.IndexByte(c.text[c.lineStart:], '\n'); i >= 0 {
			c.lineEnd = c.lineStart + i + 1
		} else {
			c.lineEnd = len(c.text)
		}
	}
	return c.index, c.lineStart, c.lineEnd
}

// Group maps whole-text spans onto line boundaries, deduplicating lines that
// hold several spans and rebasing each span to line-relative offsets. Spans
// must be ordered by ascending start; a span that runs past its line's
// terminator is grouped under the line containing its start and clamped.
func Group(text string, spans []Span) []LineMatch {
	if len(spans) == 0 {
		return nil
	}

	cursor := newLineCursor(text)
	lines := make([]LineMatch, 0, len(spans))
	lastStart := -1

	for _, sp := range spans {
		idx, start, end := cursor.lineFromPos(sp.Start)

		rel := Span{Start: sp.Start - start, End: sp.End - start}
		if rel.End > end-start {
			rel.End = end - start
		}

		if start == lastStart {
			// Same line — extend the previous group.
			last := &lines[len(lines)-1]
			last.Spans = append(last.Spans, rel)
			continue
		}

		lines = append(lines, LineMatch{
			Index: idx,
			Start: start,
			End:   end,
			Spans: []Span{rel},
		})
		lastStart = start
	}

	return lines
}
