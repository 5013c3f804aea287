package powpow

import (
	"encoding/binary"
	"hash/fnv"
	"io"
	"strings"
	"sync"

	"github.com/dl/powpow/internal/ansi"
	"github.com/dl/powpow/internal/scan"
)

// Span is one occurrence of the pattern, as byte offsets into the scanned
// text. End is exclusive.
type Span struct {
	Start int
	End   int
}

// LineMatch is one matched line: its zero-based index in the input, its full
// text including any trailing terminator, and the spans on it rebased to
// line-relative offsets.
type LineMatch struct {
	Index int
	Line  string
	Spans []Span
}

// GrepResult holds the outcome of one Apply: the scanned text, the pattern,
// and the ordered non-overlapping spans. Derived views — matched lines, the
// canonical string value, the highlighted rendering — are computed on first
// use and cached for the lifetime of the result. Each cache slot is filled
// at most once even under concurrent first reads; already-filled reads take
// no lock. A result is immutable.
type GrepResult struct {
	input     string
	pattern   string
	spans     []scan.Span
	highlight bool

	groupOnce sync.Once
	groups    []scan.LineMatch

	strOnce sync.Once
	str     string

	displayOnce sync.Once
	display     string
}

func newGrepResult(input, pattern string, spans []scan.Span, highlight bool) *GrepResult {
	return &GrepResult{input: input, pattern: pattern, spans: spans, highlight: highlight}
}

// Pattern returns the literal pattern that produced this result.
func (r *GrepResult) Pattern() string { return r.pattern }

// Input returns the full text that was scanned.
func (r *GrepResult) Input() string { return r.input }

// NumMatches returns how many occurrences of the pattern were found.
func (r *GrepResult) NumMatches() int { return len(r.spans) }

// Ok reports whether at least one occurrence was found.
func (r *GrepResult) Ok() bool { return len(r.spans) > 0 }

// Spans returns the match spans in ascending start order, as offsets into
// Input. The returned slice is a copy.
func (r *GrepResult) Spans() []Span {
	out := make([]Span, len(r.spans))
	for i, sp := range r.spans {
		out[i] = Span{Start: sp.Start, End: sp.End}
	}
	return out
}

func (r *GrepResult) lineMatches() []scan.LineMatch {
	r.groupOnce.Do(func() {
		r.groups = scan.Group(r.input, r.spans)
	})
	return r.groups
}

// LineMatches returns the matched lines in ascending order, each once, with
// their line-relative spans. Lines keep their trailing terminator where the
// input has one.
func (r *GrepResult) LineMatches() []LineMatch {
	lms := r.lineMatches()
	out := make([]LineMatch, len(lms))
	for i, lm := range lms {
		spans := make([]Span, len(lm.Spans))
		for j, sp := range lm.Spans {
			spans[j] = Span{Start: sp.Start, End: sp.End}
		}
		out[i] = LineMatch{
			Index: lm.Index,
			Line:  r.input[lm.Start:lm.End],
			Spans: spans,
		}
	}
	return out
}

// LineSpans returns the per-line match groupings: zero-based line index to
// the spans on that line, rebased to line-relative offsets.
func (r *GrepResult) LineSpans() map[int][]Span {
	lms := r.lineMatches()
	out := make(map[int][]Span, len(lms))
	for _, lm := range lms {
		spans := make([]Span, len(lm.Spans))
		for j, sp := range lm.Spans {
			spans[j] = Span{Start: sp.Start, End: sp.End}
		}
		out[lm.Index] = spans
	}
	return out
}

// Lines returns the matched lines in ascending order, each once, keeping the
// trailing line terminator where the input has one.
func (r *GrepResult) Lines() []string {
	lms := r.lineMatches()
	out := make([]string, len(lms))
	for i, lm := range lms {
		out[i] = r.input[lm.Start:lm.End]
	}
	return out
}

// String returns the canonical value of the result: the concatenation of all
// matched lines. Equality, hashing and re-matching all use this value, never
// the highlighted rendering.
func (r *GrepResult) String() string {
	r.strOnce.Do(func() {
		// Built into a local; r.str is only assigned once complete.
		var b strings.Builder
		for _, lm := range r.lineMatches() {
			b.WriteString(r.input[lm.Start:lm.End])
		}
		r.str = b.String()
	})
	return r.str
}

// Display returns the highlighted rendering when highlighting is on — every
// occurrence wrapped in start-red/reset markers — otherwise the canonical
// value. Stripping the markers always recovers String exactly.
func (r *GrepResult) Display() string {
	if !r.highlight {
		return r.String()
	}
	r.displayOnce.Do(func() {
		var b strings.Builder
		for _, lm := range r.lineMatches() {
			b.WriteString(ansi.Highlight(r.input[lm.Start:lm.End], lm.Spans))
		}
		r.display = b.String()
	})
	return r.display
}

// Equal reports whether other has the same canonical value. The operand is
// coerced the same way Apply coerces its input, so plain strings and other
// results compare uniformly. Pattern and span positions take no part.
func (r *GrepResult) Equal(other any) bool {
	return r.String() == textForm(other)
}

// Hash returns a hash of the (canonical value, pattern) pair. The pairing
// keeps two results with identical text but different patterns apart when
// used as map keys; the value length separates the two fields unambiguously.
func (r *GrepResult) Hash() uint64 {
	s := r.String()
	h := fnv.New64a()
	io.WriteString(h, s)
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(s)))
	h.Write(n[:])
	io.WriteString(h, r.pattern)
	return h.Sum64()
}

// Pipe feeds the canonical value into the next matcher. Markers from this
// stage never reach the next: only Display carries them.
func (r *GrepResult) Pipe(g *Grep) *GrepResult { return g.Apply(r) }

// The operations below forward to the canonical value, so a result can be
// used where its string would be.

// Len returns the length of the canonical value in bytes.
func (r *GrepResult) Len() int { return len(r.String()) }

// Contains reports whether the canonical value contains substr.
func (r *GrepResult) Contains(substr string) bool { return strings.Contains(r.String(), substr) }

// Split slices the canonical value around sep.
func (r *GrepResult) Split(sep string) []string { return strings.Split(r.String(), sep) }

// Fields splits the canonical value around runs of whitespace.
func (r *GrepResult) Fields() []string { return strings.Fields(r.String()) }

// TrimSpace returns the canonical value with surrounding whitespace removed.
func (r *GrepResult) TrimSpace() string { return strings.TrimSpace(r.String()) }

// Slice returns the canonical value between byte offsets i and j.
func (r *GrepResult) Slice(i, j int) string { return r.String()[i:j] }

// Reader returns a fresh reader over the canonical value. Readers do not
// share a cursor.
func (r *GrepResult) Reader() io.Reader { return strings.NewReader(r.String()) }
