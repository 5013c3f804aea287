// Package powpow is a small text-utility library for pipe-style filtering:
// a literal substring matcher (grep) and a multi-file concatenation helper
// (cat) whose results behave like strings while exposing match metadata.
//
// Results compose: the output of one Apply can be fed straight into another
// matcher, and only the marker-free canonical value flows onward.
package powpow

import "github.com/dl/powpow/internal/scan"

// Grep finds literal occurrences of a pattern in the text form of a value.
// No characters in the pattern are treated as wildcards or metacharacters.
type Grep struct {
	pattern   string
	highlight bool
}

// NewGrep creates a Grep for a single literal pattern. The pattern must be
// non-empty; highlight controls whether Display renders matches in color.
func NewGrep(pattern string, highlight bool) (*Grep, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	return &Grep{pattern: pattern, highlight: highlight}, nil
}

// MustGrep is NewGrep, panicking on an invalid pattern.
func MustGrep(pattern string, highlight bool) *Grep {
	g, err := NewGrep(pattern, highlight)
	if err != nil {
		panic(err)
	}
	return g
}

// Pattern returns the literal pattern this matcher searches for.
func (g *Grep) Pattern() string { return g.pattern }

// Highlight reports whether results will carry a highlighted rendering.
func (g *Grep) Highlight() bool { return g.highlight }

// Apply scans the text form of input for the pattern and returns the result.
// It is pure: no side effects, and the same input always yields an equal
// result. Zero matches yield a falsy result with an empty canonical value.
func (g *Grep) Apply(input any) *GrepResult {
	text := textForm(input)
	return newGrepResult(text, g.pattern, scan.IndexAll(text, g.pattern), g.highlight)
}
