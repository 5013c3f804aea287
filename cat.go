package powpow

import (
	"encoding/json"
	"io"
	"strings"
	"sync"

	"github.com/dl/powpow/internal/source"
)

// Cat reads every named source in order and returns their joined contents.
// Reading is atomic: the first unreadable source fails the whole call with a
// SourceError and no partial result.
func Cat(names ...string) (*CatResult, error) {
	return CatWith(source.NewFSReader(), names...)
}

// CatWith is Cat with an explicit source reader.
func CatWith(r source.Reader, names ...string) (*CatResult, error) {
	if len(names) == 0 {
		return nil, ErrNoSources
	}

	contents := make([]string, len(names))
	for i, name := range names {
		text, err := r.Read(name)
		if err != nil {
			return nil, &SourceError{Name: name, Err: err}
		}
		contents[i] = text
	}

	owned := make([]string, len(names))
	copy(owned, names)

	return &CatResult{names: owned, contents: contents}, nil
}

// CatResult holds the contents of the read sources, in input order. The
// joined value is memoized on first use. A result is immutable; every
// accessor hands out a copy, so callers cannot mutate stored content.
type CatResult struct {
	names    []string
	contents []string

	strOnce sync.Once
	str     string
}

// Names returns the source names in input order.
func (c *CatResult) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Contents returns the per-source contents in input order.
func (c *CatResult) Contents() []string {
	out := make([]string, len(c.contents))
	copy(out, c.contents)
	return out
}

// BySource returns a source-name-to-content mapping. The map is a copy;
// mutating it never affects the stored contents. When the same name was read
// more than once the last read wins.
func (c *CatResult) BySource() map[string]string {
	out := make(map[string]string, len(c.names))
	for i, name := range c.names {
		out[name] = c.contents[i]
	}
	return out
}

// String returns the joined contents in source order, with no separators.
func (c *CatResult) String() string {
	c.strOnce.Do(func() {
		var b strings.Builder
		for _, text := range c.contents {
			b.WriteString(text)
		}
		c.str = b.String()
	})
	return c.str
}

// DecodeOption adjusts the JSON decoder used by DecodeJSON. Options are
// forwarded to the underlying decoder unchanged.
type DecodeOption func(*json.Decoder)

// UseNumber makes DecodeJSON unmarshal numbers into json.Number instead of
// float64.
func UseNumber() DecodeOption {
	return func(d *json.Decoder) { d.UseNumber() }
}

// DisallowUnknownFields makes DecodeJSON reject object keys that do not
// match a field of the destination struct.
func DisallowUnknownFields() DecodeOption {
	return func(d *json.Decoder) { d.DisallowUnknownFields() }
}

// DecodeJSON interprets the joined value as a JSON document and decodes it
// into v. A failure is reported as a DecodeError and leaves the plain string
// value untouched.
func (c *CatResult) DecodeJSON(v any, opts ...DecodeOption) error {
	dec := json.NewDecoder(strings.NewReader(c.String()))
	for _, opt := range opts {
		opt(dec)
	}
	if err := dec.Decode(v); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// Reader returns a fresh in-memory view over the joined value. Independent
// views do not share a read cursor.
func (c *CatResult) Reader() io.Reader { return strings.NewReader(c.String()) }

// Pipe feeds the joined value into a matcher.
func (c *CatResult) Pipe(g *Grep) *GrepResult { return g.Apply(c) }
