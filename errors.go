package powpow

import (
	"errors"
	"fmt"
)

// ErrEmptyPattern is returned by NewGrep for an empty pattern. An empty
// pattern would match everything, so construction fails instead.
var ErrEmptyPattern = errors.New("powpow: empty pattern")

// ErrNoSources is returned by Cat when no source names are given.
var ErrNoSources = errors.New("powpow: no sources")

// SourceError reports a named source that could not be read. Cat fails
// atomically: the first unreadable source aborts the whole operation and no
// partial result is returned.
type SourceError struct {
	Name string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("powpow: source %s unavailable: %v", e.Name, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// DecodeError reports joined content that is not a valid JSON document. The
// plain string value of the result stays usable regardless.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("powpow: decode: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
