package render

import "github.com/dl/powpow"

// Result pairs a grep result with the source it came from.
type Result struct {
	Source string
	Res    *powpow.GrepResult
	Err    error
}

// Formatter formats a Result into bytes for output.
// buf is a reusable buffer — implementations append to it and return the
// result. Callers can pass buf[:0] to reuse the underlying array.
type Formatter interface {
	Format(buf []byte, result Result, multiSource bool) []byte
}
