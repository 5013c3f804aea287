// Package source supplies raw text for named sources. It is the file-reading
// collaborator behind Cat; the library proper never touches the filesystem
// outside this package.
package source

import (
	"fmt"
	"io"
	"os"
)

// Reader reads the full content of a named source.
type Reader interface {
	Read(name string) (string, error)
}

// FSReader reads sources from the OS filesystem.
type FSReader struct{}

// NewFSReader creates a new FSReader.
func NewFSReader() *FSReader {
	return &FSReader{}
}

func (r *FSReader) Read(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}

// StdinReader reads all data from stdin, ignoring the name.
type StdinReader struct{}

// NewStdinReader creates a new StdinReader.
func NewStdinReader() *StdinReader {
	return &StdinReader{}
}

func (r *StdinReader) Read(_ string) (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
