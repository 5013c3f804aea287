package cli

import "fmt"

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// ParseColorMode maps a --color flag value to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q", s)
}

// Config holds all configuration for one powpow grep invocation.
type Config struct {
	Pattern     string
	Paths       []string
	Highlight   bool
	LineNumbers bool
	CountOnly   bool
	Quiet       bool
	JSONOutput  bool
	Color       ColorMode
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("no pattern specified")
	}
	if c.CountOnly && c.Quiet {
		return fmt.Errorf("cannot use -c (count) and -q (quiet) together")
	}
	if c.CountOnly && c.JSONOutput {
		return fmt.Errorf("cannot use -c (count) and --json together")
	}
	return nil
}
