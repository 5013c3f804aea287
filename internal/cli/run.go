package cli

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"

	"github.com/dl/powpow"
	"github.com/dl/powpow/internal/render"
	"github.com/dl/powpow/internal/source"
)

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level: log.WarnLevel,
	})
}

// RunGrep executes a grep over the named paths, or stdin when none.
// Returns exit code: 0 = match found, 1 = no match, 2 = error.
func RunGrep(cfg Config) int {
	logger := newLogger()

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid arguments", "err", err)
		return 2
	}

	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	case ColorAuto:
		useColor = render.StdoutIsTerminal()
	}

	g, err := powpow.NewGrep(cfg.Pattern, cfg.Highlight && useColor)
	if err != nil {
		logger.Error("invalid pattern", "err", err)
		return 2
	}

	w := render.NewWriter()
	var formatter render.Formatter
	if cfg.JSONOutput {
		formatter = render.NewJSONFormatter()
	} else {
		styles := render.NoStyles()
		if useColor {
			styles = render.NewStyles()
		}
		formatter = render.NewTextFormatter(styles, cfg.LineNumbers, cfg.CountOnly, useColor)
	}

	if len(cfg.Paths) == 0 {
		return runStdin(g, formatter, w, cfg.Quiet, logger)
	}
	return runFiles(cfg.Paths, g, formatter, w, cfg.Quiet, logger)
}

func runStdin(g *powpow.Grep, formatter render.Formatter, w *render.Writer, quiet bool, logger *log.Logger) int {
	text, err := source.NewStdinReader().Read("")
	if err != nil {
		logger.Error("read stdin", "err", err)
		return 2
	}

	res := g.Apply(text)
	if !quiet {
		if err := w.Write(formatter.Format(nil, render.Result{Res: res}, false)); err != nil {
			logger.Error("write", "err", err)
			return 2
		}
	}
	if res.Ok() {
		return 0
	}
	return 1
}

func runFiles(paths []string, g *powpow.Grep, formatter render.Formatter, w *render.Writer, quiet bool, logger *log.Logger) int {
	multiSource := len(paths) > 1
	hasMatch := false
	var buf []byte

	for _, path := range paths {
		cat, err := powpow.Cat(path)
		if err != nil {
			var srcErr *powpow.SourceError
			if errors.As(err, &srcErr) {
				logger.Warn("source unavailable", "path", srcErr.Name, "err", srcErr.Err)
			} else {
				logger.Warn("error", "path", path, "err", err)
			}
			continue
		}

		res := cat.Pipe(g)
		if res.Ok() {
			hasMatch = true
		}
		if quiet {
			continue
		}
		buf = formatter.Format(buf[:0], render.Result{Source: path, Res: res}, multiSource)
		if err := w.Write(buf); err != nil {
			logger.Error("write", "err", err)
			return 2
		}
	}

	if hasMatch {
		return 0
	}
	return 1
}

// RunCat prints the joined contents of the named paths.
// Returns exit code: 0 = success, 2 = error.
func RunCat(paths []string) int {
	logger := newLogger()

	cat, err := powpow.Cat(paths...)
	if err != nil {
		var srcErr *powpow.SourceError
		if errors.As(err, &srcErr) {
			logger.Error("source unavailable", "path", srcErr.Name, "err", srcErr.Err)
		} else {
			logger.Error("cat failed", "err", err)
		}
		return 2
	}

	if err := render.NewWriter().Write([]byte(cat.String())); err != nil {
		logger.Error("write", "err", err)
		return 2
	}
	return 0
}
