// Package logger builds the slog.Logger shared by the binaries.
package logger

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

type Options struct {
	Level      string
	Format     string
	Prefix     string
	TimeFormat string
}

var formatters = map[string]log.Formatter{
	"text":   log.TextFormatter,
	"json":   log.JSONFormatter,
	"logfmt": log.LogfmtFormatter,
}

// New returns a slog.Logger backed by a charmbracelet handler. Unknown formats
// fall back to text.
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		level = parsed
	}

	formatter := log.TextFormatter
	if f, ok := formatters[opts.Format]; ok {
		formatter = f
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      opts.TimeFormat,
		Level:           level,
		Prefix:          opts.Prefix,
		Formatter:       formatter,
	})

	return slog.New(handler), nil
}
