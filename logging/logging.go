// Package logging configures the tool's slog loggers: compact JSON for
// normal batch runs, indented JSON for interactive debugging.
package logging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"time"
)

// prettyHandler indents each record's JSON so long query batches stay
// readable when watched live.
type prettyHandler struct {
	slog.Handler
	w io.Writer
}

func (h *prettyHandler) Handle(ctx context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})
	attrs["time"] = r.Time.Format(time.RFC3339)
	attrs["level"] = r.Level.String()
	attrs["msg"] = r.Message

	out, err := json.MarshalIndent(attrs, "", "  ")
	if err != nil {
		return err
	}
	_, err = h.w.Write(append(out, '\n'))
	return err
}

// New returns the logger for batch runs: line-delimited JSON on w.
func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, nil))
}

// NewPretty returns a logger that writes indented JSON records to w.
func NewPretty(w io.Writer) *slog.Logger {
	return slog.New(&prettyHandler{
		Handler: slog.NewJSONHandler(w, nil),
		w:       w,
	})
}

// Default returns the logger selected by verbose: pretty output for
// interactive use, compact JSON otherwise. Both write to stderr so table
// output on stdout stays clean.
func Default(verbose bool) *slog.Logger {
	if verbose {
		return NewPretty(os.Stderr)
	}
	return New(os.Stderr)
}
