// Package testutil holds logging helpers shared by package tests.
package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// NewTestLogger returns a debug-level logger that writes through t.Log, so
// output only shows for failing tests or under -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// Recorder is an slog.Handler that keeps every record for later assertions.
// It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	records []slog.Record
}

// NewRecordingLogger returns a logger and the Recorder behind it.
func NewRecordingLogger() (*slog.Logger, *Recorder) {
	rec := &Recorder{}
	return slog.New(rec), rec
}

// Enabled accepts all levels.
func (r *Recorder) Enabled(context.Context, slog.Level) bool { return true }

// Handle stores a copy of the record.
func (r *Recorder) Handle(_ context.Context, rec slog.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec.Clone())
	return nil
}

// WithAttrs returns r; attributes added through With are not recorded.
func (r *Recorder) WithAttrs([]slog.Attr) slog.Handler { return r }

// WithGroup returns r.
func (r *Recorder) WithGroup(string) slog.Handler { return r }

// Messages returns the messages logged at level or above, in order.
func (r *Recorder) Messages(level slog.Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var msgs []string
	for _, rec := range r.records {
		if rec.Level >= level {
			msgs = append(msgs, rec.Message)
		}
	}
	return msgs
}
