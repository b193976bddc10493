// Package logging wires zap behind logr, the teacher's logging stack
// (go.uber.org/zap, go-logr/logr, go-logr/zapr). Because s3c spends most of
// its life painting an alternate-screen TUI, nothing may write to stdout:
// all logs go to stderr, and while the program is interactive they're mirrored
// into an in-memory ring buffer the help/diagnostics modal can display instead
// of a tty write that would corrupt the frame.
package logging

import (
	"os"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	Debug bool
	Trace bool
}

// New builds a logr.Logger backed by zap, writing to stderr, plus the Ring
// that mirrors every record for in-TUI display.
func New(opts Options) (logr.Logger, *Ring) {
	level := zapcore.InfoLevel
	switch {
	case opts.Trace:
		level = zapcore.DebugLevel - 1
	case opts.Debug:
		level = zapcore.DebugLevel
	}

	ring := NewRing(200)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.Lock(zapcore.AddSync(os.Stderr)), level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.Lock(zapcore.AddSync(ringWriter{ring})), level),
	)

	zl := zap.New(core)
	return zapr.NewLogger(zl), ring
}

// ringWriter adapts Ring to io.Writer so it can back a zapcore.Core directly;
// the console encoder writes one formatted line per record.
type ringWriter struct{ ring *Ring }

func (w ringWriter) Write(p []byte) (int, error) {
	w.ring.Append(string(p))
	return len(p), nil
}

func (w ringWriter) Sync() error { return nil }

// Ring is a small fixed-capacity circular buffer of the most recent log
// lines, read by the help/diagnostics modal.
type Ring struct {
	mu   sync.Mutex
	buf  []string
	cap  int
	next int
	full bool
}

// NewRing returns a Ring holding at most capacity lines.
func NewRing(capacity int) *Ring {
	return &Ring{buf: make([]string, capacity), cap: capacity}
}

// Append records line, evicting the oldest entry once the ring is full.
func (r *Ring) Append(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf[r.next] = line
	r.next = (r.next + 1) % r.cap
	if r.next == 0 {
		r.full = true
	}
}

// Lines returns the recorded lines in chronological order.
func (r *Ring) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.full {
		out := make([]string, r.next)
		copy(out, r.buf[:r.next])
		return out
	}
	out := make([]string, r.cap)
	copy(out, r.buf[r.next:])
	copy(out[r.cap-r.next:], r.buf[:r.next])
	return out
}
