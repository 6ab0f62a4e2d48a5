package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// CaptureHandler is a slog.Handler that keeps the most recent log lines in a
// bounded in-memory buffer while forwarding every record to a next handler.
// The buffer backs the getLogs action so UI surfaces can show recent activity
// without access to the process stderr.
type CaptureHandler struct {
	next  slog.Handler
	attrs []slog.Attr

	mu    *sync.Mutex
	lines *[]string
	limit int
}

// NewCaptureHandler wraps next with a capture buffer holding at most limit
// lines. Older lines are evicted first.
func NewCaptureHandler(next slog.Handler, limit int) *CaptureHandler {
	lines := make([]string, 0, limit)
	return &CaptureHandler{
		next:  next,
		mu:    &sync.Mutex{},
		lines: &lines,
		limit: limit,
	}
}

func (h *CaptureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *CaptureHandler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.UTC().Format(time.RFC3339))
	b.WriteString(" ")
	b.WriteString(r.Level.String())
	b.WriteString(" ")
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		return true
	})

	h.mu.Lock()
	*h.lines = append(*h.lines, b.String())
	if n := len(*h.lines); n > h.limit {
		*h.lines = (*h.lines)[n-h.limit:]
	}
	h.mu.Unlock()

	return h.next.Handle(ctx, r)
}

func (h *CaptureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CaptureHandler{
		next:  h.next.WithAttrs(attrs),
		attrs: append(append([]slog.Attr{}, h.attrs...), attrs...),
		mu:    h.mu,
		lines: h.lines,
		limit: h.limit,
	}
}

func (h *CaptureHandler) WithGroup(name string) slog.Handler {
	return &CaptureHandler{
		next:  h.next.WithGroup(name),
		attrs: h.attrs,
		mu:    h.mu,
		lines: h.lines,
		limit: h.limit,
	}
}

// Lines returns a copy of the captured log lines, oldest first.
func (h *CaptureHandler) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(*h.lines))
	copy(out, *h.lines)
	return out
}
