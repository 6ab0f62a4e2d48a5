package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCaptureLogger(limit int) (*SlogLogger, *CaptureHandler, *bytes.Buffer) {
	var buf bytes.Buffer
	h := NewCaptureHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}), limit)
	return NewSlogLogger(slog.New(h)), h, &buf
}

func TestCaptureHandler_KeepsLines(t *testing.T) {
	log, h, buf := newCaptureLogger(10)
	ctx := context.Background()

	log.Info(ctx, "share created", "id", "abc123")
	log.Warn(ctx, "history write failed")

	lines := h.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "INFO share created id=abc123")
	assert.Contains(t, lines[1], "WARN history write failed")

	// the next handler must still receive everything
	assert.Contains(t, buf.String(), "msg=\"share created\"")
}

func TestCaptureHandler_EvictsOldestBeyondLimit(t *testing.T) {
	log, h, _ := newCaptureLogger(3)
	ctx := context.Background()

	for _, msg := range []string{"one", "two", "three", "four", "five"} {
		log.Info(ctx, msg)
	}

	lines := h.Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "three")
	assert.Contains(t, lines[2], "five")
}

func TestCaptureHandler_WithAttrsSharesBuffer(t *testing.T) {
	log, h, _ := newCaptureLogger(10)
	ctx := context.Background()

	child := log.With("component", "pastebin")
	child.Info(ctx, "upload ok")
	log.Info(ctx, "parent line")

	lines := h.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.Contains(lines[0], "component=pastebin"), "child attrs must be rendered: %q", lines[0])
}
