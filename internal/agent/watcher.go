// Package agent contains the background pieces of sharepad: the clipboard
// watcher that reports fresh selections to the router, and the desktop
// notifier for completed shares.
package agent

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/sharepad/sharepad/internal/dispatch"
	"github.com/sharepad/sharepad/internal/logging"
)

// readClipboard is a test seam for clipboard.ReadAll.
// In tests you can replace it with a stub to avoid touching the system clipboard.
var readClipboard = clipboard.ReadAll

// Watcher polls the system clipboard and reports every change as the current
// selection, so a share command with no explicit text picks up whatever the
// user copied last.
type Watcher struct {
	router   *dispatch.Router
	interval time.Duration
	log      logging.Logger

	last string
}

func NewWatcher(router *dispatch.Router, interval time.Duration, log logging.Logger) *Watcher {
	if interval <= 0 {
		interval = time.Second
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Watcher{router: router, interval: interval, log: log}
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.poll(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) poll(ctx context.Context) {
	text, err := readClipboard()
	if err != nil {
		// clipboard access fails on headless sessions; stay quiet and retry
		w.log.Debug(ctx, "clipboard read failed", "err", err)
		return
	}
	if strings.TrimSpace(text) == "" || text == w.last {
		return
	}
	w.last = text
	w.router.TextSelected(ctx, dispatch.TextSelected{Text: text})
}
