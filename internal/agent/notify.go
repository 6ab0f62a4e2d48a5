package agent

import (
	"context"

	"github.com/gen2brain/beeep"

	"github.com/sharepad/sharepad/internal/dispatch"
	"github.com/sharepad/sharepad/internal/logging"
)

// notifyFn is a test seam for beeep.Notify.
var notifyFn = beeep.Notify

// Notifier returns a dispatch.Notifier that raises a desktop notification
// for a completed share. Returns nil when notifications are disabled.
func Notifier(enabled bool, log logging.Logger) dispatch.Notifier {
	if !enabled {
		return nil
	}
	if log == nil {
		log = logging.Nop()
	}
	return func(link string, partial bool) {
		title := "Share link ready"
		if partial {
			title = "Share link ready (content was truncated)"
		}
		if err := notifyFn(title, link, ""); err != nil {
			log.Warn(context.Background(), "failed to show notification", "err", err)
		}
	}
}
