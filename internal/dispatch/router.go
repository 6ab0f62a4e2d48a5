package dispatch

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sharepad/sharepad/internal/history"
	"github.com/sharepad/sharepad/internal/logging"
	"github.com/sharepad/sharepad/internal/pastebin"
)

// Uploader is the slice of the pastebin client the router needs.
type Uploader interface {
	Upload(ctx context.Context, text string) pastebin.UploadResult
}

// LogSource exposes recently captured log lines for the getLogs action.
type LogSource interface {
	Lines() []string
}

// Notifier is called after a completed share, e.g. to raise a desktop
// notification. May be nil.
type Notifier func(link string, partial bool)

// Router wires every action to its handler. Safe for concurrent use.
type Router struct {
	uploader      Uploader
	store         history.Store
	logs          LogSource
	notify        Notifier
	log           logging.Logger
	previewLength int

	mu            sync.Mutex
	lastSelection string
}

// NewRouter builds a Router. logs and notify may be nil; previewLength of
// zero uses the history default.
func NewRouter(uploader Uploader, store history.Store, logs LogSource, notify Notifier, previewLength int, log logging.Logger) *Router {
	if log == nil {
		log = logging.Nop()
	}
	return &Router{
		uploader:      uploader,
		store:         store,
		logs:          logs,
		notify:        notify,
		log:           log,
		previewLength: previewLength,
	}
}

// Dispatch routes a request to its handler and returns the typed result.
// An unknown request type is a programming error and returns an error.
func (r *Router) Dispatch(ctx context.Context, req Request) (any, error) {
	switch q := req.(type) {
	case CreateShareLink:
		return r.CreateShareLink(ctx, q), nil
	case Ping:
		return r.Ping(ctx, q), nil
	case TextSelected:
		return r.TextSelected(ctx, q), nil
	case GetShareHistory:
		return r.GetShareHistory(ctx, q)
	case ClearShareHistory:
		return r.ClearShareHistory(ctx, q)
	case GetLogs:
		return r.GetLogs(ctx, q), nil
	default:
		return nil, fmt.Errorf("unknown request type %T", req)
	}
}

// CreateShareLink validates and uploads the text, then records the share in
// history. A history write failure does not fail the share; the link already
// exists on the service, so the failure is only logged.
func (r *Router) CreateShareLink(ctx context.Context, req CreateShareLink) ShareLinkResult {
	text := req.Text
	if strings.TrimSpace(text) == "" {
		text = r.LastSelection()
	}

	res := r.uploader.Upload(ctx, text)
	if !res.Success {
		return ShareLinkResult{
			Error:      res.Err.Error(),
			StatusCode: res.StatusCode,
		}
	}

	entry := history.NewEntry(text, res.Link, r.previewLength)
	if err := r.store.Add(ctx, entry); err != nil {
		r.log.Warn(ctx, "failed to record share in history", "err", err, "link", res.Link)
	}

	if r.notify != nil {
		r.notify(res.Link, res.Partial)
	}

	return ShareLinkResult{
		Success:       true,
		Link:          res.Link,
		ID:            res.ID,
		StatusCode:    res.StatusCode,
		PartialUpload: res.Partial,
	}
}

func (r *Router) Ping(ctx context.Context, _ Ping) PingResult {
	return PingResult{Success: true, Ready: true}
}

// TextSelected retains the selection so a later CreateShareLink with no text
// can fall back to it. The selection is kept after use.
func (r *Router) TextSelected(ctx context.Context, req TextSelected) TextSelectedResult {
	r.mu.Lock()
	r.lastSelection = req.Text
	r.mu.Unlock()
	r.log.Debug(ctx, "selection updated", "len", len(req.Text))
	return TextSelectedResult{Received: true}
}

// LastSelection returns the most recently reported selection.
func (r *Router) LastSelection() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastSelection
}

func (r *Router) GetShareHistory(ctx context.Context, _ GetShareHistory) (HistoryResult, error) {
	entries, err := r.store.List(ctx)
	if err != nil {
		return HistoryResult{}, fmt.Errorf("failed to load history: %w", err)
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	return HistoryResult{Success: true, History: entries}, nil
}

// SearchShareHistory applies substring and date filtering over the retained
// entries.
func (r *Router) SearchShareHistory(ctx context.Context, filter history.Filter) (HistoryResult, error) {
	entries, err := r.store.Search(ctx, filter)
	if err != nil {
		return HistoryResult{}, fmt.Errorf("failed to search history: %w", err)
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	return HistoryResult{Success: true, History: entries}, nil
}

func (r *Router) ClearShareHistory(ctx context.Context, _ ClearShareHistory) (ClearResult, error) {
	if err := r.store.Clear(ctx); err != nil {
		return ClearResult{}, fmt.Errorf("failed to clear history: %w", err)
	}
	r.log.Info(ctx, "share history cleared")
	return ClearResult{Success: true}, nil
}

func (r *Router) GetLogs(ctx context.Context, _ GetLogs) LogsResult {
	if r.logs == nil {
		return LogsResult{Success: true, Logs: []string{}}
	}
	return LogsResult{Success: true, Logs: r.logs.Lines()}
}
