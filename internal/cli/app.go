package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/sharepad/sharepad/internal/dispatch"
)

// clipboard seams for tests
var (
	readClipboard  = clipboard.ReadAll
	writeClipboard = clipboard.WriteAll
)

// Retriever is the slice of the pastebin client the CLI needs for `get`.
type Retriever interface {
	Retrieve(ctx context.Context, id string, format string) (string, error)
}

// App executes CLI commands against the action router.
type App struct {
	router    *dispatch.Router
	retriever Retriever
	out       io.Writer
}

func NewApp(router *dispatch.Router, retriever Retriever, out io.Writer) *App {
	if out == nil {
		out = os.Stdout
	}
	return &App{router: router, retriever: retriever, out: out}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

// share uploads the given text, or the clipboard content when text is empty,
// and copies the resulting link back to the clipboard.
func (a *App) share(ctx context.Context, text string) {
	if strings.TrimSpace(text) == "" {
		clip, err := readClipboard()
		if err == nil && strings.TrimSpace(clip) != "" {
			a.router.TextSelected(ctx, dispatch.TextSelected{Text: clip})
		}
	}

	res := a.router.CreateShareLink(ctx, dispatch.CreateShareLink{Text: text})
	if !res.Success {
		a.printf("Error: %s", res.Error)
		return
	}

	if res.PartialUpload {
		a.printf("Warning: the service accepted only part of the content")
	}
	a.printf("%s", res.Link)

	if err := writeClipboard(res.Link); err == nil {
		a.printf("(link copied to clipboard)")
	}
}

func (a *App) get(ctx context.Context, id, format string) {
	content, err := a.retriever.Retrieve(ctx, id, format)
	if err != nil {
		a.printf("Error: %s", err)
		return
	}
	a.printf("%s", content)
}

func (a *App) list(ctx context.Context) {
	res, err := a.router.GetShareHistory(ctx, dispatch.GetShareHistory{})
	if err != nil {
		a.printf("Error: failed to load history")
		return
	}
	a.printEntries(res)
}

func (a *App) search(ctx context.Context, query string) {
	res, err := a.router.SearchShareHistory(ctx, searchFilter(query))
	if err != nil {
		a.printf("Error: failed to search history")
		return
	}
	a.printEntries(res)
}

func (a *App) printEntries(res dispatch.HistoryResult) {
	if len(res.History) == 0 {
		a.printf("No shares yet")
		return
	}
	for i, e := range res.History {
		a.printf("%2d. %s  %s  %q", i+1, e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Link, e.Text)
	}
}

// export writes the full history as pretty-printed JSON to path.
func (a *App) export(ctx context.Context, path string) {
	res, err := a.router.GetShareHistory(ctx, dispatch.GetShareHistory{})
	if err != nil {
		a.printf("Error: failed to load history")
		return
	}

	data, err := json.MarshalIndent(res.History, "", "  ")
	if err != nil {
		a.printf("Error: failed to encode history")
		return
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		a.printf("Error: failed to write %s: %v", path, err)
		return
	}
	a.printf("Exported %d entries to %s", len(res.History), path)
}

func (a *App) clear(ctx context.Context) {
	if _, err := a.router.ClearShareHistory(ctx, dispatch.ClearShareHistory{}); err != nil {
		a.printf("Error: failed to clear history")
		return
	}
	a.printf("History cleared")
}

func (a *App) logs(ctx context.Context) {
	res := a.router.GetLogs(ctx, dispatch.GetLogs{})
	if len(res.Logs) == 0 {
		a.printf("No log lines captured")
		return
	}
	for _, line := range res.Logs {
		a.printf("%s", line)
	}
}

func (a *App) status(ctx context.Context) {
	res := a.router.Ping(ctx, dispatch.Ping{})
	if res.Ready {
		a.printf("ready")
	} else {
		a.printf("not ready")
	}
}
