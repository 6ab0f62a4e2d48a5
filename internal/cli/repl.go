package cli

import (
	"bufio"
	"context"
	"os"
	"strings"
	"time"

	"github.com/sharepad/sharepad/internal/history"
)

const helpText = `Available commands:
  share [text]      upload text (clipboard content when omitted) and print the link
  get <id> [fmt]    fetch a previously shared paste
  list              show the share history, newest first
  search <query>    filter history; supports from:YYYY-MM-DD and to:YYYY-MM-DD
  export <file>     write the history as JSON
  clear             remove all history entries
  logs              show recent log lines
  status            report readiness
  exit | quit       leave the program`

// Run starts the read-eval-print loop on stdin. It returns on EOF, on
// "exit"/"quit", or when ctx is cancelled between commands.
func (a *App) Run(ctx context.Context) {
	a.printf("sharepad (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	// room for a long pasted line
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for {
		if ctx.Err() != nil {
			return
		}
		if _, err := os.Stdout.WriteString("sp> "); err != nil {
			return
		}
		if !scanner.Scan() {
			return
		}
		if a.execute(ctx, scanner.Text()) {
			return
		}
	}
}

// execute runs one command line and reports whether the REPL should quit.
func (a *App) execute(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "help":
		a.printf("%s", helpText)

	case "share":
		a.share(ctx, strings.Join(args, " "))

	case "get":
		if len(args) == 0 {
			a.printf("Usage: get <id> [format]")
			return false
		}
		format := ""
		if len(args) > 1 {
			format = args[1]
		}
		a.get(ctx, args[0], format)

	case "list", "l":
		a.list(ctx)

	case "search":
		if len(args) == 0 {
			a.printf("Usage: search <query>")
			return false
		}
		a.search(ctx, strings.Join(args, " "))

	case "export":
		if len(args) != 1 {
			a.printf("Usage: export <file>")
			return false
		}
		a.export(ctx, args[0])

	case "clear":
		a.clear(ctx)

	case "logs":
		a.logs(ctx)

	case "status":
		a.status(ctx)

	case "exit", "quit":
		return true

	default:
		a.printf("Unknown command %q (type 'help' for commands)", cmd)
	}
	return false
}

// searchFilter parses "from:" and "to:" tokens out of the query; whatever
// remains is the substring filter. Dates are YYYY-MM-DD, interpreted UTC;
// the "to" bound includes the whole named day.
func searchFilter(query string) history.Filter {
	var f history.Filter
	var words []string

	for _, w := range strings.Fields(query) {
		switch {
		case strings.HasPrefix(w, "from:"):
			if ts, err := time.Parse("2006-01-02", strings.TrimPrefix(w, "from:")); err == nil {
				f.From = ts
				continue
			}
		case strings.HasPrefix(w, "to:"):
			if ts, err := time.Parse("2006-01-02", strings.TrimPrefix(w, "to:")); err == nil {
				f.To = ts.Add(24*time.Hour - time.Nanosecond)
				continue
			}
		}
		words = append(words, w)
	}

	f.Query = strings.Join(words, " ")
	return f
}
