// Package cli provides the interactive sharepad command-line client.
//
// It drives the same action router as the agent's HTTP API: share text (from
// arguments or the clipboard), browse and search the local share history,
// export it to JSON, and inspect recent logs.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
