// Package migrations embeds the SQL migrations for the share-history
// database, applied with goose at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
