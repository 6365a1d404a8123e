// Package migrations embeds the schema migration files so the server binary
// can apply them at startup without shipping loose SQL.
package migrations

import "embed"

// Files holds the embedded migration SQL.
//
//go:embed *.sql
var Files embed.FS
