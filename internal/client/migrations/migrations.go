// Package migrations embeds the CLI's local SQLite schema (goose format).
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
