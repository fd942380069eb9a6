// Package migrations embeds the goose migrations for the local SQLite state.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
