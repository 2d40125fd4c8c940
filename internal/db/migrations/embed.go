// Package migrations embeds goose SQL migrations for the content database.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
