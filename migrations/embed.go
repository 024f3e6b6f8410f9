// Package migrations embeds the SQL migration files so server bootstrap can
// run them through the goose programmatic API without a filesystem path.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
