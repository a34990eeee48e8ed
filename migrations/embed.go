// Package migrations embeds the SQL migration files so they can be applied
// through the goose programmatic API at bootstrap and in tests, without
// depending on a filesystem path at runtime.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
