// Package migrations embeds the SQL migrations for the stays and app_config
// tables so they can be applied by the goose programmatic API in tests and
// server bootstrap.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass this to a goose.Provider instead of relying on a filesystem path
// at runtime.
//
//go:embed *.sql
var FS embed.FS
