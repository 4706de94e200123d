// Package migrations embeds the goose SQL migrations for the Postgres
// custody and token stores.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
