// Package migrations embeds the SQL schema of the Postgres ledger.
package migrations

import "embed"

// FS содержит файлы миграций, путь внутри - ".".
//
//go:embed *.sql
var FS embed.FS
