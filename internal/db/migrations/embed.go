// Package migrations embeds the schema migrations for each supported store.
package migrations

import "embed"

// FS holds one directory of golang-migrate files per dialect.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
