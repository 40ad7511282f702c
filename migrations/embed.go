// Package migrations carries the submission ledger schema as goose SQL
// files. cmd/migrate and the integration tests read them from FS.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
