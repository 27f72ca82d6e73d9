// Package migrations embeds the versioned SQL migration scripts so the
// binary can migrate any environment without shipping loose files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
