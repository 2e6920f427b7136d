// Package migrations embeds the goose schema migrations, one directory per
// supported database dialect.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql mysql/*.sql sqlite/*.sql
var Migrations embed.FS

// For returns the migration tree for a dialect directory name.
func For(dialect string) (fs.FS, error) {
	return fs.Sub(Migrations, dialect)
}
