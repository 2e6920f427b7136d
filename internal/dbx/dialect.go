package dbx

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect describes how a supported engine differs from the others in the
// SQL our repositories write. Queries are authored with '?' placeholders and
// rebound per dialect.
type Dialect struct {
	// Name is the value accepted in configuration ("postgres", "mysql", "sqlite").
	Name string
	// Driver is the database/sql driver name registered by the imported driver.
	Driver string
	// Goose is the goose dialect used for migrations.
	Goose string
	// Numbered placeholders ($1, $2, ...) instead of '?'.
	Numbered bool
	// Returning means INSERT ... RETURNING id is used instead of LastInsertId.
	Returning bool
	// Now is the SQL expression for the current time with sub-second precision.
	Now string
}

var (
	Postgres = Dialect{Name: "postgres", Driver: "pgx", Goose: "postgres", Numbered: true, Returning: true,
		Now: "CURRENT_TIMESTAMP"}
	MySQL = Dialect{Name: "mysql", Driver: "mysql", Goose: "mysql",
		Now: "CURRENT_TIMESTAMP(3)"}
	SQLite = Dialect{Name: "sqlite", Driver: "sqlite", Goose: "sqlite3",
		Now: "strftime('%Y-%m-%d %H:%M:%f', 'now')"}
)

// DialectFor resolves a configured driver name.
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	case "mysql", "mariadb":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", name)
	}
}

// Rebind rewrites '?' placeholders for dialects with numbered parameters.
// Question marks inside single-quoted literals are left alone.
func (d Dialect) Rebind(query string) string {
	if !d.Numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inQuote := false
	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote
			b.WriteRune(r)
		case r == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
