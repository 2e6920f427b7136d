package dbx

import (
	"context"
	"fmt"
)

// InsertID runs an INSERT written with '?' placeholders and returns the
// generated id, using RETURNING where the dialect supports it and
// LastInsertId otherwise.
func InsertID(ctx context.Context, db DBTX, d Dialect, query string, args ...any) (int64, error) {
	if d.Returning {
		var id int64
		if err := db.QueryRowContext(ctx, d.Rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("db error: %w", err)
		}
		return id, nil
	}

	res, err := db.ExecContext(ctx, d.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id error: %w", err)
	}
	return id, nil
}
