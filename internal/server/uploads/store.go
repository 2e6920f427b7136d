// Package uploads stores story cover images under generated names and
// resolves those names back for serving.
package uploads

import (
	"context"
	"io"
)

// Location tells the HTTP layer how to serve a stored file: from a local
// Path, or by redirecting to URL.
type Location struct {
	Path string
	URL  string
}

// Store persists uploaded files. Files are never removed: replacing a cover
// or deleting a story leaves the old object in place.
type Store interface {
	// Save writes r under a freshly generated name derived from originalName
	// and returns that name.
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	// Locate returns common.ErrorNotFound for unknown or unsafe names.
	Locate(ctx context.Context, name string) (Location, error)
}
