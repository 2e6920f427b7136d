// Package chapters persists Chapter records. There is no foreign key to
// stories: chapters outlive the story they were written for.
package chapters

import (
	"context"

	"github.com/dmitrijs2005/storyku/internal/server/models"
)

type Repository interface {
	// ListByStory returns a story's chapters, most recently updated first.
	ListByStory(ctx context.Context, storyID int64) ([]*models.Chapter, error)
	// Get returns common.ErrorNotFound when no row has the id.
	Get(ctx context.Context, id int64) (*models.Chapter, error)
	Create(ctx context.Context, chapter *models.Chapter) (int64, error)
	// Update replaces title and body and bumps last_updated.
	Update(ctx context.Context, chapter *models.Chapter) error
	Delete(ctx context.Context, id int64) error
}
