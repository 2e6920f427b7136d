// Package stories persists Story records. Every method issues exactly one
// SQL statement.
package stories

import (
	"context"

	"github.com/dmitrijs2005/storyku/internal/server/models"
)

type Repository interface {
	// List returns all stories, newest id first.
	List(ctx context.Context) ([]*models.Story, error)
	// Get returns common.ErrorNotFound when no row has the id.
	Get(ctx context.Context, id int64) (*models.Story, error)
	Create(ctx context.Context, story *models.Story) (int64, error)
	// Update writes every column; cover_image only when replaceCover is set.
	Update(ctx context.Context, story *models.Story, replaceCover bool) error
	Delete(ctx context.Context, id int64) error
}
