package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storyku/internal/common"
	"github.com/dmitrijs2005/storyku/internal/dbx"
	"github.com/dmitrijs2005/storyku/internal/logging"
	"github.com/dmitrijs2005/storyku/internal/server/models"
	"github.com/dmitrijs2005/storyku/internal/server/repositories/repomanager"
)

type ChapterInput struct {
	StoryID      int64
	ChapterTitle string
	StoryChapter string
}

type ChapterService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewChapterService(db *sql.DB, repomanager repomanager.RepositoryManager, logger logging.Logger) *ChapterService {
	return &ChapterService{
		db:          db,
		repomanager: repomanager,
		logger:      logger.With("module", "chapter_service"),
	}
}

func (s *ChapterService) ListByStory(ctx context.Context, storyID int64) ([]*models.Chapter, error) {
	return s.repomanager.Chapters(s.db).ListByStory(ctx, storyID)
}

func (s *ChapterService) Get(ctx context.Context, id int64) (*models.Chapter, error) {
	return s.repomanager.Chapters(s.db).Get(ctx, id)
}

// Create checks that the parent story exists and inserts the chapter in one
// transaction.
func (s *ChapterService) Create(ctx context.Context, in ChapterInput) (int64, error) {
	if in.StoryID <= 0 {
		return 0, fmt.Errorf("%w: story_id is required", common.ErrorValidation)
	}

	var id int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Stories(tx).Get(ctx, in.StoryID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return fmt.Errorf("%w: story %d does not exist", common.ErrorValidation, in.StoryID)
			}
			return err
		}

		var err error
		id, err = s.repomanager.Chapters(tx).Create(ctx, &models.Chapter{
			StoryID:      in.StoryID,
			ChapterTitle: in.ChapterTitle,
			StoryChapter: in.StoryChapter,
		})
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info(ctx, "chapter created", "id", id, "story_id", in.StoryID)
	return id, nil
}

// Update replaces title and body; the story reference never changes.
func (s *ChapterService) Update(ctx context.Context, id int64, in ChapterInput) error {
	err := s.repomanager.Chapters(s.db).Update(ctx, &models.Chapter{
		ID:           id,
		ChapterTitle: in.ChapterTitle,
		StoryChapter: in.StoryChapter,
	})
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "chapter updated", "id", id)
	return nil
}

func (s *ChapterService) Delete(ctx context.Context, id int64) error {
	if err := s.repomanager.Chapters(s.db).Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "chapter deleted", "id", id)
	return nil
}
