// Package services implements Storyku's use cases on top of the repositories
// and the upload store. Handlers depend on these, never on SQL.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/storyku/internal/common"
	"github.com/dmitrijs2005/storyku/internal/logging"
	"github.com/dmitrijs2005/storyku/internal/server/models"
	"github.com/dmitrijs2005/storyku/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storyku/internal/server/uploads"
)

// StoryInput carries the writable story fields as submitted by a client.
type StoryInput struct {
	Title    string
	Author   string
	Synopsis string
	Category string
	Tags     string
	Status   string
}

// Upload is an optional cover image attached to a story write.
type Upload struct {
	Name string
	Body io.Reader
}

type StoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       uploads.Store
	logger      logging.Logger
}

func NewStoryService(db *sql.DB, repomanager repomanager.RepositoryManager, store uploads.Store, logger logging.Logger) *StoryService {
	return &StoryService{
		db:          db,
		repomanager: repomanager,
		store:       store,
		logger:      logger.With("module", "story_service"),
	}
}

// normalize applies form defaults and checks required fields and enums.
func (in *StoryInput) normalize() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if strings.TrimSpace(in.Author) == "" {
		return fmt.Errorf("%w: author is required", common.ErrorValidation)
	}
	if in.Category == "" {
		in.Category = models.CategoryFinancial
	}
	if !models.IsCategory(in.Category) {
		return fmt.Errorf("%w: unknown category %q", common.ErrorValidation, in.Category)
	}
	if in.Status == "" {
		in.Status = models.StatusDraft
	}
	if !models.IsStatus(in.Status) {
		return fmt.Errorf("%w: unknown status %q", common.ErrorValidation, in.Status)
	}
	return nil
}

func (in StoryInput) story(id int64) *models.Story {
	return &models.Story{
		ID:       id,
		Title:    in.Title,
		Author:   in.Author,
		Synopsis: in.Synopsis,
		Category: in.Category,
		Tags:     in.Tags,
		Status:   in.Status,
	}
}

func (s *StoryService) saveCover(ctx context.Context, cover *Upload) (*string, error) {
	if cover == nil {
		return nil, nil
	}
	name, err := s.store.Save(ctx, cover.Name, cover.Body)
	if err != nil {
		return nil, fmt.Errorf("store cover: %w", err)
	}
	s.logger.Debug(ctx, "cover stored", "original", cover.Name, "name", name)
	return &name, nil
}

func (s *StoryService) List(ctx context.Context) ([]*models.Story, error) {
	return s.repomanager.Stories(s.db).List(ctx)
}

func (s *StoryService) Get(ctx context.Context, id int64) (*models.Story, error) {
	return s.repomanager.Stories(s.db).Get(ctx, id)
}

// Create stores the cover first, when present, then inserts the story.
func (s *StoryService) Create(ctx context.Context, in StoryInput, cover *Upload) (int64, error) {
	if err := in.normalize(); err != nil {
		return 0, err
	}

	name, err := s.saveCover(ctx, cover)
	if err != nil {
		return 0, err
	}

	story := in.story(0)
	story.CoverImage = name

	id, err := s.repomanager.Stories(s.db).Create(ctx, story)
	if err != nil {
		return 0, err
	}
	s.logger.Info(ctx, "story created", "id", id)
	return id, nil
}

// Update rewrites every field. The stored cover is replaced only when a new
// file is attached; otherwise the existing one is kept.
func (s *StoryService) Update(ctx context.Context, id int64, in StoryInput, cover *Upload) error {
	if err := in.normalize(); err != nil {
		return err
	}

	name, err := s.saveCover(ctx, cover)
	if err != nil {
		return err
	}

	story := in.story(id)
	story.CoverImage = name

	if err := s.repomanager.Stories(s.db).Update(ctx, story, cover != nil); err != nil {
		return err
	}
	s.logger.Info(ctx, "story updated", "id", id, "cover_replaced", cover != nil)
	return nil
}

// Delete removes the story row only. Its chapters and cover file remain.
func (s *StoryService) Delete(ctx context.Context, id int64) error {
	if err := s.repomanager.Stories(s.db).Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "story deleted", "id", id)
	return nil
}

// Locate resolves an uploaded file name for serving.
func (s *StoryService) Locate(ctx context.Context, name string) (uploads.Location, error) {
	return s.store.Locate(ctx, name)
}
