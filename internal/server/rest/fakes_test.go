package rest

import (
	"context"
	"io"

	"github.com/dmitrijs2005/storyku/internal/common"
	"github.com/dmitrijs2005/storyku/internal/server/models"
	"github.com/dmitrijs2005/storyku/internal/server/services"
	"github.com/dmitrijs2005/storyku/internal/server/uploads"
)

type fakeStories struct {
	list []*models.Story
	err  error

	gotInput   services.StoryInput
	gotID      int64
	gotCover   string
	gotContent string
	hadCover   bool
	location   uploads.Location
}

func (f *fakeStories) List(ctx context.Context) ([]*models.Story, error) {
	return f.list, f.err
}

func (f *fakeStories) Get(ctx context.Context, id int64) (*models.Story, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.list {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeStories) capture(in services.StoryInput, cover *services.Upload) {
	f.gotInput = in
	f.hadCover = cover != nil
	if cover != nil {
		f.gotCover = cover.Name
		b, _ := io.ReadAll(cover.Body)
		f.gotContent = string(b)
	}
}

func (f *fakeStories) Create(ctx context.Context, in services.StoryInput, cover *services.Upload) (int64, error) {
	f.capture(in, cover)
	if f.err != nil {
		return 0, f.err
	}
	return 77, nil
}

func (f *fakeStories) Update(ctx context.Context, id int64, in services.StoryInput, cover *services.Upload) error {
	f.gotID = id
	f.capture(in, cover)
	return f.err
}

func (f *fakeStories) Delete(ctx context.Context, id int64) error {
	f.gotID = id
	return f.err
}

func (f *fakeStories) Locate(ctx context.Context, name string) (uploads.Location, error) {
	if f.err != nil {
		return uploads.Location{}, f.err
	}
	return f.location, nil
}

type fakeChapters struct {
	list     []*models.Chapter
	err      error
	gotID    int64
	gotInput services.ChapterInput
}

func (f *fakeChapters) ListByStory(ctx context.Context, storyID int64) ([]*models.Chapter, error) {
	f.gotID = storyID
	return f.list, f.err
}

func (f *fakeChapters) Get(ctx context.Context, id int64) (*models.Chapter, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.list {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeChapters) Create(ctx context.Context, in services.ChapterInput) (int64, error) {
	f.gotInput = in
	if f.err != nil {
		return 0, f.err
	}
	return 5, nil
}

func (f *fakeChapters) Update(ctx context.Context, id int64, in services.ChapterInput) error {
	f.gotID = id
	f.gotInput = in
	return f.err
}

func (f *fakeChapters) Delete(ctx context.Context, id int64) error {
	f.gotID = id
	return f.err
}
