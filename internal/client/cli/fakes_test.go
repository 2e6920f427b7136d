package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/storyku/internal/client/api"
	"github.com/dmitrijs2005/storyku/internal/client/config"
	"github.com/dmitrijs2005/storyku/internal/client/models"
)

type fakeAPI struct {
	stories  []*models.Story
	chapters []*models.Chapter
	err      error

	created        []api.StoryInput
	updated        map[int64]api.StoryInput
	deleted        []int64
	chapterCreated []api.ChapterInput
	chapterUpdated map[int64]api.ChapterInput
	chapterDeleted []int64
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		updated:        map[int64]api.StoryInput{},
		chapterUpdated: map[int64]api.ChapterInput{},
	}
}

func (f *fakeAPI) Ping(ctx context.Context) error { return f.err }

func (f *fakeAPI) ListStories(ctx context.Context) ([]*models.Story, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stories, nil
}

func (f *fakeAPI) GetStory(ctx context.Context, id int64) (*models.Story, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.stories {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, api.ErrNotFound
}

func (f *fakeAPI) CreateStory(ctx context.Context, in api.StoryInput) (int64, error) {
	f.created = append(f.created, in)
	return int64(100 + len(f.created)), f.err
}

func (f *fakeAPI) UpdateStory(ctx context.Context, id int64, in api.StoryInput) error {
	f.updated[id] = in
	return f.err
}

func (f *fakeAPI) DeleteStory(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeAPI) ListChapters(ctx context.Context, storyID int64) ([]*models.Chapter, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*models.Chapter{}
	for _, c := range f.chapters {
		if c.StoryID == storyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeAPI) GetChapter(ctx context.Context, id int64) (*models.Chapter, error) {
	for _, c := range f.chapters {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, api.ErrNotFound
}

func (f *fakeAPI) CreateChapter(ctx context.Context, in api.ChapterInput) (int64, error) {
	f.chapterCreated = append(f.chapterCreated, in)
	return 50, f.err
}

func (f *fakeAPI) UpdateChapter(ctx context.Context, id int64, in api.ChapterInput) error {
	f.chapterUpdated[id] = in
	return f.err
}

func (f *fakeAPI) DeleteChapter(ctx context.Context, id int64) error {
	f.chapterDeleted = append(f.chapterDeleted, id)
	return f.err
}

func (f *fakeAPI) CoverURL(name string) string {
	return "http://server/uploads/" + name
}

func newTestApp(t *testing.T, fa *fakeAPI, input string) (*App, *bytes.Buffer) {
	t.Helper()
	old := termSize
	termSize = func(int) (int, int, error) { return 120, 40, nil }
	t.Cleanup(func() { termSize = old })

	cfg := &config.Config{ServerURL: "http://server", RequestTimeout: time.Second}
	out := &bytes.Buffer{}
	return newApp(cfg, fa, bytes.NewBufferString(input), out), out
}

func sampleStories(n int) []*models.Story {
	out := make([]*models.Story, n)
	for i := range out {
		status := models.StatusDraft
		if i%3 == 0 {
			status = models.StatusPublish
		}
		category := models.CategoryFinancial
		if i%2 == 0 {
			category = models.CategoryTechnology
		}
		out[i] = &models.Story{
			ID:       int64(n - i),
			Title:    "Tale " + string(rune('A'+i)),
			Author:   "Writer",
			Category: category,
			Status:   status,
		}
	}
	return out
}
