package services

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/storyku/internal/common"
	"github.com/dmitrijs2005/storyku/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoryService(t *testing.T) (*StoryService, *fakeStoriesRepo, *fakeStore) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	repo := newFakeStoriesRepo()
	store := &fakeStore{next: "1700000000000.png"}
	rm := &fakeRepoMgr{stories: repo, chapters: &fakeChaptersRepo{}}
	return NewStoryService(db, rm, store, logging.Nop{}), repo, store
}

func TestStoryService_CreateGetRoundTrip(t *testing.T) {
	svc, _, store := newStoryService(t)
	ctx := context.Background()

	in := StoryInput{Title: "The Hollow", Author: "Ann", Synopsis: "s", Category: "Technology", Tags: "Fantasy,Drama", Status: "Publish"}
	id, err := svc.Create(ctx, in, &Upload{Name: "cover.png", Body: strings.NewReader("img")})
	require.NoError(t, err)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "The Hollow", got.Title)
	assert.Equal(t, "Technology", got.Category)
	assert.Equal(t, []string{"Fantasy", "Drama"}, got.TagList())
	require.NotNil(t, got.CoverImage)
	assert.Equal(t, "1700000000000.png", *got.CoverImage)
	assert.Equal(t, "img", store.saved["1700000000000.png"])
}

func TestStoryService_CreateDefaultsAndNoCover(t *testing.T) {
	svc, repo, store := newStoryService(t)

	id, err := svc.Create(context.Background(), StoryInput{Title: "T", Author: "A"}, nil)
	require.NoError(t, err)

	s := repo.rows[id]
	assert.Equal(t, "Financial", s.Category)
	assert.Equal(t, "Draft", s.Status)
	assert.Nil(t, s.CoverImage)
	assert.Empty(t, store.saved)
}

func TestStoryService_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		in   StoryInput
	}{
		{name: "missing title", in: StoryInput{Author: "A"}},
		{name: "blank author", in: StoryInput{Title: "T", Author: "  "}},
		{name: "bad category", in: StoryInput{Title: "T", Author: "A", Category: "Sports"}},
		{name: "bad status", in: StoryInput{Title: "T", Author: "A", Status: "Published"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, store := newStoryService(t)
			_, err := svc.Create(context.Background(), tt.in, &Upload{Name: "x.png", Body: strings.NewReader("x")})
			require.ErrorIs(t, err, common.ErrorValidation)
			assert.Empty(t, repo.rows)
			assert.Empty(t, store.saved, "no file is stored for rejected input")
		})
	}
}

func TestStoryService_CreateStoreError(t *testing.T) {
	svc, repo, store := newStoryService(t)
	store.saveErr = errBoom

	_, err := svc.Create(context.Background(), StoryInput{Title: "T", Author: "A"}, &Upload{Name: "x.png", Body: strings.NewReader("x")})
	require.ErrorIs(t, err, errBoom)
	assert.Empty(t, repo.rows)
}

func TestStoryService_UpdateCoverHandling(t *testing.T) {
	in := StoryInput{Title: "T2", Author: "A2", Category: "Health", Status: "Publish"}

	t.Run("without file keeps cover", func(t *testing.T) {
		svc, repo, store := newStoryService(t)
		require.NoError(t, svc.Update(context.Background(), 3, in, nil))
		assert.False(t, repo.replaced)
		assert.Equal(t, int64(3), repo.updated.ID)
		assert.Empty(t, store.saved)
	})

	t.Run("with file replaces cover", func(t *testing.T) {
		svc, repo, _ := newStoryService(t)
		require.NoError(t, svc.Update(context.Background(), 3, in, &Upload{Name: "n.png", Body: strings.NewReader("n")}))
		assert.True(t, repo.replaced)
		require.NotNil(t, repo.updated.CoverImage)
		assert.Equal(t, "1700000000000.png", *repo.updated.CoverImage)
	})

	t.Run("validation", func(t *testing.T) {
		svc, repo, _ := newStoryService(t)
		err := svc.Update(context.Background(), 3, StoryInput{Author: "A"}, nil)
		require.ErrorIs(t, err, common.ErrorValidation)
		assert.Nil(t, repo.updated)
	})
}

func TestStoryService_DeleteAndList(t *testing.T) {
	svc, repo, _ := newStoryService(t)
	ctx := context.Background()

	first, _ := svc.Create(ctx, StoryInput{Title: "1", Author: "A"}, nil)
	second, _ := svc.Create(ctx, StoryInput{Title: "2", Author: "A"}, nil)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0].ID)

	require.NoError(t, svc.Delete(ctx, first))
	assert.Equal(t, []int64{first}, repo.deleted)

	list, _ = svc.List(ctx)
	require.Len(t, list, 1)

	_, err = svc.Get(ctx, first)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestStoryService_Locate(t *testing.T) {
	svc, _, _ := newStoryService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, StoryInput{Title: "T", Author: "A"}, &Upload{Name: "c.png", Body: strings.NewReader("c")})
	require.NoError(t, err)

	loc, err := svc.Locate(ctx, "1700000000000.png")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/1700000000000.png", loc.Path)

	_, err = svc.Locate(ctx, "missing.png")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
