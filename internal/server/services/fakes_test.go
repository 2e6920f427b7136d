package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/storyku/internal/common"
	"github.com/dmitrijs2005/storyku/internal/dbx"
	"github.com/dmitrijs2005/storyku/internal/logging"
	"github.com/dmitrijs2005/storyku/internal/server/models"
	"github.com/dmitrijs2005/storyku/internal/server/repositories/chapters"
	"github.com/dmitrijs2005/storyku/internal/server/repositories/stories"
	"github.com/dmitrijs2005/storyku/internal/server/uploads"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeStoriesRepo struct {
	rows      map[int64]*models.Story
	nextID    int64
	updated   *models.Story
	replaced  bool
	deleted   []int64
	createErr error
	getErr    error
}

func newFakeStoriesRepo() *fakeStoriesRepo {
	return &fakeStoriesRepo{rows: map[int64]*models.Story{}, nextID: 1}
}

func (f *fakeStoriesRepo) List(ctx context.Context) ([]*models.Story, error) {
	out := make([]*models.Story, 0, len(f.rows))
	for id := f.nextID; id > 0; id-- {
		if s, ok := f.rows[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStoriesRepo) Get(ctx context.Context, id int64) (*models.Story, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	s, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return s, nil
}

func (f *fakeStoriesRepo) Create(ctx context.Context, s *models.Story) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	s.ID = f.nextID
	f.rows[s.ID] = s
	f.nextID++
	return s.ID, nil
}

func (f *fakeStoriesRepo) Update(ctx context.Context, s *models.Story, replaceCover bool) error {
	f.updated = s
	f.replaced = replaceCover
	return nil
}

func (f *fakeStoriesRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	delete(f.rows, id)
	return nil
}

type fakeChaptersRepo struct {
	created   []*models.Chapter
	updated   *models.Chapter
	deleted   []int64
	createErr error
}

func (f *fakeChaptersRepo) ListByStory(ctx context.Context, storyID int64) ([]*models.Chapter, error) {
	var out []*models.Chapter
	for _, c := range f.created {
		if c.StoryID == storyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeChaptersRepo) Get(ctx context.Context, id int64) (*models.Chapter, error) {
	for _, c := range f.created {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeChaptersRepo) Create(ctx context.Context, c *models.Chapter) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	c.ID = int64(len(f.created) + 1)
	f.created = append(f.created, c)
	return c.ID, nil
}

func (f *fakeChaptersRepo) Update(ctx context.Context, c *models.Chapter) error {
	f.updated = c
	return nil
}

func (f *fakeChaptersRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRepoMgr struct {
	stories  *fakeStoriesRepo
	chapters *fakeChaptersRepo
}

func (m *fakeRepoMgr) Dialect() dbx.Dialect                                         { return dbx.SQLite }
func (m *fakeRepoMgr) RunMigrations(context.Context, *sql.DB, logging.Logger) error { return nil }
func (m *fakeRepoMgr) Stories(db dbx.DBTX) stories.Repository                       { return m.stories }
func (m *fakeRepoMgr) Chapters(db dbx.DBTX) chapters.Repository                     { return m.chapters }

type fakeStore struct {
	saved   map[string]string
	next    string
	saveErr error
}

func (s *fakeStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	b, _ := io.ReadAll(r)
	if s.saved == nil {
		s.saved = map[string]string{}
	}
	s.saved[s.next] = string(b)
	return s.next, nil
}

func (s *fakeStore) Locate(ctx context.Context, name string) (uploads.Location, error) {
	if _, ok := s.saved[name]; !ok {
		return uploads.Location{}, common.ErrorNotFound
	}
	return uploads.Location{Path: "/tmp/" + name}, nil
}

var errBoom = errors.New("boom")
