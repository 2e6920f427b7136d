package chapters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storyku/internal/common"
	"github.com/dmitrijs2005/storyku/internal/dbx"
	"github.com/dmitrijs2005/storyku/internal/server/models"
)

const chapterColumns = `id, story_id, chapter_title, story_chapter, last_updated`

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChapter(row rowScanner) (*models.Chapter, error) {
	var (
		c  models.Chapter
		ts dbx.Timestamp
	)
	if err := row.Scan(&c.ID, &c.StoryID, &c.ChapterTitle, &c.StoryChapter, &ts); err != nil {
		return nil, err
	}
	c.LastUpdated = ts.Time
	return &c, nil
}

func (r *SQLRepository) ListByStory(ctx context.Context, storyID int64) ([]*models.Chapter, error) {
	query := r.dialect.Rebind(`SELECT ` + chapterColumns + ` FROM chapters
		WHERE story_id = ? ORDER BY last_updated DESC, id DESC`)

	rows, err := r.db.QueryContext(ctx, query, storyID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Chapter, 0)
	for rows.Next() {
		c, err := scanChapter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLRepository) Get(ctx context.Context, id int64) (*models.Chapter, error) {
	query := r.dialect.Rebind(`SELECT ` + chapterColumns + ` FROM chapters WHERE id = ?`)

	c, err := scanChapter(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *SQLRepository) Create(ctx context.Context, c *models.Chapter) (int64, error) {
	query := `INSERT INTO chapters (story_id, chapter_title, story_chapter, last_updated)
		VALUES (?, ?, ?, ` + r.dialect.Now + `)`

	id, err := dbx.InsertID(ctx, r.db, r.dialect, query, c.StoryID, c.ChapterTitle, c.StoryChapter)
	if err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}

func (r *SQLRepository) Update(ctx context.Context, c *models.Chapter) error {
	query := r.dialect.Rebind(`UPDATE chapters SET chapter_title = ?, story_chapter = ?, last_updated = ` +
		r.dialect.Now + ` WHERE id = ?`)

	if _, err := r.db.ExecContext(ctx, query, c.ChapterTitle, c.StoryChapter, c.ID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM chapters WHERE id = ?`), id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
