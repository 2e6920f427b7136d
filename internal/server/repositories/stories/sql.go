package stories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storyku/internal/common"
	"github.com/dmitrijs2005/storyku/internal/dbx"
	"github.com/dmitrijs2005/storyku/internal/server/models"
)

const storyColumns = `id, title, author, synopsis, category, cover_image, tags, status`

// SQLRepository implements Repository over a dbx.DBTX for any supported dialect.
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

func scanStory(row rowScanner) (*models.Story, error) {
	var (
		s     models.Story
		cover sql.NullString
	)
	if err := row.Scan(&s.ID, &s.Title, &s.Author, &s.Synopsis, &s.Category, &cover, &s.Tags, &s.Status); err != nil {
		return nil, err
	}
	if cover.Valid {
		s.CoverImage = &cover.String
	}
	return &s, nil
}

func (r *SQLRepository) List(ctx context.Context) ([]*models.Story, error) {
	query := `SELECT ` + storyColumns + ` FROM stories ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Story, 0)
	for rows.Next() {
		s, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLRepository) Get(ctx context.Context, id int64) (*models.Story, error) {
	query := r.dialect.Rebind(`SELECT ` + storyColumns + ` FROM stories WHERE id = ?`)

	s, err := scanStory(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *SQLRepository) Create(ctx context.Context, s *models.Story) (int64, error) {
	query := `INSERT INTO stories (title, author, synopsis, category, cover_image, tags, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	id, err := dbx.InsertID(ctx, r.db, r.dialect, query,
		s.Title, s.Author, s.Synopsis, s.Category, s.CoverImage, s.Tags, s.Status)
	if err != nil {
		return 0, err
	}
	s.ID = id
	return id, nil
}

func (r *SQLRepository) Update(ctx context.Context, s *models.Story, replaceCover bool) error {
	var (
		query string
		args  []any
	)
	if replaceCover {
		query = `UPDATE stories SET title = ?, author = ?, synopsis = ?, category = ?, cover_image = ?, tags = ?, status = ?
			WHERE id = ?`
		args = []any{s.Title, s.Author, s.Synopsis, s.Category, s.CoverImage, s.Tags, s.Status, s.ID}
	} else {
		query = `UPDATE stories SET title = ?, author = ?, synopsis = ?, category = ?, tags = ?, status = ?
			WHERE id = ?`
		args = []any{s.Title, s.Author, s.Synopsis, s.Category, s.Tags, s.Status, s.ID}
	}

	if _, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), args...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM stories WHERE id = ?`), id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
