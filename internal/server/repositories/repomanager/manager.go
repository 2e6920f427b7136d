// Package repomanager opens the configured database, runs the embedded goose
// migrations for its dialect and vends repositories bound to a DBTX.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storyku/internal/dbx"
	"github.com/dmitrijs2005/storyku/internal/logging"
	"github.com/dmitrijs2005/storyku/internal/server/migrations"
	"github.com/dmitrijs2005/storyku/internal/server/repositories/chapters"
	"github.com/dmitrijs2005/storyku/internal/server/repositories/stories"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type RepositoryManager interface {
	Dialect() dbx.Dialect
	RunMigrations(context.Context, *sql.DB, logging.Logger) error
	Stories(db dbx.DBTX) stories.Repository
	Chapters(db dbx.DBTX) chapters.Repository
}

// SQLRepositoryManager vends the database/sql repositories for one dialect.
type SQLRepositoryManager struct {
	dialect dbx.Dialect
}

func NewRepositoryManager(d dbx.Dialect) *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: d}
}

func (m *SQLRepositoryManager) Dialect() dbx.Dialect {
	return m.dialect
}

func (m *SQLRepositoryManager) Stories(db dbx.DBTX) stories.Repository {
	return stories.NewSQLRepository(db, m.dialect)
}

func (m *SQLRepositoryManager) Chapters(db dbx.DBTX) chapters.Repository {
	return chapters.NewSQLRepository(db, m.dialect)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// gooseLogger routes goose output into the structured logger.
type gooseLogger struct {
	ctx    context.Context
	logger logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.logger.Info(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf only logs; failures still come back from goose as errors.
func (g gooseLogger) Fatalf(format string, v ...any) {
	g.logger.Error(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// RunMigrations applies the embedded migrations for the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB, logger logging.Logger) error {
	fsys, err := migrations.For(m.dialect.Name)
	if err != nil {
		return err
	}
	goose.SetLogger(gooseLogger{ctx: ctx, logger: logger.With("component", "goose", "dialect", m.dialect.Name)})
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect(m.dialect.Goose); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// Open resolves the driver name, opens and pings the database and returns
// it together with a manager for its dialect.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, RepositoryManager, error) {
	d, err := dbx.DialectFor(driver)
	if err != nil {
		return nil, nil, err
	}

	db, err := sqlOpen(d.Driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", d.Name, err)
	}
	if d == dbx.SQLite {
		// one writer at a time; also keeps in-memory databases on one connection
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", d.Name, err)
	}

	return db, NewRepositoryManager(d), nil
}
