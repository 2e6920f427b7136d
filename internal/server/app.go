// Package server wires configuration, storage, uploads and the REST API into
// a runnable application and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/storyku/internal/logging"
	"github.com/dmitrijs2005/storyku/internal/server/config"
	"github.com/dmitrijs2005/storyku/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storyku/internal/server/rest"
	"github.com/dmitrijs2005/storyku/internal/server/services"
	"github.com/dmitrijs2005/storyku/internal/server/uploads"
	"github.com/gin-gonic/gin"
)

var logOutput io.Writer = os.Stdout

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	storyService   *services.StoryService
	chapterService *services.ChapterService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(logOutput, c.LogLevel)

	if logging.ParseLevel(c.LogLevel) != slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	db, rm, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store, err := newUploadStore(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("upload store init error: %w", err)
	}

	ss := services.NewStoryService(db, rm, store, logger)
	cs := services.NewChapterService(db, rm, logger)

	return &App{config: c, logger: logger, db: db, storyService: ss, chapterService: cs}, nil
}

func newUploadStore(ctx context.Context, c *config.Config) (uploads.Store, error) {
	namer := uploads.NewNamer()

	switch c.UploadBackend {
	case config.UploadBackendLocal, "":
		s, err := uploads.NewLocalStore(c.UploadDir, namer)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.UploadBackendS3:
		s, err := uploads.NewS3Store(ctx, uploads.S3Config{
			User:         c.S3RootUser,
			Password:     c.S3RootPassword,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		}, namer)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown upload backend %q", c.UploadBackend)
	}
}

func (app *App) httpServer() *rest.HTTPServer {
	return rest.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.storyService, app.chapterService, app.config.ShutdownTimeout)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer().Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a termination signal arrives, ctx is cancelled, or the
// HTTP server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(ctx, "App stopped")
}

func (app *App) Close() error {
	return app.db.Close()
}
