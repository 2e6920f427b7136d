// Package rest exposes the Storyku API over HTTP using gin.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/storyku/internal/logging"
	"github.com/dmitrijs2005/storyku/internal/server/models"
	"github.com/dmitrijs2005/storyku/internal/server/services"
	"github.com/dmitrijs2005/storyku/internal/server/uploads"
	"github.com/gin-gonic/gin"
)

// StoryService is the story use-case surface the handlers need.
type StoryService interface {
	List(ctx context.Context) ([]*models.Story, error)
	Get(ctx context.Context, id int64) (*models.Story, error)
	Create(ctx context.Context, in services.StoryInput, cover *services.Upload) (int64, error)
	Update(ctx context.Context, id int64, in services.StoryInput, cover *services.Upload) error
	Delete(ctx context.Context, id int64) error
	Locate(ctx context.Context, name string) (uploads.Location, error)
}

// ChapterService is the chapter use-case surface the handlers need.
type ChapterService interface {
	ListByStory(ctx context.Context, storyID int64) ([]*models.Chapter, error)
	Get(ctx context.Context, id int64) (*models.Chapter, error)
	Create(ctx context.Context, in services.ChapterInput) (int64, error)
	Update(ctx context.Context, id int64, in services.ChapterInput) error
	Delete(ctx context.Context, id int64) error
}

type HTTPServer struct {
	address         string
	logger          logging.Logger
	router          *gin.Engine
	shutdownTimeout time.Duration
}

func NewHTTPServer(address string, l logging.Logger, stories StoryService, chapters ChapterService, shutdownTimeout time.Duration) *HTTPServer {
	logger := l.With("module", "http_server")
	h := &handler{stories: stories, chapters: chapters, logger: logger}
	return &HTTPServer{
		address:         address,
		logger:          logger,
		router:          newRouter(h, logger),
		shutdownTimeout: shutdownTimeout,
	}
}

// Handler returns the configured router, for tests and embedding.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to the shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
