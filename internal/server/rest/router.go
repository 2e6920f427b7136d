package rest

import (
	"github.com/dmitrijs2005/storyku/internal/logging"
	"github.com/gin-gonic/gin"
)

func newRouter(h *handler, logger logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(recoveryMiddleware(logger), requestIDMiddleware(), loggingMiddleware(logger), corsMiddleware())

	r.GET("/", h.ready)

	r.GET("/uploads/:filename", h.serveUpload)

	r.GET("/stories", h.listStories)
	r.GET("/stories/:id", h.getStory)
	r.POST("/add-story", h.createStory)
	r.PUT("/stories/:id", h.updateStory)
	r.DELETE("/stories/:id", h.deleteStory)
	r.GET("/stories/:id/chapters", h.listChapters)

	r.GET("/chapters/:id", h.getChapter)
	r.POST("/add-chapter", h.createChapter)
	r.PUT("/chapters/:id", h.updateChapter)
	r.DELETE("/chapters/:id", h.deleteChapter)

	return r
}
