package rest

import (
	"net/http"

	"github.com/dmitrijs2005/storyku/internal/logging"
	"github.com/dmitrijs2005/storyku/internal/server/services"
	"github.com/gin-gonic/gin"
)

const coverField = "cover_image"

type handler struct {
	stories  StoryService
	chapters ChapterService
	logger   logging.Logger
}

// storyRequest binds from multipart, urlencoded or JSON bodies.
type storyRequest struct {
	Title    string `form:"title" json:"title"`
	Author   string `form:"author" json:"author"`
	Synopsis string `form:"synopsis" json:"synopsis"`
	Category string `form:"category" json:"category"`
	Tags     string `form:"tags" json:"tags"`
	Status   string `form:"status" json:"status"`
}

func (r storyRequest) input() services.StoryInput {
	return services.StoryInput{
		Title:    r.Title,
		Author:   r.Author,
		Synopsis: r.Synopsis,
		Category: r.Category,
		Tags:     r.Tags,
		Status:   r.Status,
	}
}

func (h *handler) ready(c *gin.Context) {
	c.String(http.StatusOK, "Server Storyku Ready!")
}

func (h *handler) listStories(c *gin.Context) {
	list, err := h.stories.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *handler) getStory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s, err := h.stories.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// bindStory reads the story fields and the optional cover file. The
// returned closer must be called once the upload has been consumed.
func (h *handler) bindStory(c *gin.Context) (*storyRequest, *services.Upload, func(), bool) {
	var req storyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid body", "error": err.Error()})
		return nil, nil, nil, false
	}

	noop := func() {}
	fh, err := c.FormFile(coverField)
	if err != nil {
		// no file part, or not a multipart request
		return &req, nil, noop, true
	}

	f, err := fh.Open()
	if err != nil {
		h.respondError(c, err)
		return nil, nil, nil, false
	}
	return &req, &services.Upload{Name: fh.Filename, Body: f}, func() { _ = f.Close() }, true
}

func (h *handler) createStory(c *gin.Context) {
	req, cover, closeFn, ok := h.bindStory(c)
	if !ok {
		return
	}
	defer closeFn()

	id, err := h.stories.Create(c.Request.Context(), req.input(), cover)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Success", "id": id})
}

func (h *handler) updateStory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, cover, closeFn, ok := h.bindStory(c)
	if !ok {
		return
	}
	defer closeFn()

	if err := h.stories.Update(c.Request.Context(), id, req.input(), cover); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Updated"})
}

func (h *handler) deleteStory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.stories.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

func (h *handler) serveUpload(c *gin.Context) {
	loc, err := h.stories.Locate(c.Request.Context(), c.Param("filename"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if loc.URL != "" {
		c.Redirect(http.StatusFound, loc.URL)
		return
	}
	c.File(loc.Path)
}
