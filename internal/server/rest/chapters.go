package rest

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storyku/internal/server/services"
	"github.com/gin-gonic/gin"
)

// flexID accepts a JSON number or a numeric string.
type flexID int64

func (f *flexID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", s)
	}
	*f = flexID(v)
	return nil
}

type chapterRequest struct {
	StoryID      flexID `form:"story_id" json:"story_id"`
	ChapterTitle string `form:"chapter_title" json:"chapter_title"`
	StoryChapter string `form:"story_chapter" json:"story_chapter"`
}

func (r chapterRequest) input() services.ChapterInput {
	return services.ChapterInput{
		StoryID:      int64(r.StoryID),
		ChapterTitle: r.ChapterTitle,
		StoryChapter: r.StoryChapter,
	}
}

func (h *handler) bindChapter(c *gin.Context) (*chapterRequest, bool) {
	var req chapterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid body", "error": err.Error()})
		return nil, false
	}
	return &req, true
}

func (h *handler) listChapters(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	list, err := h.chapters.ListByStory(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *handler) getChapter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ch, err := h.chapters.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

func (h *handler) createChapter(c *gin.Context) {
	req, ok := h.bindChapter(c)
	if !ok {
		return
	}
	id, err := h.chapters.Create(c.Request.Context(), req.input())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chapter added", "id": id})
}

func (h *handler) updateChapter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := h.bindChapter(c)
	if !ok {
		return
	}
	if err := h.chapters.Update(c.Request.Context(), id, req.input()); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chapter updated"})
}

func (h *handler) deleteChapter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.chapters.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
