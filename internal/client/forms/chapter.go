package forms

import (
	"strings"

	"github.com/dmitrijs2005/storyku/internal/client/api"
	"github.com/dmitrijs2005/storyku/internal/client/models"
)

type ChapterForm struct {
	StoryID      int64
	ChapterTitle string
	StoryChapter string

	initialTitle string
	initialBody  string
}

func NewChapterForm(storyID int64) *ChapterForm {
	return &ChapterForm{StoryID: storyID}
}

func EditChapterForm(c *models.Chapter) *ChapterForm {
	return &ChapterForm{
		StoryID:      c.StoryID,
		ChapterTitle: c.ChapterTitle,
		StoryChapter: c.StoryChapter,
		initialTitle: c.ChapterTitle,
		initialBody:  c.StoryChapter,
	}
}

// Validate requires both a title and some content.
func (f *ChapterForm) Validate() error {
	if strings.TrimSpace(f.ChapterTitle) == "" || strings.TrimSpace(f.StoryChapter) == "" {
		return ErrMissingData
	}
	return nil
}

func (f *ChapterForm) Dirty() bool {
	return f.ChapterTitle != f.initialTitle || f.StoryChapter != f.initialBody
}

func (f *ChapterForm) Input() api.ChapterInput {
	return api.ChapterInput{
		StoryID:      f.StoryID,
		ChapterTitle: strings.TrimSpace(f.ChapterTitle),
		StoryChapter: f.StoryChapter,
	}
}
