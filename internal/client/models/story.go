// Package models defines the story and chapter records as the client sees
// them on the wire.
package models

import (
	"time"

	"github.com/dmitrijs2005/storyku/internal/tagx"
)

const (
	CategoryFinancial  = "Financial"
	CategoryTechnology = "Technology"
	CategoryHealth     = "Health"

	StatusDraft   = "Draft"
	StatusPublish = "Publish"
)

var (
	Categories = []string{CategoryFinancial, CategoryTechnology, CategoryHealth}
	Statuses   = []string{StatusDraft, StatusPublish}

	// TagVocabulary feeds tag suggestions in the story form.
	TagVocabulary = []string{
		"Fiction", "Non-Fiction", "Romance", "Fantasy", "Sci-Fi", "Mystery",
		"Horror", "Teen", "Comedy", "Drama", "Action",
	}
)

type Story struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Author     string  `json:"author"`
	Synopsis   string  `json:"synopsis"`
	Category   string  `json:"category"`
	CoverImage *string `json:"cover_image"`
	Tags       string  `json:"tags"`
	Status     string  `json:"status"`
}

func (s *Story) TagList() []string {
	return tagx.Split(s.Tags)
}

// HasCover reports whether a cover file name is set.
func (s *Story) HasCover() bool {
	return s.CoverImage != nil && *s.CoverImage != ""
}

type Chapter struct {
	ID           int64     `json:"id"`
	StoryID      int64     `json:"story_id"`
	ChapterTitle string    `json:"chapter_title"`
	StoryChapter string    `json:"story_chapter"`
	LastUpdated  time.Time `json:"last_updated"`
}
