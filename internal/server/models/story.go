// Package models holds the records the server persists and returns as JSON.
package models

import (
	"slices"

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
)

// Story is one row of the stories table. CoverImage is nil when no file
// was ever uploaded and is then encoded as JSON null.
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

// TagList returns the stored tags as a list.
func (s *Story) TagList() []string {
	return tagx.Split(s.Tags)
}

func IsCategory(v string) bool { return slices.Contains(Categories, v) }

func IsStatus(v string) bool { return slices.Contains(Statuses, v) }
