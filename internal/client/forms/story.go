// Package forms holds the editable state of the story and chapter forms:
// field values, tag entry, validation and unsaved-change tracking.
package forms

import (
	"errors"
	"slices"
	"strings"

	"github.com/dmitrijs2005/storyku/internal/client/api"
	"github.com/dmitrijs2005/storyku/internal/client/models"
	"github.com/dmitrijs2005/storyku/internal/tagx"
)

// ErrMissingData is returned when a required field is blank.
var ErrMissingData = errors.New("Missing Data")

var (
	ErrEmptyTag     = errors.New("tag is empty")
	ErrDuplicateTag = errors.New("tag already added")
	ErrTagSeparator = errors.New("tags cannot contain commas")
)

type storyFields struct {
	Title     string
	Author    string
	Synopsis  string
	Category  string
	Status    string
	CoverPath string
	Tags      []string
}

type StoryForm struct {
	storyFields
	// CurrentCover is the cover already stored for an edited story.
	CurrentCover string

	initial storyFields
}

func NewStoryForm() *StoryForm {
	f := &StoryForm{}
	f.Category = models.CategoryFinancial
	f.Status = models.StatusDraft
	f.Tags = []string{}
	f.snapshot()
	return f
}

// EditStoryForm prefills the form from a stored story.
func EditStoryForm(s *models.Story) *StoryForm {
	f := &StoryForm{}
	f.Title = s.Title
	f.Author = s.Author
	f.Synopsis = s.Synopsis
	f.Category = s.Category
	f.Status = s.Status
	f.Tags = s.TagList()
	if s.HasCover() {
		f.CurrentCover = *s.CoverImage
	}
	f.snapshot()
	return f
}

func (f *StoryForm) snapshot() {
	f.initial = f.storyFields
	f.initial.Tags = slices.Clone(f.Tags)
}

func (f *StoryForm) Validate() error {
	if strings.TrimSpace(f.Title) == "" || strings.TrimSpace(f.Author) == "" {
		return ErrMissingData
	}
	return nil
}

// AddTag appends a trimmed tag. Tags are stored comma-joined, so a comma
// inside a tag is refused. Duplicates are matched case-insensitively.
func (f *StoryForm) AddTag(tag string) error {
	tag = strings.TrimSpace(tag)
	switch {
	case tag == "":
		return ErrEmptyTag
	case strings.Contains(tag, tagx.Separator):
		return ErrTagSeparator
	case tagx.Contains(f.Tags, tag):
		return ErrDuplicateTag
	}
	f.Tags = append(f.Tags, tag)
	return nil
}

func (f *StoryForm) RemoveTag(tag string) bool {
	i := slices.Index(f.Tags, tag)
	if i < 0 {
		return false
	}
	f.Tags = slices.Delete(f.Tags, i, i+1)
	return true
}

// Suggestions lists vocabulary tags containing input, case-insensitively,
// that are not on the story yet.
func (f *StoryForm) Suggestions(input string) []string {
	q := strings.ToLower(strings.TrimSpace(input))
	out := []string{}
	if q == "" {
		return out
	}
	for _, t := range models.TagVocabulary {
		if strings.Contains(strings.ToLower(t), q) && !tagx.Contains(f.Tags, t) {
			out = append(out, t)
		}
	}
	return out
}

// Dirty reports unsaved changes since the form was opened.
func (f *StoryForm) Dirty() bool {
	a, b := f.storyFields, f.initial
	return a.Title != b.Title ||
		a.Author != b.Author ||
		a.Synopsis != b.Synopsis ||
		a.Category != b.Category ||
		a.Status != b.Status ||
		a.CoverPath != b.CoverPath ||
		!slices.Equal(a.Tags, b.Tags)
}

func (f *StoryForm) Input() api.StoryInput {
	return api.StoryInput{
		Title:     strings.TrimSpace(f.Title),
		Author:    strings.TrimSpace(f.Author),
		Synopsis:  f.Synopsis,
		Category:  f.Category,
		Tags:      slices.Clone(f.Tags),
		Status:    f.Status,
		CoverPath: f.CoverPath,
	}
}
