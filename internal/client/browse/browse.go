// Package browse derives the visible slice of the story collection from the
// current search text, filters and page number. Nothing here talks to the
// server or draws anything.
package browse

import (
	"strings"

	"github.com/dmitrijs2005/storyku/internal/client/models"
)

const (
	DashboardPageSize = 8
	ListPageSize      = 10

	// CategoryAll is the selector value meaning "no category filter".
	CategoryAll = "All"
)

// Criteria are the active filters. Empty fields do not constrain.
type Criteria struct {
	Search   string
	Category string
	Status   string
}

func (c Criteria) match(s *models.Story) bool {
	if c.Category != "" && c.Category != CategoryAll && s.Category != c.Category {
		return false
	}
	if c.Status != "" && s.Status != c.Status {
		return false
	}
	if c.Search == "" {
		return true
	}
	q := strings.ToLower(c.Search)
	return strings.Contains(strings.ToLower(s.Title), q) || strings.Contains(strings.ToLower(s.Author), q)
}

// Page is one window over the filtered records.
type Page struct {
	Items []*models.Story
	// Number is the 1-based page shown, 0 when nothing matched.
	Number int
	Count  int
	// Matched is the number of records that passed the filters.
	Matched int
}

// Apply filters records, keeping their order, and cuts out the requested
// page. The page number is clamped to [1, Count].
func Apply(records []*models.Story, c Criteria, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}

	filtered := make([]*models.Story, 0, len(records))
	for _, s := range records {
		if c.match(s) {
			filtered = append(filtered, s)
		}
	}

	p := Page{Matched: len(filtered), Items: []*models.Story{}}
	if len(filtered) == 0 {
		return p
	}

	p.Count = (len(filtered) + pageSize - 1) / pageSize
	p.Number = min(max(page, 1), p.Count)

	start := (p.Number - 1) * pageSize
	end := min(start+pageSize, len(filtered))
	p.Items = filtered[start:end]
	return p
}

// Summary holds the dashboard counters.
type Summary struct {
	Published int
	Draft     int
	Total     int
}

func Summarize(records []*models.Story) Summary {
	var s Summary
	for _, r := range records {
		switch r.Status {
		case models.StatusPublish:
			s.Published++
		case models.StatusDraft:
			s.Draft++
		}
	}
	s.Total = len(records)
	return s
}
