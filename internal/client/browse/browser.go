package browse

import "github.com/dmitrijs2005/storyku/internal/client/models"

// Browser keeps the loaded collection together with the criteria and page
// of one screen. Changing criteria or reloading goes back to page 1.
type Browser struct {
	records  []*models.Story
	criteria Criteria
	page     int
	pageSize int
}

func NewBrowser(pageSize int) *Browser {
	return &Browser{pageSize: pageSize, page: 1}
}

func (b *Browser) Load(records []*models.Story) {
	b.records = records
	b.page = 1
}

func (b *Browser) Records() []*models.Story { return b.records }
func (b *Browser) Criteria() Criteria       { return b.criteria }

func (b *Browser) SetCriteria(c Criteria) {
	b.criteria = c
	b.page = 1
}

func (b *Browser) SetSearch(q string) {
	c := b.criteria
	c.Search = q
	b.SetCriteria(c)
}

func (b *Browser) SetCategory(category string) {
	c := b.criteria
	c.Category = category
	b.SetCriteria(c)
}

func (b *Browser) SetStatus(status string) {
	c := b.criteria
	c.Status = status
	b.SetCriteria(c)
}

func (b *Browser) Reset() {
	b.SetCriteria(Criteria{})
}

// View computes the current page and clamps the stored page number to it.
func (b *Browser) View() Page {
	p := Apply(b.records, b.criteria, b.page, b.pageSize)
	if p.Number > 0 {
		b.page = p.Number
	}
	return p
}

func (b *Browser) GoTo(page int) Page {
	b.page = page
	return b.View()
}

func (b *Browser) Next() Page {
	return b.GoTo(b.page + 1)
}

func (b *Browser) Prev() Page {
	return b.GoTo(b.page - 1)
}
