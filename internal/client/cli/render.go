package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/storyku/internal/client/browse"
	"github.com/dmitrijs2005/storyku/internal/client/modal"
	"github.com/dmitrijs2005/storyku/internal/client/models"
	"golang.org/x/term"
)

const (
	defaultWidth = 100
	dateLayout   = "2006-01-02 15:04"
)

// termSize is a test seam for term.GetSize.
var termSize = term.GetSize

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	modalStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

var counterStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("57")).
	Padding(0, 2)

var kindColors = map[modal.Kind]lipgloss.Color{
	modal.KindSuccess: lipgloss.Color("42"),
	modal.KindError:   lipgloss.Color("196"),
	modal.KindInfo:    lipgloss.Color("39"),
}

func screenWidth() int {
	w, _, err := termSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

func truncateString(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}

func renderTable(columns []table.Column, rows []table.Row) string {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithStyles(tableStyles()),
		table.WithHeight(len(rows)+2),
	)
	return t.View()
}

func storyTable(stories []*models.Story, width int) string {
	// id, author, category, tags, status
	fixed := 6 + 18 + 12 + 22 + 9
	titleWidth := max(width-fixed-12, 12)

	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Title", Width: titleWidth},
		{Title: "Author", Width: 18},
		{Title: "Category", Width: 12},
		{Title: "Tags", Width: 22},
		{Title: "Status", Width: 9},
	}

	rows := make([]table.Row, 0, len(stories))
	for _, s := range stories {
		rows = append(rows, table.Row{
			strconv.FormatInt(s.ID, 10),
			truncateString(s.Title, titleWidth),
			truncateString(s.Author, 18),
			s.Category,
			truncateString(strings.Join(s.TagList(), ", "), 22),
			s.Status,
		})
	}
	return renderTable(columns, rows)
}

func chapterTable(chapters []*models.Chapter, width int) string {
	titleWidth := max(width-8-18-8, 12)
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Chapter", Width: titleWidth},
		{Title: "Last updated", Width: 18},
	}

	rows := make([]table.Row, 0, len(chapters))
	for _, c := range chapters {
		rows = append(rows, table.Row{
			strconv.FormatInt(c.ID, 10),
			truncateString(c.ChapterTitle, titleWidth),
			c.LastUpdated.Local().Format(dateLayout),
		})
	}
	return renderTable(columns, rows)
}

func pageFooter(p browse.Page) string {
	if p.Count == 0 {
		return mutedStyle.Render("No stories found.")
	}
	return mutedStyle.Render(fmt.Sprintf("Page %d of %d (%d stories)", p.Number, p.Count, p.Matched))
}

func criteriaLine(c browse.Criteria) string {
	category := c.Category
	if category == "" {
		category = browse.CategoryAll
	}
	status := c.Status
	if status == "" {
		status = "All"
	}
	line := fmt.Sprintf("Category: %s  Status: %s", category, status)
	if c.Search != "" {
		line += fmt.Sprintf("  Search: %q", c.Search)
	}
	return mutedStyle.Render(line)
}

func renderList(p browse.Page, c browse.Criteria, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Stories") + "\n")
	b.WriteString(criteriaLine(c) + "\n\n")
	if len(p.Items) > 0 {
		b.WriteString(storyTable(p.Items, width) + "\n")
	}
	b.WriteString(pageFooter(p))
	return b.String()
}

func categorySelector(selected string) string {
	if selected == "" {
		selected = browse.CategoryAll
	}
	opts := append([]string{browse.CategoryAll}, models.Categories...)
	parts := make([]string, len(opts))
	for i, o := range opts {
		if o == selected {
			parts[i] = "[" + o + "]"
		} else {
			parts[i] = o
		}
	}
	return strings.Join(parts, " | ")
}

func renderDashboard(sum browse.Summary, p browse.Page, c browse.Criteria, width int) string {
	counters := lipgloss.JoinHorizontal(lipgloss.Top,
		counterStyle.Render(fmt.Sprintf("Published\n%d", sum.Published)),
		" ",
		counterStyle.Render(fmt.Sprintf("Draft\n%d", sum.Draft)),
		" ",
		counterStyle.Render(fmt.Sprintf("Total\n%d", sum.Total)),
	)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Dashboard") + "\n")
	b.WriteString(counters + "\n\n")
	b.WriteString(categorySelector(c.Category) + "\n")
	if c.Search != "" {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Search: %q", c.Search)) + "\n")
	}
	b.WriteString("\n")
	if len(p.Items) > 0 {
		b.WriteString(storyTable(p.Items, width) + "\n")
	}
	b.WriteString(pageFooter(p))
	return b.String()
}

func renderStory(s *models.Story, chapters []*models.Chapter, coverURL string, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(s.Title) + "\n")
	fmt.Fprintf(&b, "Author:   %s\n", s.Author)
	fmt.Fprintf(&b, "Category: %s\n", s.Category)
	fmt.Fprintf(&b, "Status:   %s\n", s.Status)

	tags := s.TagList()
	if len(tags) == 0 {
		fmt.Fprintf(&b, "Tags:     %s\n", mutedStyle.Render("-"))
	} else {
		fmt.Fprintf(&b, "Tags:     %s\n", strings.Join(tags, ", "))
	}

	if s.HasCover() {
		fmt.Fprintf(&b, "Cover:    %s\n", coverURL)
	} else {
		fmt.Fprintf(&b, "Cover:    %s\n", mutedStyle.Render("No Cover"))
	}

	b.WriteString("\n")
	if strings.TrimSpace(s.Synopsis) == "" {
		b.WriteString(mutedStyle.Render("No synopsis.") + "\n")
	} else {
		b.WriteString(s.Synopsis + "\n")
	}

	b.WriteString("\n" + titleStyle.Render(fmt.Sprintf("Chapters (%d)", len(chapters))) + "\n")
	if len(chapters) > 0 {
		b.WriteString(chapterTable(chapters, width))
	} else {
		b.WriteString(mutedStyle.Render("No chapters yet."))
	}
	return b.String()
}

func renderChapter(c *models.Chapter) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(c.ChapterTitle) + "\n")
	b.WriteString(mutedStyle.Render("Last updated "+c.LastUpdated.Local().Format(dateLayout)) + "\n\n")
	b.WriteString(c.StoryChapter)
	return b.String()
}

func renderModal(m *modal.Machine) string {
	style := modalStyle
	if c, ok := kindColors[m.Kind()]; ok {
		style = style.BorderForeground(c)
	}
	body := m.Message()
	if m.Title() != "" {
		body = titleStyle.Render(m.Title()) + "\n" + body
	}
	return style.Render(body)
}
