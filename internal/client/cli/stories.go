package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/storyku/internal/client/browse"
	"github.com/dmitrijs2005/storyku/internal/client/forms"
	"github.com/dmitrijs2005/storyku/internal/client/modal"
	"github.com/dmitrijs2005/storyku/internal/client/models"
)

var errCancelled = errors.New("cancelled")

func (a *App) render() {
	b := a.browser()
	p := b.View()
	if a.view == viewDashboard {
		a.println(renderDashboard(browse.Summarize(b.Records()), p, b.Criteria(), screenWidth()))
		return
	}
	a.println(renderList(p, b.Criteria(), screenWidth()))
}

// List fetches the stories and shows the management list.
func (a *App) List(ctx context.Context) error {
	a.view = viewList
	if err := a.reload(ctx); err != nil {
		return err
	}
	a.render()
	return nil
}

func (a *App) Dashboard(ctx context.Context) error {
	a.view = viewDashboard
	if err := a.reload(ctx); err != nil {
		return err
	}
	a.render()
	return nil
}

func (a *App) Reload(ctx context.Context) error {
	if err := a.reload(ctx); err != nil {
		return err
	}
	a.render()
	return nil
}

func (a *App) Search(ctx context.Context, query string) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}
	a.browser().SetSearch(strings.TrimSpace(query))
	a.render()
	return nil
}

// Filter sets category and status from "category=X status=Y" arguments, or
// asks for them when called without arguments. The dashboard only filters
// by category.
func (a *App) Filter(ctx context.Context, args []string) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}
	b := a.browser()
	c := b.Criteria()

	if len(args) == 0 {
		var err error
		if c, err = a.askCriteria(c); err != nil {
			return err
		}
	}

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			a.println("Usage: filter [category=<All|Financial|Technology|Health>] [status=<All|Draft|Publish>]")
			return nil
		}
		switch strings.ToLower(key) {
		case "category":
			category, ok := matchOption(value, append([]string{browse.CategoryAll}, models.Categories...))
			if !ok {
				a.println("Unknown category:", value)
				return nil
			}
			c.Category = category
		case "status":
			status, ok := matchOption(value, append([]string{"All"}, models.Statuses...))
			if !ok {
				a.println("Unknown status:", value)
				return nil
			}
			c.Status = status
		default:
			a.println("Unknown filter:", key)
			return nil
		}
	}

	if c.Category == browse.CategoryAll {
		c.Category = ""
	}
	if c.Status == "All" || a.view == viewDashboard {
		c.Status = ""
	}
	b.SetCriteria(c)
	a.render()
	return nil
}

func (a *App) askCriteria(c browse.Criteria) (browse.Criteria, error) {
	current := c.Category
	if current == "" {
		current = browse.CategoryAll
	}
	category, err := GetChoice(a.reader, "Category", append([]string{browse.CategoryAll}, models.Categories...), current, a.out)
	if err != nil {
		return c, err
	}
	c.Category = category

	if a.view == viewDashboard {
		return c, nil
	}

	current = c.Status
	if current == "" {
		current = "All"
	}
	status, err := GetChoice(a.reader, "Status", append([]string{"All"}, models.Statuses...), current, a.out)
	if err != nil {
		return c, err
	}
	c.Status = status
	return c, nil
}

func matchOption(v string, options []string) (string, bool) {
	for _, o := range options {
		if strings.EqualFold(o, v) {
			return o, true
		}
	}
	return "", false
}

func (a *App) Reset(ctx context.Context) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}
	a.browser().Reset()
	a.render()
	return nil
}

func (a *App) Next(ctx context.Context) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}
	a.browser().Next()
	a.render()
	return nil
}

func (a *App) Prev(ctx context.Context) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}
	a.browser().Prev()
	a.render()
	return nil
}

func (a *App) Page(ctx context.Context, n int) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}
	a.browser().GoTo(n)
	a.render()
	return nil
}

// Show prints the read-only story detail with its chapters.
func (a *App) Show(ctx context.Context, id int64) error {
	s, err := a.api.GetStory(ctx, id)
	if err != nil {
		return a.fail("load story", err)
	}
	chapters, err := a.api.ListChapters(ctx, id)
	if err != nil {
		return a.fail("load chapters", err)
	}

	coverURL := ""
	if s.HasCover() {
		coverURL = a.api.CoverURL(*s.CoverImage)
	}
	a.println(renderStory(s, chapters, coverURL, screenWidth()))
	return nil
}

// fillStoryForm walks the user through every field of f.
func (a *App) fillStoryForm(f *forms.StoryForm) error {
	var err error
	if f.Title, err = GetWithDefault(a.reader, "Title", f.Title, a.out); err != nil {
		return err
	}
	if f.Author, err = GetWithDefault(a.reader, "Author", f.Author, a.out); err != nil {
		return err
	}
	if f.Synopsis, err = GetWithDefault(a.reader, "Synopsis", f.Synopsis, a.out); err != nil {
		return err
	}
	if f.Category, err = GetChoice(a.reader, "Category", models.Categories, f.Category, a.out); err != nil {
		return err
	}
	if err := a.editTags(f); err != nil {
		return err
	}
	if f.Status, err = GetChoice(a.reader, "Status", models.Statuses, f.Status, a.out); err != nil {
		return err
	}

	coverPrompt := "Cover image path (empty for none)"
	if f.CurrentCover != "" {
		coverPrompt = fmt.Sprintf("Cover image path (empty keeps %s)", f.CurrentCover)
	}
	if f.CoverPath, err = GetWithDefault(a.reader, coverPrompt, f.CoverPath, a.out); err != nil {
		return err
	}
	return nil
}

// editTags reads tag commands until an empty line: a word adds a tag,
// "-tag" removes it and "?text" lists vocabulary suggestions.
func (a *App) editTags(f *forms.StoryForm) error {
	for {
		prompt := "Tags: " + strings.Join(f.Tags, ", ") +
			"\nType a tag to add, -tag to remove, ?text for suggestions, empty line to finish"
		v, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		switch {
		case v == "":
			return nil
		case strings.HasPrefix(v, "?"):
			s := f.Suggestions(strings.TrimPrefix(v, "?"))
			if len(s) == 0 {
				a.println("No suggestions")
			} else {
				a.println("Suggestions:", strings.Join(s, ", "))
			}
		case strings.HasPrefix(v, "-"):
			if !f.RemoveTag(strings.TrimSpace(strings.TrimPrefix(v, "-"))) {
				a.println("No such tag")
			}
		default:
			if err := f.AddTag(v); err != nil {
				a.println("Tag not added:", err)
			} else if s := f.Suggestions(v); len(s) > 0 && !slices.Contains(models.TagVocabulary, v) {
				a.println("Did you mean:", strings.Join(s, ", "))
			}
		}
	}
}

func (a *App) editStory(f *forms.StoryForm) error {
	return a.editForm("story", func() error { return a.fillStoryForm(f) }, f.Dirty, f.Validate)
}

func (a *App) Add(ctx context.Context) error {
	f := forms.NewStoryForm()
	if err := a.editStory(f); err != nil {
		return err
	}

	id, err := a.api.CreateStory(ctx, f.Input())
	if err != nil {
		return a.fail("save story", err)
	}
	a.notify(modal.KindSuccess, "Success", fmt.Sprintf("Story %d created", id))
	return a.reload(ctx)
}

func (a *App) Edit(ctx context.Context, id int64) error {
	s, err := a.api.GetStory(ctx, id)
	if err != nil {
		return a.fail("load story", err)
	}

	f := forms.EditStoryForm(s)
	if err := a.editStory(f); err != nil {
		return err
	}

	if err := a.api.UpdateStory(ctx, id, f.Input()); err != nil {
		return a.fail("update story", err)
	}
	a.notify(modal.KindSuccess, "Success", fmt.Sprintf("Story %d updated", id))
	return a.reload(ctx)
}

func (a *App) Delete(ctx context.Context, id int64) error {
	s, err := a.api.GetStory(ctx, id)
	if err != nil {
		return a.fail("load story", err)
	}

	ok, err := a.confirm("Delete story", fmt.Sprintf("Are you sure you want to delete %q?", s.Title))
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}

	if err := a.api.DeleteStory(ctx, id); err != nil {
		return a.fail("delete story", err)
	}
	a.notify(modal.KindSuccess, "Success", "Story deleted")
	return a.reload(ctx)
}
