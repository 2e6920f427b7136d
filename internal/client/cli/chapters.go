package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storyku/internal/client/forms"
	"github.com/dmitrijs2005/storyku/internal/client/modal"
)

func (a *App) Chapters(ctx context.Context, storyID int64) error {
	chapters, err := a.api.ListChapters(ctx, storyID)
	if err != nil {
		return a.fail("load chapters", err)
	}
	if len(chapters) == 0 {
		a.println("No chapters yet.")
		return nil
	}
	a.println(chapterTable(chapters, screenWidth()))
	return nil
}

func (a *App) Chapter(ctx context.Context, id int64) error {
	c, err := a.api.GetChapter(ctx, id)
	if err != nil {
		return a.fail("load chapter", err)
	}
	a.println(renderChapter(c))
	return nil
}

func (a *App) fillChapterForm(f *forms.ChapterForm) error {
	var err error
	if f.ChapterTitle, err = GetWithDefault(a.reader, "Chapter title", f.ChapterTitle, a.out); err != nil {
		return err
	}

	prompt := "Chapter content"
	if f.StoryChapter != "" {
		prompt = "Chapter content (finish right away to keep the current text)"
	}
	body, err := GetMultiline(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if body != "" {
		f.StoryChapter = body
	}
	return nil
}

func (a *App) editChapter(f *forms.ChapterForm) error {
	return a.editForm("chapter", func() error { return a.fillChapterForm(f) }, f.Dirty, f.Validate)
}

func (a *App) AddChapter(ctx context.Context, storyID int64) error {
	s, err := a.api.GetStory(ctx, storyID)
	if err != nil {
		return a.fail("load story", err)
	}
	a.println(titleStyle.Render("New chapter for " + s.Title))

	f := forms.NewChapterForm(storyID)
	if err := a.editChapter(f); err != nil {
		return err
	}

	id, err := a.api.CreateChapter(ctx, f.Input())
	if err != nil {
		return a.fail("save chapter", err)
	}
	a.notify(modal.KindSuccess, "Success", fmt.Sprintf("Chapter %d added", id))
	return nil
}

func (a *App) EditChapter(ctx context.Context, id int64) error {
	c, err := a.api.GetChapter(ctx, id)
	if err != nil {
		return a.fail("load chapter", err)
	}

	f := forms.EditChapterForm(c)
	if err := a.editChapter(f); err != nil {
		return err
	}

	if err := a.api.UpdateChapter(ctx, id, f.Input()); err != nil {
		return a.fail("update chapter", err)
	}
	a.notify(modal.KindSuccess, "Success", "Chapter updated")
	return nil
}

func (a *App) DeleteChapter(ctx context.Context, id int64) error {
	c, err := a.api.GetChapter(ctx, id)
	if err != nil {
		return a.fail("load chapter", err)
	}

	ok, err := a.confirm("Delete chapter", fmt.Sprintf("Are you sure you want to delete %q?", c.ChapterTitle))
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}

	if err := a.api.DeleteChapter(ctx, id); err != nil {
		return a.fail("delete chapter", err)
	}
	a.notify(modal.KindSuccess, "Success", "Chapter deleted")
	return nil
}
