package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/storyku/internal/client/api"
	"github.com/dmitrijs2005/storyku/internal/client/browse"
	"github.com/dmitrijs2005/storyku/internal/client/config"
	"github.com/dmitrijs2005/storyku/internal/client/modal"
)

type view string

const (
	viewList      view = "list"
	viewDashboard view = "dashboard"
)

type App struct {
	config    *config.Config
	api       api.Client
	reader    *bufio.Reader
	out       io.Writer
	list      *browse.Browser
	dashboard *browse.Browser
	modal     *modal.Machine
	view      view
	loaded    bool
}

func NewApp(c *config.Config) *App {
	return newApp(c, api.NewHTTPClient(c.ServerURL, c.RequestTimeout), os.Stdin, os.Stdout)
}

func newApp(c *config.Config, client api.Client, in io.Reader, out io.Writer) *App {
	return &App{
		config:    c,
		api:       client,
		reader:    bufio.NewReader(in),
		out:       out,
		list:      browse.NewBrowser(browse.ListPageSize),
		dashboard: browse.NewBrowser(browse.DashboardPageSize),
		modal:     modal.New(),
		view:      viewList,
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) prompt() string {
	return string(a.view)
}

// Run pings the server and starts the REPL. It returns when the user exits
// or input ends.
func (a *App) Run(ctx context.Context) {
	a.println("Storyku CLI (type 'help' for commands)")

	pingCtx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	err := a.api.Ping(pingCtx)
	cancel()
	if err != nil {
		_ = a.fail("reach the server at "+a.config.ServerURL, err)
	}

	runREPL(ctx, a, a.out, a.prompt, a.reader)
}

func (a *App) browser() *browse.Browser {
	if a.view == viewDashboard {
		return a.dashboard
	}
	return a.list
}

// reload fetches all stories and resets both screens to their first page.
func (a *App) reload(ctx context.Context) error {
	stories, err := a.api.ListStories(ctx)
	if err != nil {
		return a.fail("load stories", err)
	}
	a.list.Load(stories)
	a.dashboard.Load(stories)
	a.loaded = true
	return nil
}

func (a *App) ensureLoaded(ctx context.Context) error {
	if a.loaded {
		return nil
	}
	return a.reload(ctx)
}

// notify shows an info message through the modal machine.
func (a *App) notify(kind modal.Kind, title, message string) {
	if err := a.modal.Inform(kind, title, message); err != nil {
		a.println(message)
		return
	}
	a.println(renderModal(a.modal))
	_ = a.modal.Dismiss()
}

func (a *App) fail(action string, err error) error {
	a.notify(modal.KindError, "Error", fmt.Sprintf("Failed to %s: %v", action, err))
	return err
}

// confirm asks a yes/no question through the modal machine and reports
// whether the user confirmed. Read errors count as cancel.
func (a *App) confirm(title, message string) (bool, error) {
	if err := a.modal.Ask(title, message); err != nil {
		return false, err
	}
	a.println(renderModal(a.modal))

	yes, err := GetYesNo(a.reader, "Confirm?", a.out)
	if err != nil || !yes {
		_, cerr := a.modal.Cancel()
		return false, errors.Join(err, cerr)
	}

	outcome, err := a.modal.Confirm()
	return outcome == modal.Confirmed, err
}

type formAction int

const (
	formSave formAction = iota
	formLeave
	formResume
)

// closeForm asks whether to save the form. Leaving a form with unsaved
// changes has to be confirmed; refusing to leave resumes editing.
func (a *App) closeForm(what string, dirty bool) (formAction, error) {
	save, err := GetYesNo(a.reader, "Save "+what+"?", a.out)
	if err != nil {
		return formLeave, err
	}
	if save {
		return formSave, nil
	}
	if !dirty {
		return formLeave, nil
	}

	leave, err := a.confirm("Unsaved changes", "Leave without saving this "+what+"?")
	if err != nil {
		return formLeave, err
	}
	if leave {
		return formLeave, nil
	}
	a.println("Back to the " + what + " form")
	return formResume, nil
}

// editForm runs fill until the user saves valid data or leaves the form.
// Every pass starts from the values entered so far.
func (a *App) editForm(what string, fill func() error, dirty func() bool, validate func() error) error {
	for {
		if err := fill(); err != nil {
			return err
		}

		action, err := a.closeForm(what, dirty())
		if err != nil {
			return err
		}
		switch action {
		case formLeave:
			return errCancelled
		case formResume:
			continue
		}

		if err := validate(); err != nil {
			a.notify(modal.KindError, "Error", err.Error())
			continue
		}
		return nil
	}
}
