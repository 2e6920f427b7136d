package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// execIface defines the command surface the REPL dispatches to.
// App satisfies it; tests provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Reload(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Filter(ctx context.Context, args []string) error
	Reset(ctx context.Context) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Page(ctx context.Context, n int) error
	Show(ctx context.Context, id int64) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Chapters(ctx context.Context, storyID int64) error
	Chapter(ctx context.Context, id int64) error
	AddChapter(ctx context.Context, storyID int64) error
	EditChapter(ctx context.Context, id int64) error
	DeleteChapter(ctx context.Context, id int64) error
}

const helpText = `Available commands:
  list | l                  management list (10 per page)
  dashboard | d             counters and story grid (8 per page)
  search [text]             filter by title/author; no text clears
  filter [category=C] [status=S]   set filters, interactive without args
  reset                     clear search and filters
  next | n, prev | p, page N
  reload                    fetch stories again
  show ID                   story detail with chapters
  add, edit ID, delete ID   manage stories
  chapters ID               chapters of story ID
  chapter ID                read a chapter
  addchapter STORY_ID, editchapter ID, deletechapter ID
  exit | quit`

// idArg parses the single numeric argument of a command.
func idArg(w io.Writer, cmd string, args []string) (int64, bool) {
	if len(args) != 1 {
		fmt.Fprintf(w, "Usage: %s <id>\n", cmd)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(w, "Invalid id %q\n", args[0])
		return 0, false
	}
	return id, true
}

// runREPL reads commands line by line from reader and dispatches them to a.
// Unknown commands are reported back to the user. The loop exits on EOF or
// when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures.
func runREPL(ctx context.Context, a execIface, w io.Writer, promptFn func() string, reader *bufio.Reader) {
	withID := func(cmd string, args []string, fn func(context.Context, int64) error) {
		if id, ok := idArg(w, cmd, args); ok {
			_ = fn(ctx, id)
		}
	}

	for {
		fmt.Fprintf(w, "storyku %s> ", promptFn())
		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "reload":
			_ = a.Reload(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "filter":
			_ = a.Filter(ctx, args)

		case "reset":
			_ = a.Reset(ctx)

		case "n", "next":
			_ = a.Next(ctx)

		case "p", "prev":
			_ = a.Prev(ctx)

		case "page":
			if len(args) != 1 {
				fmt.Fprintln(w, "Usage: page <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintf(w, "Invalid page %q\n", args[0])
				continue
			}
			_ = a.Page(ctx, n)

		case "show":
			withID(cmd, args, a.Show)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			withID(cmd, args, a.Edit)

		case "delete":
			withID(cmd, args, a.Delete)

		case "chapters":
			withID(cmd, args, a.Chapters)

		case "chapter":
			withID(cmd, args, a.Chapter)

		case "addchapter":
			withID(cmd, args, a.AddChapter)

		case "editchapter":
			withID(cmd, args, a.EditChapter)

		case "deletechapter":
			withID(cmd, args, a.DeleteChapter)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
