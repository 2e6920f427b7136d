// Package cli provides the interactive Storyku terminal client.
//
// App wires the API client, the browse state of the management list and the
// dashboard, and the confirmation machine. App.Run starts a line-oriented
// REPL; the cobra commands built by NewRootCommand expose the same screens
// as one-shot subcommands.
//
// Screens:
//   - list: management table, 10 stories per page, search and filters
//   - dashboard: published/draft counters and an 8-per-page grid with a
//     category selector
//   - show: story detail with its chapters
//
// Delete story, delete chapter and leaving a form with unsaved changes ask
// for confirmation first.
package cli
