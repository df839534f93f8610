package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/format"
)

// NoteLink is the in-app link of a note.
func NoteLink(host, shardID string, userID int64, guid string) string {
	return fmt.Sprintf("https://%s/shard/%s/nl/%d/%s", host, shardID, userID, guid)
}

// WebClientURL is the web client link of a note.
func WebClientURL(host, guid string) string {
	return fmt.Sprintf("https://%s/Home.action?#n=%s", host, guid)
}

// NoteView is everything ShowNote prints. Content is the converted text.
type NoteView struct {
	Note    domain.Note
	Host    string
	UserID  int64
	ShardID string
	Content string
}

// ShowNote prints a note with its links, metadata, reminders and content.
func ShowNote(w io.Writer, v NoteView) {
	n := v.Note

	Separator(w, "#", "URL")
	fmt.Fprintln(w, "NoteLink: "+NoteLink(v.Host, v.ShardID, v.UserID, n.GUID))
	fmt.Fprintln(w, "WebClientURL: "+WebClientURL(v.Host, n.GUID))

	Separator(w, "#", "TITLE")
	fmt.Fprintln(w, n.Title)

	Separator(w, "=", "META")
	fmt.Fprintln(w, "Notebook: "+n.NotebookName)
	fmt.Fprintln(w, "Created: "+format.PrintDate(n.Created))
	fmt.Fprintln(w, "Updated: "+format.PrintDate(n.Updated))
	if n.Attributes.SourceURL != "" {
		fmt.Fprintln(w, "sourceURL: "+n.Attributes.SourceURL)
	}
	if n.Attributes.Author != "" {
		fmt.Fprintln(w, "author: "+n.Attributes.Author)
	}

	Separator(w, "|", "REMINDERS")
	order := "None"
	if n.Attributes.ReminderOrder != 0 {
		order = fmt.Sprint(n.Attributes.ReminderOrder)
	}
	fmt.Fprintln(w, "Order: "+order)
	fmt.Fprintln(w, "Time: "+format.PrintDate(n.Attributes.ReminderTime))
	fmt.Fprintln(w, "Done: "+format.PrintDate(n.Attributes.ReminderDoneTime))

	Separator(w, "-", "CONTENT")
	if len(n.TagNames) > 0 {
		fmt.Fprintln(w, "Tags: "+strings.Join(n.TagNames, ", "))
	}
	fmt.Fprintln(w, v.Content)
}

const userColWidth = 17

// ShowUser prints the account; full adds quota and timezone.
func ShowUser(w io.Writer, u domain.User, full bool) {
	row := func(label, value string) {
		fmt.Fprintf(w, "%s: %s\n", ljust(label, userColWidth), value)
	}

	Separator(w, "#", "USER INFO")
	row("Username", u.Username)
	row("Name", u.Name)
	row("Email", u.Email)

	if full {
		row("Upload limit", fmt.Sprintf("%.2f MB", float64(u.Accounting.UploadLimit)/1024/1024))
		row("Upload limit end", format.PrintDate(u.Accounting.UploadLimitEnd))
		row("Timezone", u.Timezone)
	}
}

// PrintAbout prints the version banner shown without a command.
func PrintAbout(w io.Writer, version string) {
	fmt.Fprintln(w, "Version: "+version)
	fmt.Fprintln(w, "gnote - a command line client for Evernote.")
	fmt.Fprintln(w, "Use gnote --help to read documentation.")
}
