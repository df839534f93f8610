package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/format"
	"github.com/gnote-tools/cli/internal/ui/style"
)

// ListItem is one line of a listing. Notes carry dates; notebooks and tags
// do not.
type ListItem struct {
	GUID     string
	Title    string
	Dated    bool
	Created  int64
	Updated  int64
	Notebook string
	Tags     []string
	URL      string
}

// ListOptions select the optional columns.
type ListOptions struct {
	ShowGUID     bool
	ShowNotebook bool
	ShowTags     bool
	ShowURL      bool
}

// Separator prints a line of symbol around title, 40 columns wide, or a
// plain rule followed by a blank line when title is empty.
func Separator(w io.Writer, symbol, title string) {
	const size = 40
	if title == "" {
		fmt.Fprintln(w, style.Header(strings.Repeat(symbol, size))+"\n")
		return
	}
	left := (size - len(title) + 2) / 2
	right := max(left-(len(title)+1)%2, 0)
	line := strings.Repeat(symbol, max(left, 0)) + " " + title + " " + strings.Repeat(symbol, right)
	fmt.Fprintln(w, style.Header(line))
}

// ItemLine renders item number key (1-based) as the list shows it.
func ItemLine(key int, item ListItem, opts ListOptions) string {
	var b strings.Builder

	if opts.ShowGUID && item.GUID != "" {
		b.WriteString(item.GUID)
	} else {
		b.WriteString(rjust(strconv.Itoa(key), 3))
	}
	b.WriteString(" : ")

	if item.Dated {
		b.WriteString(style.Muted(ljust(format.PrintDate(item.Created), 11)))
		b.WriteString(style.Muted(ljust(format.PrintDate(item.Updated), 11)))
	}
	if opts.ShowNotebook {
		b.WriteString(ljust(item.Notebook, 18))
	}
	b.WriteString(item.Title)
	if opts.ShowTags {
		for _, tag := range item.Tags {
			b.WriteString(" #" + tag)
		}
	}
	if opts.ShowURL && item.URL != "" {
		b.WriteString(" >>> " + item.URL)
	}
	return b.String()
}

// FoundLine is the "Found N items" header of a listing.
func FoundLine(total int) string {
	if total == 1 {
		return "Found 1 item"
	}
	return fmt.Sprintf("Found %d items", total)
}

// PrintList prints items under an optional title.
func PrintList(w io.Writer, title string, items []ListItem, opts ListOptions) {
	if title != "" {
		Separator(w, "=", title)
	}
	fmt.Fprintln(w, FoundLine(len(items)))
	for i, item := range items {
		fmt.Fprintln(w, ItemLine(i+1, item, opts))
	}
}

// SearchResult prints the search request followed by the notes found.
func SearchResult(w io.Writer, request string, items []ListItem, opts ListOptions) {
	fmt.Fprintln(w, "Search request: "+request)
	PrintList(w, "", items, opts)
}

// NoteItems converts notes to list items. webURL builds the web link of a
// note; nil leaves URL empty.
func NoteItems(notes []domain.Note, webURL func(guid string) string) []ListItem {
	items := make([]ListItem, 0, len(notes))
	for _, n := range notes {
		item := ListItem{
			GUID:     n.GUID,
			Title:    n.Title,
			Dated:    true,
			Created:  n.Created,
			Updated:  n.Updated,
			Notebook: n.NotebookName,
			Tags:     n.TagGUIDs,
		}
		if len(n.TagNames) > 0 {
			item.Tags = n.TagNames
		}
		if webURL != nil {
			item.URL = webURL(n.GUID)
		}
		items = append(items, item)
	}
	return items
}

// NotebookItems lists notebooks by name, then linked notebooks by share name.
func NotebookItems(notebooks []domain.Notebook, linked []domain.LinkedNotebook) []ListItem {
	items := make([]ListItem, 0, len(notebooks)+len(linked))
	for _, nb := range notebooks {
		items = append(items, ListItem{GUID: nb.GUID, Title: nb.Name})
	}
	for _, nb := range linked {
		items = append(items, ListItem{GUID: nb.GUID, Title: nb.ShareName})
	}
	return items
}

// TagItems lists tags by name.
func TagItems(tags []domain.Tag) []ListItem {
	items := make([]ListItem, 0, len(tags))
	for _, t := range tags {
		items = append(items, ListItem{GUID: t.GUID, Title: t.Name})
	}
	return items
}

func rjust(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func ljust(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
