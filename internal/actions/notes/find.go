package notes

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/query"
	"github.com/gnote-tools/cli/internal/ui"
	"github.com/gnote-tools/cli/internal/usage"
)

const (
	// DefaultFindCount is the number of notes find shows without --count.
	DefaultFindCount = 20

	// maxUserNotes is the service limit on notes per account.
	maxUserNotes = 100000
)

func Find(ctx context.Context, app *domain.Application, req commands.FindRequest) error {
	return find(ctx, req, NewDeps(app))
}

func find(ctx context.Context, req commands.FindRequest, d Deps) error {
	svc, err := d.Session.Service()
	if err != nil {
		return err
	}

	words, err := query.Build(query.Criteria{
		Search:          req.Search,
		Tags:            req.Tags,
		Notebook:        req.Notebook,
		Date:            req.Date,
		ExactEntry:      req.ExactEntry,
		ContentSearch:   req.ContentSearch,
		IgnoreCompleted: req.IgnoreCompleted,
		RemindersOnly:   req.RemindersOnly,
	}, d.Location)
	if err != nil {
		return usage.InvalidValue("%s", err.Error())
	}

	count := req.Count
	if count <= 0 {
		count = DefaultFindCount
	}
	filter := domain.NoteFilter{Order: d.Settings.NoteSortOrder, Words: words, Inactive: req.DeletedOnly}
	if req.Search == "*" {
		filter.Order = domain.SortCreated
	}
	d.Logger.Debug("find: %q count=%d", words, count)

	d.Progress.SetMessage("Searching notes...")
	list, err := svc.FindNotes(ctx, filter, count)
	d.Progress.Stop()
	if err != nil {
		return d.failed(err, "search notes")
	}
	if list.TotalNotes == 0 || len(list.Notes) == 0 {
		return usage.NotFound(notFoundMessage)
	}

	if err := d.Cache.SetSearch(domain.SearchResult{Request: words, TotalNotes: list.TotalNotes, Notes: list.Notes}); err != nil {
		return err
	}
	for _, n := range list.Notes {
		d.remember(n)
	}

	notes := list.Notes
	if req.WithNotebook {
		if err := d.notebookNames(ctx, svc, notes); err != nil {
			return err
		}
	}
	if req.WithTags {
		if err := d.tagNames(ctx, svc, notes); err != nil {
			return err
		}
	}

	var webURL func(string) string
	if req.WithURL {
		webURL = func(guid string) string { return ui.WebClientURL(d.Host, guid) }
	}

	var b strings.Builder
	ui.SearchResult(&b, words, ui.NoteItems(notes, webURL), ui.ListOptions{
		ShowGUID:     req.GUID,
		ShowNotebook: req.WithNotebook,
		ShowTags:     req.WithTags,
		ShowURL:      req.WithURL,
	})
	d.Out.Pager(b.String())
	return nil
}

func (d Deps) notebookNames(ctx context.Context, svc domain.NoteService, notes []domain.Note) error {
	names := map[string]string{}
	for i, n := range notes {
		name, ok := names[n.NotebookGUID]
		if !ok {
			nb, err := svc.GetNotebook(ctx, n.NotebookGUID)
			if err != nil {
				return d.Session.Check(err)
			}
			name = nb.Name
			names[n.NotebookGUID] = name
		}
		notes[i].NotebookName = name
	}
	return nil
}

func (d Deps) tagNames(ctx context.Context, svc domain.NoteService, notes []domain.Note) error {
	tags, err := svc.ListTags(ctx)
	if err != nil {
		return d.Session.Check(err)
	}
	names := make(map[string]string, len(tags))
	for _, t := range tags {
		names[t.GUID] = t.Name
	}

	for i, n := range notes {
		if len(n.TagNames) > 0 {
			continue
		}
		for _, guid := range n.TagGUIDs {
			if name, ok := names[guid]; ok {
				notes[i].TagNames = append(notes[i].TagNames, name)
			}
		}
	}
	return nil
}

func Dedup(ctx context.Context, app *domain.Application, req commands.DedupRequest) error {
	return dedup(ctx, req, NewDeps(app))
}

// dedup removes notes with the same title and content, keeping the last of
// each group. Candidates are grouped by metadata first so only they need a
// content fetch.
func dedup(ctx context.Context, req commands.DedupRequest, d Deps) error {
	svc, err := d.Session.Service()
	if err != nil {
		return err
	}

	words, err := query.Build(query.Criteria{Notebook: req.Notebook}, d.Location)
	if err != nil {
		return usage.InvalidValue("%s", err.Error())
	}

	d.Progress.SetMessage("Retrieving metadata...")
	list, err := svc.FindNotes(ctx, domain.NoteFilter{Order: d.Settings.NoteSortOrder, Words: words}, maxUserNotes)
	d.Progress.Stop()
	if err != nil {
		return d.failed(err, "search notes")
	}

	candidates, _ := groupNotes(list.Notes, func(n domain.Note) (string, error) {
		mime := n.LargestResourceMime
		if mime == "" {
			mime = "None"
		}
		return fmt.Sprintf("%s (%d) with %s (%d)", n.Title, n.ContentLength, mime, n.LargestResourceSize), nil
	})
	d.Logger.Debug("dedup: %d notes, %d candidate groups", len(list.Notes), len(candidates))

	var suspects []domain.Note
	for _, group := range candidates {
		suspects = append(suspects, group...)
	}

	d.Progress.SetMessage("Retrieving content...")
	duplicates, err := groupNotes(suspects, func(n domain.Note) (string, error) {
		content, err := svc.GetNoteContent(ctx, n.GUID)
		if err != nil {
			return "", d.Session.Check(err)
		}
		sum := md5.Sum([]byte(content))
		return hex.EncodeToString(sum[:]) + " " + n.Title, nil
	})
	d.Progress.Stop()
	if err != nil {
		return err
	}

	removed := 0
	for _, group := range duplicates {
		for _, n := range group[:len(group)-1] {
			d.Progress.SetMessage("Removing duplicates...")
			err := svc.DeleteNote(ctx, n.GUID)
			d.Progress.Stop()
			if err != nil {
				return d.failed(err, "delete note")
			}
			d.Logger.Debug("dedup: deleted %q (%s)", n.Title, n.GUID)
			removed++
		}
	}

	_, _ = d.Out.Printf("Removed %d duplicates within %d total notes\n", removed, len(list.Notes))
	return nil
}

// groupNotes returns the groups of more than one note sharing a key, in
// order of first appearance.
func groupNotes(notes []domain.Note, key func(domain.Note) (string, error)) ([][]domain.Note, error) {
	var order []string
	byKey := map[string][]domain.Note{}
	for _, n := range notes {
		k, err := key(n)
		if err != nil {
			return nil, err
		}
		if _, ok := byKey[k]; !ok {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], n)
	}

	var groups [][]domain.Note
	for _, k := range order {
		if len(byKey[k]) > 1 {
			groups = append(groups, byKey[k])
		}
	}
	return groups, nil
}
