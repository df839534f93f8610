package notes

import (
	"context"
	"strconv"
	"strings"

	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/format"
	"github.com/gnote-tools/cli/internal/query"
	"github.com/gnote-tools/cli/internal/ui"
	"github.com/gnote-tools/cli/internal/usage"
)

const (
	// lookupCount bounds the title search behind a note reference.
	lookupCount = 20

	notFoundMessage = "Notes have not been found."
)

// findNote resolves a note reference: a cached GUID, the number of a note
// in the last search, or words searched in note titles. Several title
// matches are offered for selection. The note is returned with its content.
func (d Deps) findNote(ctx context.Context, svc domain.NoteService, ref string) (*domain.Note, error) {
	ref = strings.TrimSpace(ref)

	guid, err := d.cachedNote(ref)
	if err != nil {
		return nil, err
	}

	if guid == "" {
		d.Progress.SetMessage("Searching notes...")
		words, err := query.Build(query.Criteria{Search: ref}, d.Location)
		if err != nil {
			d.Progress.Stop()
			return nil, usage.InvalidValue("%s", err.Error())
		}
		list, err := svc.FindNotes(ctx, domain.NoteFilter{Order: d.Settings.NoteSortOrder, Words: words}, lookupCount)
		d.Progress.Stop()
		if err != nil {
			return nil, d.Session.Check(err)
		}

		switch {
		case list.TotalNotes == 0 || len(list.Notes) == 0:
			return nil, usage.NotFound(notFoundMessage)
		case len(list.Notes) == 1:
			guid = list.Notes[0].GUID
		default:
			guid, err = d.selectNote(list)
			if err != nil {
				return nil, err
			}
		}
	}

	d.Progress.SetMessage("Loading note...")
	note, err := svc.GetNote(ctx, guid, true, false)
	d.Progress.Stop()
	if err != nil {
		return nil, d.Session.Check(err)
	}
	return note, nil
}

// cachedNote returns the GUID ref names in the cache, or "".
func (d Deps) cachedNote(ref string) (string, error) {
	note, err := d.Cache.Note(ref)
	if err != nil {
		return "", err
	}
	if note != nil {
		return note.GUID, nil
	}

	n, err := strconv.Atoi(ref)
	if err != nil {
		return "", nil
	}
	search, err := d.Cache.Search()
	if err != nil {
		return "", err
	}
	if search != nil && n >= 1 && n <= len(search.Notes) {
		return search.Notes[n-1].GUID, nil
	}
	return "", nil
}

func (d Deps) selectNote(list *domain.NotesMetadataList) (string, error) {
	labels := make([]string, len(list.Notes))
	for i, n := range list.Notes {
		labels[i] = format.PrintDate(n.Created) + "  " + n.Title
	}

	i, err := d.Terminal.Select(ui.FoundLine(list.TotalNotes), labels)
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(list.Notes) {
		return "", usage.Cancelled()
	}
	return list.Notes[i].GUID, nil
}

// loadDetails resolves the tag and notebook names of note for display.
func (d Deps) loadDetails(ctx context.Context, svc domain.NoteService, note *domain.Note) error {
	if len(note.TagNames) == 0 {
		for _, guid := range note.TagGUIDs {
			tag, err := svc.GetTag(ctx, guid)
			if err != nil {
				return d.Session.Check(err)
			}
			note.TagNames = append(note.TagNames, tag.Name)
		}
	}

	if note.NotebookName == "" && note.NotebookGUID != "" {
		nb, err := svc.GetNotebook(ctx, note.NotebookGUID)
		if err != nil {
			return d.Session.Check(err)
		}
		note.NotebookName = nb.Name
	}
	return nil
}
