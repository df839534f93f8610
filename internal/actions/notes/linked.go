package notes

import (
	"context"
	"strings"

	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/markup"
	"github.com/gnote-tools/cli/internal/prefs"
	"github.com/gnote-tools/cli/internal/usage"
)

// linkedNoteCount bounds the notes searched in a linked notebook.
const linkedNoteCount = 50

// linkedStore finds the linked notebook whose share name contains name and
// authenticates to the note store that holds it.
func (d Deps) linkedStore(ctx context.Context, name string) (domain.NoteService, *domain.SharedNotebook, error) {
	token, err := d.Session.Token()
	if err != nil {
		return nil, nil, err
	}
	svc := d.Session.Connect(token)

	d.Progress.SetMessage("Connecting to the linked notebook...")
	defer d.Progress.Stop()

	linked, err := svc.ListLinkedNotebooks(ctx)
	if err != nil {
		return nil, nil, d.Session.Check(err)
	}

	var nb *domain.LinkedNotebook
	for i := range linked {
		if strings.Contains(strings.ToLower(linked[i].ShareName), strings.ToLower(name)) {
			nb = &linked[i]
			break
		}
	}
	if nb == nil {
		return nil, nil, usage.NotFound("Error: could not find specified Linked Notebook")
	}

	auth, err := svc.Shared(nb.NoteStoreURL, token).AuthenticateToSharedNotebook(ctx, nb.ShareKey)
	if err != nil {
		return nil, nil, d.Session.Check(err)
	}
	shared := svc.Shared(nb.NoteStoreURL, auth.AuthenticationToken)

	sharedNotebook, err := shared.GetSharedNotebookByAuth(ctx)
	if err != nil {
		return nil, nil, err
	}
	d.Logger.Debug("linked: %s is notebook %s on %s", nb.ShareName, sharedNotebook.NotebookGUID, nb.NoteStoreURL)
	return shared, sharedNotebook, nil
}

func CreateLinked(ctx context.Context, app *domain.Application, req commands.CreateLinkedRequest) error {
	return createLinked(ctx, req, NewDeps(app))
}

func createLinked(ctx context.Context, req commands.CreateLinkedRequest, d Deps) error {
	shared, nb, err := d.linkedStore(ctx, req.Notebook)
	if err != nil {
		return err
	}

	note := domain.Note{Title: req.Title, Content: markup.Empty(), NotebookGUID: nb.NotebookGUID}
	d.Progress.SetMessage("Creating note...")
	_, err = shared.CreateNote(ctx, &note)
	d.Progress.Stop()
	if err != nil {
		return d.failed(err, "create note")
	}

	_, _ = d.Out.Println(d.Styler.Success("Note successfully created."))
	return nil
}

func EditLinked(ctx context.Context, app *domain.Application, req commands.EditLinkedRequest) error {
	return editLinked(ctx, req, NewDeps(app))
}

func editLinked(ctx context.Context, req commands.EditLinkedRequest, d Deps) error {
	p, err := prefs.Load(d.Cache)
	if err != nil {
		return err
	}

	shared, nb, err := d.linkedStore(ctx, req.Notebook)
	if err != nil {
		return err
	}

	list, err := shared.FindNotes(ctx, domain.NoteFilter{NotebookGUID: nb.NotebookGUID}, linkedNoteCount)
	if err != nil {
		return d.failed(err, "search notes")
	}
	if len(list.Notes) == 0 {
		return usage.NotFound("Error: Could not find any notes in the specified linked notebook.")
	}

	var candidates []domain.Note
	for _, n := range list.Notes {
		if strings.Contains(strings.ToLower(n.Title), strings.ToLower(req.Note)) {
			candidates = append(candidates, n)
		}
	}
	switch len(candidates) {
	case 0:
		return usage.NotFound("Error: Could not find specified note in the linked notebook.")
	case 1:
	default:
		for _, n := range candidates {
			_, _ = d.Out.Println(n.Title)
		}
		return usage.InvalidValue("Error: multiple notes match the specified note title.")
	}

	d.Progress.SetMessage("Loading note...")
	note, err := shared.GetNote(ctx, candidates[0].GUID, true, false)
	d.Progress.Stop()
	if err != nil {
		return d.failed(err, "load note")
	}

	if err := d.editText(ctx, shared, *note, draft{title: note.Title}, p, false); err != nil {
		return err
	}
	_, _ = d.Out.Println(d.Styler.Success("Note successfully saved."))
	return nil
}
