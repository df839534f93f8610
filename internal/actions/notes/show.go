package notes

import (
	"context"
	"fmt"
	"strings"

	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/markup"
	"github.com/gnote-tools/cli/internal/ui"
	"github.com/gnote-tools/cli/internal/usage"
)

func Show(ctx context.Context, app *domain.Application, req commands.ShowRequest) error {
	return show(ctx, req, NewDeps(app))
}

func show(ctx context.Context, req commands.ShowRequest, d Deps) error {
	svc, err := d.Session.Service()
	if err != nil {
		return err
	}

	note, err := d.findNote(ctx, svc, req.Note)
	if err != nil {
		return err
	}

	if req.Raw {
		text, err := markup.ENMLToText(note.Content, markup.Pre)
		if err != nil {
			return err
		}
		_, _ = d.Out.Println(text)
		return nil
	}

	view, err := d.noteView(ctx, svc, note)
	if err != nil {
		return err
	}
	var b strings.Builder
	ui.ShowNote(&b, view)
	d.Out.Pager(b.String())
	return nil
}

// noteView prepares note for ui.ShowNote.
func (d Deps) noteView(ctx context.Context, svc domain.NoteService, note *domain.Note) (ui.NoteView, error) {
	if err := d.loadDetails(ctx, svc, note); err != nil {
		return ui.NoteView{}, err
	}

	text, err := markup.ENMLToText(note.Content, markup.Markdown)
	if err != nil {
		return ui.NoteView{}, err
	}
	if d.Render != nil {
		text = d.Render(text)
	}

	user, err := d.Session.User()
	if err != nil {
		return ui.NoteView{}, err
	}
	return ui.NoteView{
		Note:    *note,
		Host:    d.Host,
		UserID:  user.ID,
		ShardID: user.ShardID,
		Content: text,
	}, nil
}

func Remove(ctx context.Context, app *domain.Application, req commands.RemoveRequest) error {
	return remove(ctx, req, NewDeps(app))
}

func remove(ctx context.Context, req commands.RemoveRequest, d Deps) error {
	svc, err := d.Session.Service()
	if err != nil {
		return err
	}

	note, err := d.findNote(ctx, svc, req.Note)
	if err != nil {
		return err
	}

	if !req.Force {
		view, err := d.noteView(ctx, svc, note)
		if err != nil {
			return err
		}
		ui.ShowNote(d.Out, view)

		ok, err := d.Terminal.Confirm(fmt.Sprintf("Are you sure you want to delete this note: \"%s\"?", note.Title))
		if err != nil {
			return err
		}
		if !ok {
			return usage.Cancelled()
		}
	}

	d.Progress.SetMessage("Deleting note...")
	err = svc.DeleteNote(ctx, note.GUID)
	d.Progress.Stop()
	if err != nil {
		return d.failed(err, "delete note")
	}

	_, _ = d.Out.Println(d.Styler.Success("Note successfully deleted."))
	return nil
}
