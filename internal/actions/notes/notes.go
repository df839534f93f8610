// Package notes implements the note commands: create, edit, show, remove,
// find, dedup and their linked-notebook variants.
package notes

import (
	"context"
	"slices"

	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/markup"
	"github.com/gnote-tools/cli/internal/prefs"
)

func Create(ctx context.Context, app *domain.Application, req commands.CreateRequest) error {
	return create(ctx, req, NewDeps(app))
}

func create(ctx context.Context, req commands.CreateRequest, d Deps) error {
	svc, err := d.Session.Service()
	if err != nil {
		return err
	}
	p, err := prefs.Load(d.Cache)
	if err != nil {
		return err
	}

	dr, err := d.parseFields(ctx, svc, req.NoteFields, p, nil)
	if err != nil {
		return err
	}

	if dr.write {
		if err := d.editText(ctx, svc, domain.Note{}, dr, p, req.Raw); err != nil {
			return err
		}
	} else {
		var note domain.Note
		if err := dr.apply(&note, d.now(), false); err != nil {
			return err
		}
		if note.Content == "" {
			note.Content = markup.Empty()
		}

		d.Progress.SetMessage("Creating note...")
		created, err := svc.CreateNote(ctx, &note)
		d.Progress.Stop()
		if err != nil {
			return d.failed(err, "create note")
		}
		d.remember(*created)
	}

	_, _ = d.Out.Println(d.Styler.Success("Note successfully created."))
	return nil
}

func Edit(ctx context.Context, app *domain.Application, req commands.EditRequest) error {
	return edit(ctx, req, NewDeps(app))
}

func edit(ctx context.Context, req commands.EditRequest, d Deps) error {
	svc, err := d.Session.Service()
	if err != nil {
		return err
	}
	p, err := prefs.Load(d.Cache)
	if err != nil {
		return err
	}

	note, err := d.findNote(ctx, svc, req.Note)
	if err != nil {
		return err
	}

	dr, err := d.parseFields(ctx, svc, req.NoteFields, p, note)
	if err != nil {
		return err
	}

	if dr.write {
		if err := d.editText(ctx, svc, *note, dr, p, req.Raw); err != nil {
			return err
		}
	} else {
		if err := dr.apply(note, d.now(), true); err != nil {
			return err
		}

		d.Progress.SetMessage("Saving note...")
		updated, err := svc.UpdateNote(ctx, note)
		d.Progress.Stop()
		if err != nil {
			return d.failed(err, "save note")
		}
		d.remember(*updated)
	}

	_, _ = d.Out.Println(d.Styler.Success("Note successfully saved."))
	return nil
}

// editText opens the note text in the editor and saves every change. A
// note without GUID is created by the first save, even if untouched. With
// raw the ENML is edited as is.
func (d Deps) editText(ctx context.Context, svc domain.NoteService, base domain.Note, dr draft, p prefs.Prefs, raw bool) error {
	text := base.Content
	if !raw && text != "" {
		var err error
		if text, err = markup.ENMLToText(text, markup.Markdown); err != nil {
			return err
		}
	}

	ext := p.NoteExt.For(raw)
	opts := markup.Options{RawMarkdown: dr.rawMarkdown, Extras: p.Extras}
	isUpdate := base.GUID != ""
	guid := base.GUID

	save := func(ctx context.Context, text string) error {
		content := text
		if !raw {
			var err error
			if content, err = markup.TextToENML(text, markup.FormatForExtension(ext), opts); err != nil {
				return err
			}
		}
		if content == "" {
			content = markup.Empty()
		}

		note := base
		note.GUID = guid
		note.Resources = slices.Clone(base.Resources)
		step := dr
		step.content = content
		if err := step.apply(&note, d.now(), isUpdate); err != nil {
			return err
		}

		if guid == "" {
			created, err := svc.CreateNote(ctx, &note)
			if err != nil {
				return d.Session.Check(err)
			}
			guid = created.GUID
			d.remember(*created)
			return nil
		}
		updated, err := svc.UpdateNote(ctx, &note)
		if err != nil {
			return d.Session.Check(err)
		}
		d.remember(*updated)
		return nil
	}

	title := dr.title
	if title == "" {
		title = base.Title
	}
	d.Progress.Stop()
	return d.Edit(ctx, EditSession{Title: title, Text: text, Ext: ext, SaveUnchanged: !isUpdate, Save: save})
}

// remember caches note so it can be referred to by GUID.
func (d Deps) remember(note domain.Note) {
	if err := d.Cache.SetNote(note); err != nil {
		d.Logger.Warn("notes: cache %s: %v", note.GUID, err)
	}
}

func (d Deps) failed(err error, what string) error {
	return d.Session.Failed(err, what)
}
