package notes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/gnote-tools/cli/internal/cli"
	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/format"
	"github.com/gnote-tools/cli/internal/markup"
	"github.com/gnote-tools/cli/internal/prefs"
	"github.com/gnote-tools/cli/internal/usage"
)

// draft holds parsed note options. Zero fields leave the note alone.
type draft struct {
	title        string
	content      string // ENML
	write        bool   // open the editor for the content
	rawMarkdown  bool
	tags         []string
	created      int64
	notebookGUID string
	resources    []domain.Resource
	reminder     format.Reminder
	url          string
}

// parseFields validates and resolves f. note is the note being edited, nil
// when creating one.
func (d Deps) parseFields(ctx context.Context, svc domain.NoteService, f commands.NoteFields, p prefs.Prefs, note *domain.Note) (draft, error) {
	dr := draft{rawMarkdown: f.RawMarkdown}

	content := f.Content
	if note != nil && !f.HasEdits() {
		content = cli.WriteContent
	}

	dr.title = f.Title
	if dr.title == "" && note != nil {
		dr.title = note.Title
	}

	switch content {
	case "":
	case cli.WriteContent:
		dr.write = true
	default:
		enml, err := d.readContent(content, markup.Options{RawMarkdown: f.RawMarkdown, Extras: p.Extras})
		if err != nil {
			return dr, err
		}
		dr.content = enml
	}

	dr.tags = f.Tags

	if f.Created != "" {
		ms, err := format.ParseOptionDate("--created", f.Created, d.Location)
		if err != nil {
			return dr, usage.InvalidValue("%s", err.Error())
		}
		dr.created = ms
	}

	if f.Notebook != "" {
		guid, err := d.notebookGUID(ctx, svc, f.Notebook)
		if err != nil {
			return dr, err
		}
		dr.notebookGUID = guid
	}

	if f.Reminder != "" {
		r, err := format.ParseReminder(f.Reminder, d.now())
		if err != nil {
			return dr, usage.InvalidValue("%s", err.Error())
		}
		dr.reminder = r
	}

	dr.url = f.URL
	if dr.url == "" && note != nil {
		dr.url = note.Attributes.SourceURL
	}

	for _, path := range f.Resources {
		r, err := d.resource(path)
		if err != nil {
			return dr, err
		}
		dr.resources = append(dr.resources, r)
	}
	return dr, nil
}

// readContent converts a --content value to ENML. "-" reads stdin and an
// existing file path is replaced by the file's text.
func (d Deps) readContent(value string, opts markup.Options) (string, error) {
	text, textFormat := value, markup.Markdown

	switch {
	case value == "-":
		data, err := io.ReadAll(d.In)
		if err != nil {
			return "", err
		}
		text = string(data)
	case d.IsFile(value):
		d.Logger.Debug("notes: load content from %s", value)
		data, err := d.ReadFile(value)
		if err != nil {
			return "", err
		}
		text = string(data)
		if markup.FormatForFile(value) == markup.HTML {
			textFormat = markup.HTML
		}
	}

	return markup.TextToENML(text, textFormat, opts)
}

func isGUID(s string) bool {
	return len(s) == 36 && strings.IndexByte(s, '-') == 8
}

// notebookGUID resolves a notebook given by GUID or name, creating it when
// no notebook has that name.
func (d Deps) notebookGUID(ctx context.Context, svc domain.NoteService, value string) (string, error) {
	if isGUID(value) {
		return value, nil
	}

	notebooks, err := svc.ListNotebooks(ctx)
	if err != nil {
		return "", d.Session.Check(err)
	}
	for _, nb := range notebooks {
		if nb.Name == value {
			return nb.GUID, nil
		}
	}

	d.Progress.SetMessage("Creating notebook...")
	nb, err := svc.CreateNotebook(ctx, domain.Notebook{Name: value})
	d.Progress.Stop()
	if err != nil {
		return "", d.Session.Check(err)
	}
	_, _ = d.Out.Println(d.Styler.Success("Notebook successfully created."))
	return nb.GUID, nil
}

// resource reads an attachment from path.
func (d Deps) resource(path string) (domain.Resource, error) {
	data, err := d.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Resource{}, usage.NotFound(fmt.Sprintf("The file '%s' does not exist.", path))
	}
	if err != nil {
		return domain.Resource{}, err
	}

	return markup.NewResource(path, data), nil
}

// apply writes the draft onto n. A reminder in the past is rejected.
func (dr draft) apply(n *domain.Note, now time.Time, isUpdate bool) error {
	if dr.title != "" {
		n.Title = dr.title
	}
	if dr.content != "" {
		n.Content = dr.content
	}
	if dr.tags != nil {
		n.TagNames = dr.tags
		n.TagGUIDs = nil
	}
	if dr.created != 0 {
		n.Created = dr.created
	}
	if dr.notebookGUID != "" {
		n.NotebookGUID = dr.notebookGUID
	}
	if dr.url != "" {
		n.Attributes.SourceURL = dr.url
	}

	if err := format.ApplyReminder(&n.Attributes, dr.reminder, now, isUpdate); err != nil {
		if errors.Is(err, format.ErrReminderInPast) {
			return usage.InvalidValue("Error: reminder must be in the future.")
		}
		return err
	}

	if len(dr.resources) > 0 {
		if n.Content == "" {
			n.Content = markup.Empty()
		}
		n.Content = markup.AppendMedia(n.Content, dr.resources)
		n.Resources = append(n.Resources, dr.resources...)
	}
	return nil
}
