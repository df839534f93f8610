// Package dirsync implements sync: it mirrors the files of a directory into
// a notebook and, with --two-way, the notes of the notebook back to files.
package dirsync

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/markup"
	"github.com/gnote-tools/cli/internal/prefs"
	"github.com/gnote-tools/cli/internal/usage"
)

// maxNotes caps the notes read from the synced notebook.
const maxNotes = 10000

const defaultMask = "*.*"

var formats = map[string]struct {
	format markup.Format
	ext    string
}{
	"plain":    {markup.Plain, ".txt"},
	"markdown": {markup.Markdown, ".md"},
	"html":     {markup.HTML, ".html"},
}

// job is a validated sync request.
type job struct {
	dir      string
	mask     string
	format   markup.Format
	ext      string
	notebook string
	twoWay   bool
	opts     markup.Options
}

// localFile is a file matched by the mask.
type localFile struct {
	path  string
	name  string // base name without extension
	mtime int64  // ms since epoch
}

type stats struct {
	created, updated, written, skipped int
}

func Sync(ctx context.Context, app *domain.Application, req commands.SyncRequest) error {
	return sync(ctx, req, NewDeps(app))
}

func sync(ctx context.Context, req commands.SyncRequest, d Deps) error {
	svc, err := d.Session.Service()
	if err != nil {
		return err
	}

	j, err := newJob(req)
	if err != nil {
		return err
	}
	p, err := prefs.Load(d.Cache)
	if err != nil {
		return err
	}
	j.opts.Extras = p.Extras

	if req.LogPath != "" {
		l, err := d.OpenLog(req.LogPath)
		if err != nil {
			return fmt.Errorf("open sync log: %w", err)
		}
		defer l.Close()
		d.Logger = l
	}

	d.Logger.Info("sync: start %s -> %q", j.dir, j.notebook)
	d.Progress.SetMessage("Synchronizing...")
	defer d.Progress.Stop()

	nb, err := d.notebook(ctx, svc, j.notebook)
	if err != nil {
		return err
	}

	files, err := j.files()
	if err != nil {
		return err
	}

	found, err := svc.FindNotes(ctx, domain.NoteFilter{NotebookGUID: nb.GUID}, maxNotes)
	if err != nil {
		return d.Session.Failed(err, "list notes")
	}
	notes := found.Notes

	var st stats
	for _, f := range files {
		if err := d.push(ctx, svc, j, nb, f, notes, &st); err != nil {
			return err
		}
	}

	if j.twoWay {
		for _, n := range notes {
			if err := d.pull(ctx, svc, j, n, files, &st); err != nil {
				return err
			}
		}
	}

	d.Logger.Info("sync: complete, %d created, %d updated, %d written, %d skipped",
		st.created, st.updated, st.written, st.skipped)
	d.Progress.Stop()
	_, _ = d.Out.Println(d.Styler.Success(fmt.Sprintf(
		"Sync complete: %d created, %d updated, %d written, %d skipped.",
		st.created, st.updated, st.written, st.skipped)))
	return nil
}

func newJob(req commands.SyncRequest) (job, error) {
	if req.Path == "" {
		return job{}, usage.InvalidValue("Path to the sync directory is not set.")
	}
	info, err := os.Stat(req.Path)
	if errors.Is(err, os.ErrNotExist) {
		return job{}, usage.NotFound(fmt.Sprintf("Path to the sync directory does not exist: %s", req.Path))
	}
	if err != nil {
		return job{}, err
	}
	if !info.IsDir() {
		return job{}, usage.InvalidValue("%s is not a directory", req.Path)
	}

	mask := cmp.Or(req.Mask, defaultMask)
	if _, err := filepath.Match(mask, ""); err != nil {
		return job{}, usage.InvalidValue("invalid mask %q", mask)
	}

	f, ok := formats[cmp.Or(req.Format, "plain")]
	if !ok {
		return job{}, usage.InvalidValue("invalid format %q, expected plain, markdown or html", req.Format)
	}

	dir, err := filepath.Abs(req.Path)
	if err != nil {
		return job{}, err
	}

	return job{
		dir:      dir,
		mask:     mask,
		format:   f.format,
		ext:      f.ext,
		notebook: cmp.Or(req.Notebook, filepath.Base(dir)),
		twoWay:   req.TwoWay,
	}, nil
}

// files lists the regular files of the directory that match the mask, in
// name order.
func (j job) files() ([]localFile, error) {
	entries, err := os.ReadDir(j.dir)
	if err != nil {
		return nil, err
	}

	var files []localFile
	for _, e := range entries {
		if ok, _ := filepath.Match(j.mask, e.Name()); !ok {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, localFile{
			path:  filepath.Join(j.dir, e.Name()),
			name:  strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			mtime: info.ModTime().UnixMilli(),
		})
	}
	return files, nil
}

// notebook returns the notebook called name, creating it if needed.
func (d Deps) notebook(ctx context.Context, svc domain.NoteService, name string) (domain.Notebook, error) {
	notebooks, err := svc.ListNotebooks(ctx)
	if err != nil {
		return domain.Notebook{}, d.Session.Failed(err, "list notebooks")
	}
	for _, nb := range notebooks {
		if nb.Name == name {
			return nb, nil
		}
	}

	nb, err := svc.CreateNotebook(ctx, domain.Notebook{Name: name})
	if err != nil {
		return domain.Notebook{}, d.Session.Failed(err, "create notebook")
	}
	d.Logger.Info("sync: notebook %q was created", name)
	return *nb, nil
}

// push creates the note of f, or updates the note with the same title when
// the file is newer. Files that cannot be converted are skipped.
func (d Deps) push(ctx context.Context, svc domain.NoteService, j job, nb domain.Notebook, f localFile, notes []domain.Note, st *stats) error {
	title, content, tags, resources, err := j.read(f)
	if err != nil {
		d.Logger.Warn("sync: skip %s: %v", f.path, err)
		st.skipped++
		return nil
	}

	for _, n := range notes {
		if n.Title != title {
			continue
		}
		if f.mtime <= n.Updated {
			return nil
		}

		note := n
		note.Content = content
		note.NotebookGUID = nb.GUID
		note.Resources = resources
		if tags != nil {
			note.TagNames = tags
			note.TagGUIDs = nil
		}
		if _, err := svc.UpdateNote(ctx, &note); err != nil {
			return d.Session.Failed(err, "update note")
		}
		d.Logger.Info("sync: note %q was updated", title)
		st.updated++
		return nil
	}

	note := domain.Note{
		Title:        title,
		Content:      content,
		NotebookGUID: nb.GUID,
		TagNames:     tags,
		Created:      f.mtime,
		Resources:    resources,
	}
	if _, err := svc.CreateNote(ctx, &note); err != nil {
		return d.Session.Failed(err, "create note")
	}
	d.Logger.Info("sync: note %q was created", title)
	st.created++
	return nil
}

// read converts a file to note fields. The front matter title replaces the
// file name. Images of HTML files become resources.
func (j job) read(f localFile) (title, content string, tags []string, resources []domain.Resource, err error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", "", nil, nil, err
	}
	if !utf8.Valid(data) {
		return "", "", nil, nil, errors.New("content must be UTF-8")
	}

	fm, body, err := splitFrontMatter(stripControl(string(data)))
	if err != nil {
		return "", "", nil, nil, err
	}

	if j.format == markup.HTML {
		dir := filepath.Dir(f.path)
		body, resources, err = markup.EmbedImages(body, func(src string) (domain.Resource, error) {
			path := src
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, path)
			}
			img, err := os.ReadFile(path)
			if err != nil {
				return domain.Resource{}, err
			}
			return markup.NewResource(path, img), nil
		})
		if err != nil {
			return "", "", nil, nil, err
		}
	}

	content, err = markup.TextToENML(body, j.format, j.opts)
	if err != nil {
		return "", "", nil, nil, err
	}
	return cmp.Or(fm.Title, f.name), content, fm.Tags, resources, nil
}

// pull writes note n to the file of the same name when the note is newer,
// or to a new file when there is none.
func (d Deps) pull(ctx context.Context, svc domain.NoteService, j job, n domain.Note, files []localFile, st *stats) error {
	path := ""
	for _, f := range files {
		if f.name == n.Title {
			if f.mtime >= n.Updated {
				return nil
			}
			path = f.path
			break
		}
	}
	if path == "" {
		if !validFileName(n.Title) {
			d.Logger.Warn("sync: skip note %q: title is not a file name", n.Title)
			st.skipped++
			return nil
		}
		path = filepath.Join(j.dir, n.Title+j.ext)
	}

	enml, err := svc.GetNoteContent(ctx, n.GUID)
	if err != nil {
		return d.Session.Failed(err, "load note")
	}
	text, err := markup.ENMLToText(enml, markup.Markdown)
	if err != nil {
		d.Logger.Warn("sync: skip note %q: %v", n.Title, err)
		st.skipped++
		return nil
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	// The file takes the note's time so the next run sees both as in sync.
	if n.Updated != 0 {
		mtime := time.UnixMilli(n.Updated)
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			d.Logger.Warn("sync: set time of %s: %v", path, err)
		}
	}
	d.Logger.Info("sync: file %s was written", path)
	st.written++
	return nil
}

func validFileName(title string) bool {
	title = strings.TrimSpace(title)
	return title != "" && title != "." && title != ".." &&
		!strings.ContainsAny(title, `/\`) && !strings.ContainsRune(title, 0)
}
