package dirsync

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/markup"
	"github.com/gnote-tools/cli/internal/testutil"
	"github.com/gnote-tools/cli/internal/usage"
)

var t0 = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func writeFile(t *testing.T, dir, name, content string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func requireKind(t *testing.T, err error, kind usage.ErrorKind) {
	t.Helper()
	var uerr *usage.Error
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, kind, uerr.Kind)
}

func TestSync_CreatesNotes(t *testing.T) {
	a := testutil.NewApp(t)
	dir := t.TempDir()
	writeFile(t, dir, "standup.md", "---\ntitle: Daily standup\ntags: [team, daily]\n---\n# Hello\n", t0)
	writeFile(t, dir, "todo.md", "- milk\n", t0.Add(time.Hour))
	writeFile(t, dir, "ignored.txt", "not synced", t0)

	req := commands.SyncRequest{Path: dir, Mask: "*.md", Format: "markdown", Notebook: "Blog"}
	require.NoError(t, sync(context.Background(), req, NewDeps(a.Application)))

	require.Len(t, a.Service.Notebooks, 1)
	nb := a.Service.Notebooks[0]
	require.Equal(t, "Blog", nb.Name)
	require.Equal(t, nb.GUID, a.Service.Filters[0].NotebookGUID)

	require.Len(t, a.Service.Notes, 2)
	standup := a.Service.Notes[0]
	require.Equal(t, "Daily standup", standup.Title)
	require.Equal(t, []string{"team", "daily"}, standup.TagNames)
	require.Equal(t, nb.GUID, standup.NotebookGUID)
	require.Equal(t, t0.UnixMilli(), standup.Created)
	require.Contains(t, standup.Content, "<h1>Hello</h1>")
	require.NotContains(t, standup.Content, "title:")

	todo := a.Service.Notes[1]
	require.Equal(t, "todo", todo.Title)
	require.Nil(t, todo.TagNames)
	require.Contains(t, todo.Content, "milk")

	require.Equal(t, "Sync complete: 2 created, 0 updated, 0 written, 0 skipped.\n", a.Out.String())
	require.Equal(t, []string{"Synchronizing..."}, a.Progress.Messages)
}

func TestSync_NotebookDefaultsToDirectoryName(t *testing.T) {
	a := testutil.NewApp(t)
	dir := t.TempDir()

	require.NoError(t, sync(context.Background(), commands.SyncRequest{Path: dir}, NewDeps(a.Application)))

	require.Len(t, a.Service.Notebooks, 1)
	require.Equal(t, filepath.Base(dir), a.Service.Notebooks[0].Name)
}

func TestSync_UpdatesChangedFiles(t *testing.T) {
	a := testutil.NewApp(t)
	a.Service.Notebooks = []domain.Notebook{{GUID: "nb-1", Name: "Journal"}}
	a.Service.Notes = []domain.Note{
		{GUID: "n-1", Title: "monday", Content: markup.Wrap("<div>old</div>"), NotebookGUID: "nb-1", TagNames: []string{"keep"}, Updated: t0.UnixMilli()},
		{GUID: "n-2", Title: "tuesday", Content: markup.Wrap("<div>remote</div>"), NotebookGUID: "nb-1", Updated: t0.Add(time.Hour).UnixMilli()},
	}
	dir := t.TempDir()
	writeFile(t, dir, "monday.txt", "new text", t0.Add(time.Minute))
	writeFile(t, dir, "tuesday.txt", "stale text", t0)

	req := commands.SyncRequest{Path: dir, Notebook: "Journal"}
	require.NoError(t, sync(context.Background(), req, NewDeps(a.Application)))

	monday, _ := a.Service.Note("n-1")
	require.Contains(t, monday.Content, "new text")
	require.Equal(t, []string{"keep"}, monday.TagNames)
	require.Equal(t, "nb-1", monday.NotebookGUID)

	tuesday, _ := a.Service.Note("n-2")
	require.Contains(t, tuesday.Content, "remote")

	require.Equal(t, 1, a.Service.Called("UpdateNote"))
	require.Zero(t, a.Service.Called("CreateNote"))
	require.Zero(t, a.Service.Called("CreateNotebook"))
	require.Equal(t, "Sync complete: 0 created, 1 updated, 0 written, 0 skipped.\n", a.Out.String())
}

func TestSync_TwoWay(t *testing.T) {
	a := testutil.NewApp(t)
	a.Service.Notebooks = []domain.Notebook{{GUID: "nb-1", Name: "Kitchen"}}
	a.Service.Notes = []domain.Note{
		{GUID: "n-1", Title: "Recipes", Content: markup.Wrap("<p>Soup</p>"), NotebookGUID: "nb-1", Updated: t0.Add(time.Hour).UnixMilli()},
		{GUID: "n-2", Title: "shopping", Content: markup.Wrap("<p>eggs</p>"), NotebookGUID: "nb-1", Updated: t0.Add(2 * time.Hour).UnixMilli()},
		{GUID: "n-3", Title: "a/b", Content: markup.Empty(), NotebookGUID: "nb-1", Updated: t0.UnixMilli()},
		{GUID: "n-4", Title: "elsewhere", Content: markup.Empty(), NotebookGUID: "nb-2"},
	}
	dir := t.TempDir()
	shopping := writeFile(t, dir, "shopping.txt", "milk", t0)

	req := commands.SyncRequest{Path: dir, Notebook: "Kitchen", TwoWay: true}
	require.NoError(t, sync(context.Background(), req, NewDeps(a.Application)))

	recipes := filepath.Join(dir, "Recipes.txt")
	require.Contains(t, readFile(t, recipes), "Soup")
	info, err := os.Stat(recipes)
	require.NoError(t, err)
	require.Equal(t, t0.Add(time.Hour).UnixMilli(), info.ModTime().UnixMilli())

	require.Contains(t, readFile(t, shopping), "eggs")
	require.NoFileExists(t, filepath.Join(dir, "elsewhere.txt"))

	require.Zero(t, a.Service.Called("UpdateNote"))
	require.Zero(t, a.Service.Called("CreateNote"))
	require.Equal(t, "Sync complete: 0 created, 0 updated, 2 written, 1 skipped.\n", a.Out.String())

	// Written files carry the note time, so a second run changes nothing.
	a.Out.Reset()
	require.NoError(t, sync(context.Background(), req, NewDeps(a.Application)))
	require.Equal(t, "Sync complete: 0 created, 0 updated, 0 written, 1 skipped.\n", a.Out.String())
}

func TestSync_HTMLImages(t *testing.T) {
	a := testutil.NewApp(t)
	dir := t.TempDir()
	writeFile(t, dir, "cat.png", "meow", t0)
	writeFile(t, dir, "page.html", `<p>Hi <img src="cat.png"></p>`, t0)

	req := commands.SyncRequest{Path: dir, Mask: "*.html", Format: "html", Notebook: "Pets"}
	require.NoError(t, sync(context.Background(), req, NewDeps(a.Application)))

	require.Len(t, a.Service.Notes, 1)
	n := a.Service.Notes[0]
	require.Equal(t, "page", n.Title)
	require.Len(t, n.Resources, 1)
	require.Equal(t, "image/png", n.Resources[0].Mime)
	require.Equal(t, "4a4be40c96ac6314e91d93f38043a634", n.Resources[0].Data.BodyHash)
	require.Contains(t, n.Content, `<en-media type="image/png" hash="4a4be40c96ac6314e91d93f38043a634">`)
}

func TestSync_SkipsUnreadableFiles(t *testing.T) {
	a := testutil.NewApp(t)
	dir := t.TempDir()
	writeFile(t, dir, "binary.txt", "\xff\xfe\xfd", t0)
	writeFile(t, dir, "broken.txt", "---\ntitle: [unclosed\n---\nbody", t0)
	writeFile(t, dir, "good.txt", "fine\x07 text", t0)

	require.NoError(t, sync(context.Background(), commands.SyncRequest{Path: dir, Notebook: "Inbox"}, NewDeps(a.Application)))

	require.Len(t, a.Service.Notes, 1)
	require.Contains(t, a.Service.Notes[0].Content, "fine text")
	require.Equal(t, "Sync complete: 1 created, 0 updated, 0 written, 2 skipped.\n", a.Out.String())
}

func TestSync_LogPath(t *testing.T) {
	a := testutil.NewApp(t)
	dir := t.TempDir()
	writeFile(t, dir, "hello.txt", "hi", t0)
	logPath := filepath.Join(t.TempDir(), "logs", "sync.log")

	req := commands.SyncRequest{Path: dir, Notebook: "Inbox", LogPath: logPath}
	require.NoError(t, sync(context.Background(), req, NewDeps(a.Application)))

	logged := readFile(t, logPath)
	require.Contains(t, logged, `sync: notebook "Inbox" was created`)
	require.Contains(t, logged, `sync: note "hello" was created`)
}

func TestSync_Errors(t *testing.T) {
	tests := []struct {
		name string
		req  func(t *testing.T, dir string) commands.SyncRequest
		kind usage.ErrorKind
		msg  string
	}{
		{
			name: "missing directory",
			req: func(t *testing.T, dir string) commands.SyncRequest {
				return commands.SyncRequest{Path: filepath.Join(dir, "missing")}
			},
			kind: usage.ErrNotFound,
			msg:  "does not exist",
		},
		{
			name: "not a directory",
			req: func(t *testing.T, dir string) commands.SyncRequest {
				return commands.SyncRequest{Path: writeFile(t, dir, "file.txt", "x", t0)}
			},
			kind: usage.ErrInvalidValue,
			msg:  "is not a directory",
		},
		{
			name: "unknown format",
			req: func(t *testing.T, dir string) commands.SyncRequest {
				return commands.SyncRequest{Path: dir, Format: "rtf"}
			},
			kind: usage.ErrInvalidValue,
			msg:  `invalid format "rtf"`,
		},
		{
			name: "bad mask",
			req: func(t *testing.T, dir string) commands.SyncRequest {
				return commands.SyncRequest{Path: dir, Mask: "[a-"}
			},
			kind: usage.ErrInvalidValue,
			msg:  `invalid mask "[a-"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testutil.NewApp(t)

			err := sync(context.Background(), tt.req(t, t.TempDir()), NewDeps(a.Application))

			requireKind(t, err, tt.kind)
			require.ErrorContains(t, err, tt.msg)
			require.Empty(t, a.Service.Calls)
		})
	}
}

func TestSync_NotLoggedIn(t *testing.T) {
	a := testutil.NewApp(t)
	a.LogOut()

	err := sync(context.Background(), commands.SyncRequest{Path: t.TempDir()}, NewDeps(a.Application))

	requireKind(t, err, usage.ErrNotLoggedIn)
	require.Empty(t, a.Tokens)
}
