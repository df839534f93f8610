package editor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}

	tests := []struct {
		name    string
		setting string
		env     map[string]string
		goos    string
		want    string
	}{
		{"setting wins", "vim", map[string]string{"EDITOR": "emacs"}, "linux", "vim"},
		{"lowercase env", "", map[string]string{"editor": "micro", "EDITOR": "emacs"}, "linux", "micro"},
		{"EDITOR", "", map[string]string{"EDITOR": "emacs"}, "linux", "emacs"},
		{"unix default", "", nil, "darwin", "nano"},
		{"windows default", "", nil, "windows", "notepad.exe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Resolve(tt.setting, env(tt.env), tt.goos))
		})
	}
}

func TestNew(t *testing.T) {
	dir := t.TempDir()

	s, err := New(filepath.Join(dir, "edit"), "Shopping List: Monday!", ".markdown", "# hi\n", "vi")
	require.NoError(t, err)

	base := filepath.Base(s.Path())
	require.True(t, strings.HasPrefix(base, "shopping-list-monday-"), base)
	require.True(t, strings.HasSuffix(base, ".markdown"), base)

	text, err := s.Read()
	require.NoError(t, err)
	require.Equal(t, "# hi\n", text)

	sum, err := s.Checksum()
	require.NoError(t, err)
	require.Equal(t, "efd8df8202c8f8ab5cb578b0d6e708ef", sum)

	again, err := New(dir, "", "org", "# hi\n", "vi")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(filepath.Base(again.Path()), "note-"))
	require.Equal(t, ".org", filepath.Ext(again.Path()))

	other, err := again.Checksum()
	require.NoError(t, err)
	require.Equal(t, sum, other)

	require.NoError(t, again.Remove())
	require.NoError(t, again.Remove())
}

type recorder struct {
	mu    sync.Mutex
	saved []string
	fail  error
}

func (r *recorder) save(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	r.saved = append(r.saved, text)
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saved)
}

func newSession(t *testing.T, content string) *Session {
	t.Helper()
	s, err := New(t.TempDir(), "note", ".md", content, "true")
	require.NoError(t, err)
	return s
}

func TestWatch_SavesOnExit(t *testing.T) {
	s := newSession(t, "before")
	rec := &recorder{}

	err := s.Watch(context.Background(), WatchOptions{
		Interval: time.Hour,
		Run: func(context.Context) error {
			return os.WriteFile(s.Path(), []byte("after"), 0600)
		},
	}, rec.save)
	require.NoError(t, err)
	require.Equal(t, []string{"after"}, rec.saved)

	_, err = os.Stat(s.Path())
	require.True(t, os.IsNotExist(err))
}

func TestWatch_Autosave(t *testing.T) {
	s := newSession(t, "v0")
	rec := &recorder{}

	err := s.Watch(context.Background(), WatchOptions{
		Interval: 5 * time.Millisecond,
		Run: func(context.Context) error {
			if err := os.WriteFile(s.Path(), []byte("v1"), 0600); err != nil {
				return err
			}
			deadline := time.Now().Add(time.Second)
			for rec.count() == 0 && time.Now().Before(deadline) {
				time.Sleep(time.Millisecond)
			}
			return os.WriteFile(s.Path(), []byte("v2"), 0600)
		},
	}, rec.save)
	require.NoError(t, err)
	require.Equal(t, []string{"v1", "v2"}, rec.saved)
}

func TestWatch_Unchanged(t *testing.T) {
	noop := func(context.Context) error { return nil }

	s := newSession(t, "same")
	rec := &recorder{}
	require.NoError(t, s.Watch(context.Background(), WatchOptions{Run: noop}, rec.save))
	require.Empty(t, rec.saved)

	s = newSession(t, "")
	rec = &recorder{}
	require.NoError(t, s.Watch(context.Background(), WatchOptions{Run: noop, SaveUnchanged: true}, rec.save))
	require.Equal(t, []string{""}, rec.saved)
}

func TestWatch_KeepsFileOnFailure(t *testing.T) {
	s := newSession(t, "v0")
	rec := &recorder{fail: errors.New("service down")}

	err := s.Watch(context.Background(), WatchOptions{
		Run: func(context.Context) error {
			return os.WriteFile(s.Path(), []byte("v1"), 0600)
		},
	}, rec.save)
	require.ErrorIs(t, err, ErrNotSaved)
	require.Contains(t, err.Error(), s.Path())
	require.Contains(t, err.Error(), "service down")

	text, readErr := s.Read()
	require.NoError(t, readErr)
	require.Equal(t, "v1", text)
}

func TestWatch_EditorFails(t *testing.T) {
	s := newSession(t, "v0")
	rec := &recorder{}

	err := s.Watch(context.Background(), WatchOptions{
		Run: func(context.Context) error { return errors.New("exit status 1") },
	}, rec.save)
	require.ErrorIs(t, err, ErrNotSaved)
	require.FileExists(t, s.Path())
}
