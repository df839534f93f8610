package prefs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gnote-tools/cli/internal/testutil"
)

func TestParseNoteExt(t *testing.T) {
	tests := []struct {
		value   string
		want    NoteExt
		wantErr bool
	}{
		{".markdown, .org", NoteExt{".markdown", ".org"}, false},
		{".md,.html", NoteExt{".md", ".html"}, false},
		{".md", NoteExt{}, true},
		{".md, .txt, .html", NoteExt{}, true},
	}
	for _, tt := range tests {
		got, err := ParseNoteExt(tt.value)
		if tt.wantErr {
			require.EqualError(t, err, ErrNoteExt, tt.value)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestNoteExt_For(t *testing.T) {
	ext := NoteExt{Markdown: ".md", Raw: ".html"}
	require.Equal(t, ".md", ext.For(false))
	require.Equal(t, ".html", ext.For(true))
	require.Equal(t, ".md, .html", ext.String())
}

func TestParseExtras(t *testing.T) {
	require.Equal(t, []string{"tables", "strike"}, ParseExtras("tables, strike,"))
	require.Nil(t, ParseExtras(""))
}

func TestLoad(t *testing.T) {
	cache := testutil.NewTestStore(t)

	p, err := Load(cache)
	require.NoError(t, err)
	require.Equal(t, Prefs{NoteExt: NoteExt{".markdown", ".org"}}, p)

	require.NoError(t, cache.SetSetting(KeyEditor, "vim"))
	require.NoError(t, cache.SetSetting(KeyExtras, "tables"))
	require.NoError(t, cache.SetSetting(KeyNoteExt, ".md, .txt"))

	p, err = Load(cache)
	require.NoError(t, err)
	require.Equal(t, Prefs{Editor: "vim", NoteExt: NoteExt{".md", ".txt"}, Extras: []string{"tables"}}, p)
}

func TestLoad_DropsMalformedNoteExt(t *testing.T) {
	cache := testutil.NewTestStore(t)
	require.NoError(t, cache.SetSetting(KeyEditor, "vim"))
	require.NoError(t, cache.SetSetting(KeyNoteExt, ".md"))

	p, err := Load(cache)
	require.NoError(t, err)
	require.Equal(t, NoteExt{".markdown", ".org"}, p.NoteExt)

	_, ok, err := cache.Setting(KeyNoteExt)
	require.NoError(t, err)
	require.False(t, ok)

	editor, _, err := cache.Setting(KeyEditor)
	require.NoError(t, err)
	require.Equal(t, "vim", editor)
}
