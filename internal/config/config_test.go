package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupRC points the rc file at a fresh temp directory.
func setupRC(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".gnoterc")
	t.Setenv("GNOTE_RC", path)
	t.Setenv("GNOTE_BASE", "")
	return path
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "single line", content: "key=value\n", want: []string{"key=value"}},
		{name: "comments kept", content: "# Comment\nkey=value\n", want: []string{"# Comment", "key=value"}},
		{name: "CRLF line endings", content: "key1=value1\r\nkey2=value2\r\n", want: []string{"key1=value1", "key2=value2"}},
		{name: "empty file", content: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := setupRC(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			got, err := ReadLines()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			info, err := os.Stat(path)
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0600), info.Mode().Perm())
		})
	}
}

func TestReadLines_MissingFile(t *testing.T) {
	path := setupRC(t)

	lines, err := ReadLines()
	require.NoError(t, err)
	require.Nil(t, lines)

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err), "reading must not create the rc file")
}

func TestWriteLines(t *testing.T) {
	path := setupRC(t)

	require.NoError(t, WriteLines([]string{"key1=value1", "# c", "key2=value2"}))
	require.NoError(t, WriteLines([]string{"key3=value3"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "key3=value3\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestSet(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		key, value  string
		want        []string
		wantUpdated bool
	}{
		{
			name:  "add to empty",
			key:   "key",
			value: "value",
			want:  []string{"key=value"},
		},
		{
			name:  "add after comments",
			lines: []string{"# Comment", "", "key1=value1"},
			key:   "key2",
			value: "value2",
			want:  []string{"# Comment", "", "key1=value1", "key2=value2"},
		},
		{
			name:        "update existing key",
			lines:       []string{"key1=value1", "key2=value2"},
			key:         "key1",
			value:       "new",
			want:        []string{"key1=new", "key2=value2"},
			wantUpdated: true,
		},
		{
			name:        "whitespace around existing key",
			lines:       []string{"  key1  =  value1  "},
			key:         "key1",
			value:       "new",
			want:        []string{"key1=new"},
			wantUpdated: true,
		},
		{
			name:        "keeps inline comment",
			lines:       []string{"max_retries=3 # network"},
			key:         "max_retries",
			value:       "5",
			want:        []string{"max_retries=5 # network"},
			wantUpdated: true,
		},
		{
			name:  "quotes values with spaces",
			key:   "pager",
			value: "less -R",
			want:  []string{`pager="less -R"`},
		},
		{
			name:  "commented key is not updated",
			lines: []string{"# color_info="},
			key:   "color_info",
			value: "33",
			want:  []string{"# color_info=", "color_info=33"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, updated := Set(tt.lines, tt.key, tt.value)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantUpdated, updated)
		})
	}
}

func TestUnset(t *testing.T) {
	got, removed := Unset([]string{"# c", "a=1", "b=2", "a=3"}, "a")
	require.True(t, removed)
	require.Equal(t, []string{"# c", "b=2"}, got)

	got, removed = Unset([]string{"b=2"}, "a")
	require.False(t, removed)
	require.Equal(t, []string{"b=2"}, got)
}

func TestProvider_SetSeedsTemplate(t *testing.T) {
	path := setupRC(t)
	p := NewProvider()

	require.NoError(t, p.Set("max_retries", "5"))

	lines, err := ReadLines()
	require.NoError(t, err)
	require.Equal(t, "# gnote configuration", lines[0])
	require.Contains(t, lines, "max_retries=5")
	require.Contains(t, lines, `pager="less -FRSX"`)
	require.Contains(t, lines, "# color_success=")

	v, ok := p.Get("max_retries")
	require.True(t, ok)
	require.Equal(t, "5", v)

	_, err = os.Stat(path + ".lock")
	require.True(t, os.IsNotExist(err), "lock must be released")
}

func TestProvider_Unset(t *testing.T) {
	setupRC(t)
	p := NewProvider()

	require.NoError(t, p.Set("theme", "mono"))
	v, _ := p.Get("theme")
	require.Equal(t, "mono", v)

	require.NoError(t, p.Unset("theme"))
	v, ok := p.Get("theme")
	require.True(t, ok)
	require.Equal(t, "default", v)

	require.NoError(t, p.Unset("not_set_anywhere"))
}
