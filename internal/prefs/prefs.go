// Package prefs reads and writes the per-user editing preferences kept in
// the local cache: the editor command, the note file extensions and the
// markdown extras.
package prefs

import (
	"fmt"
	"strings"

	"github.com/gnote-tools/cli/internal/domain"
)

// Cache setting keys.
const (
	KeyEditor  = "editor"
	KeyNoteExt = "note_ext"
	KeyExtras  = "extras"
)

// DefaultNoteExt is the note_ext used until one is set.
const DefaultNoteExt = ".markdown, .org"

// NoteExt holds the temp file extensions for markdown and raw editing.
type NoteExt struct {
	Markdown string
	Raw      string
}

// For returns the extension used when raw is requested or not.
func (e NoteExt) For(raw bool) string {
	if raw {
		return e.Raw
	}
	return e.Markdown
}

func (e NoteExt) String() string {
	return e.Markdown + ", " + e.Raw
}

// ErrNoteExt is the message for a malformed note_ext value.
const ErrNoteExt = "Error in note extension, format is '.markdown_extension, .raw_extension'"

// ParseNoteExt reads ".md, .html". Spaces are ignored.
func ParseNoteExt(value string) (NoteExt, error) {
	parts := strings.Split(strings.ReplaceAll(value, " ", ""), ",")
	if len(parts) != 2 {
		return NoteExt{}, fmt.Errorf("%s", ErrNoteExt)
	}
	return NoteExt{Markdown: parts[0], Raw: parts[1]}, nil
}

// ParseExtras splits a comma separated list of markdown extras.
func ParseExtras(value string) []string {
	var extras []string
	for _, e := range strings.Split(value, ",") {
		if e = strings.TrimSpace(e); e != "" {
			extras = append(extras, e)
		}
	}
	return extras
}

// Prefs are the stored preferences with defaults applied.
type Prefs struct {
	Editor  string // empty: resolve from the environment
	NoteExt NoteExt
	Extras  []string
}

// Load reads the preferences from cache. A malformed note_ext is dropped
// and the default used.
func Load(cache domain.Cache) (Prefs, error) {
	settings, err := cache.Settings()
	if err != nil {
		return Prefs{}, fmt.Errorf("load preferences: %w", err)
	}

	p := Prefs{
		Editor: settings[KeyEditor],
		Extras: ParseExtras(settings[KeyExtras]),
	}

	p.NoteExt, _ = ParseNoteExt(DefaultNoteExt)
	if raw, ok := settings[KeyNoteExt]; ok {
		if ext, err := ParseNoteExt(raw); err == nil {
			p.NoteExt = ext
		} else {
			delete(settings, KeyNoteExt)
			if err := cache.SetSettings(settings); err != nil {
				return p, fmt.Errorf("reset note_ext: %w", err)
			}
		}
	}
	return p, nil
}
