package store

import (
	"fmt"

	"github.com/gnote-tools/cli/internal/domain"
)

// SetNote caches a note by GUID. Content is not cached.
func (s *Store) SetNote(note domain.Note) error {
	note.Content = ""
	note.Resources = nil

	payload, err := encode(note)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO notes (guid, title, payload) VALUES (?, ?, ?)
		 ON CONFLICT(guid) DO UPDATE SET
		   title = excluded.title,
		   payload = excluded.payload,
		   updated_at = datetime('now')`,
		note.GUID, note.Title, payload,
	)
	if err != nil {
		return fmt.Errorf("store note %s: %w", note.GUID, err)
	}
	return nil
}

// Note returns a cached note, or nil when the GUID is unknown.
func (s *Store) Note(guid string) (*domain.Note, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM notes WHERE guid = ?", guid).Scan(&payload)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get note %s: %w", guid, err)
	}

	var note domain.Note
	if err := decode(payload, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// SetSearch replaces the last search result.
func (s *Store) SetSearch(result domain.SearchResult) error {
	payload, err := encode(result)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO search (id, payload) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, created_at = datetime('now')`,
		payload,
	)
	if err != nil {
		return fmt.Errorf("store search: %w", err)
	}
	return nil
}

// Search returns the last search result, or nil when there is none.
func (s *Store) Search() (*domain.SearchResult, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM search WHERE id = 1").Scan(&payload)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get search: %w", err)
	}

	var result domain.SearchResult
	if err := decode(payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
