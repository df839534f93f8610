package store

import (
	"database/sql"
	"fmt"

	"github.com/gnote-tools/cli/internal/domain"
)

// SetNotebooks replaces the cached notebook list, keeping its order.
func (s *Store) SetNotebooks(notebooks []domain.Notebook) error {
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM notebooks"); err != nil {
			return fmt.Errorf("clear notebooks: %w", err)
		}
		for i, nb := range notebooks {
			payload, err := encode(nb)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(
				"INSERT OR REPLACE INTO notebooks (guid, name, position, payload) VALUES (?, ?, ?, ?)",
				nb.GUID, nb.Name, i, payload,
			); err != nil {
				return fmt.Errorf("store notebook %s: %w", nb.GUID, err)
			}
		}
		return nil
	})
}

func (s *Store) Notebooks() ([]domain.Notebook, error) {
	var out []domain.Notebook
	err := s.scanPayloads("SELECT payload FROM notebooks ORDER BY position", func(payload string) error {
		var nb domain.Notebook
		if err := decode(payload, &nb); err != nil {
			return err
		}
		out = append(out, nb)
		return nil
	})
	return out, err
}

// SetTags replaces the cached tag list, keeping its order.
func (s *Store) SetTags(tags []domain.Tag) error {
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM tags"); err != nil {
			return fmt.Errorf("clear tags: %w", err)
		}
		for i, tag := range tags {
			payload, err := encode(tag)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(
				"INSERT OR REPLACE INTO tags (guid, name, position, payload) VALUES (?, ?, ?, ?)",
				tag.GUID, tag.Name, i, payload,
			); err != nil {
				return fmt.Errorf("store tag %s: %w", tag.GUID, err)
			}
		}
		return nil
	})
}

func (s *Store) Tags() ([]domain.Tag, error) {
	var out []domain.Tag
	err := s.scanPayloads("SELECT payload FROM tags ORDER BY position", func(payload string) error {
		var tag domain.Tag
		if err := decode(payload, &tag); err != nil {
			return err
		}
		out = append(out, tag)
		return nil
	})
	return out, err
}

func (s *Store) scanPayloads(query string, fn func(payload string) error) error {
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return err
		}
		if err := fn(payload); err != nil {
			return err
		}
	}
	return rows.Err()
}
