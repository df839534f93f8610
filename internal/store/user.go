package store

import (
	"database/sql"
	"fmt"

	"github.com/gnote-tools/cli/internal/domain"
)

// User property keys written by CreateUser.
const (
	PropToken = "oauth_token"
	PropInfo  = "info"
)

// CreateUser replaces the session. An empty token keeps only the user
// info, for sessions whose token lives in the OS keyring.
func (s *Store) CreateUser(token string, user *domain.User) error {
	info, err := encode(user)
	if err != nil {
		return err
	}

	return s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM user_props"); err != nil {
			return fmt.Errorf("clear user: %w", err)
		}
		if token != "" {
			tokenJSON, err := encode(token)
			if err != nil {
				return err
			}
			if _, err := tx.Exec("INSERT INTO user_props (key, value) VALUES (?, ?)", PropToken, tokenJSON); err != nil {
				return fmt.Errorf("store token: %w", err)
			}
		}
		if _, err := tx.Exec("INSERT INTO user_props (key, value) VALUES (?, ?)", PropInfo, info); err != nil {
			return fmt.Errorf("store user info: %w", err)
		}
		return nil
	})
}

// RemoveUser drops the session and every user property.
func (s *Store) RemoveUser() error {
	if _, err := s.db.Exec("DELETE FROM user_props"); err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	return nil
}

// UserToken returns the cached token, or "" when none is stored.
func (s *Store) UserToken() (string, error) {
	var token string
	if _, err := s.UserProp(PropToken, &token); err != nil {
		return "", err
	}
	return token, nil
}

// UserInfo returns the cached account, or nil when nobody is logged in.
func (s *Store) UserInfo() (*domain.User, error) {
	var user domain.User
	ok, err := s.UserProp(PropInfo, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

func (s *Store) UserProps() (map[string][]byte, error) {
	rows, err := s.db.Query("SELECT key, value FROM user_props ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("list user props: %w", err)
	}
	defer func() { _ = rows.Close() }()

	props := make(map[string][]byte)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		props[key] = []byte(value)
	}
	return props, rows.Err()
}

func (s *Store) UserProp(key string, dst any) (bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM user_props WHERE key = ?", key).Scan(&value)
	if isNoRows(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get user prop %s: %w", key, err)
	}
	if err := decode(value, dst); err != nil {
		return false, fmt.Errorf("user prop %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) SetUserProp(key string, value any) error {
	payload, err := encode(value)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO user_props (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, payload,
	)
	if err != nil {
		return fmt.Errorf("set user prop %s: %w", key, err)
	}
	return nil
}

// DelUserProp removes a property and reports whether it existed.
func (s *Store) DelUserProp(key string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM user_props WHERE key = ?", key)
	if err != nil {
		return false, fmt.Errorf("delete user prop %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
