// Package session manages the authenticated session: created on login,
// persisted to a state file, destroyed on logout or credential rejection.
// The session is passed explicitly to whatever needs it; there is no
// ambient global.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/leadline-crm/leadline/internal/common"
	"github.com/leadline-crm/leadline/internal/config"
	"github.com/leadline-crm/leadline/internal/model"
)

// Session holds the bearer credential and the logged-in user.
type Session struct {
	Token     string         `json:"token"`
	User      model.Employee `json:"user"`
	CreatedAt time.Time      `json:"created_at"`
}

// Valid reports whether the session carries a credential.
func (s *Session) Valid() bool {
	return s != nil && s.Token != ""
}

// Store loads and saves sessions from a state file.
type Store struct {
	path string
}

// NewStore creates a store rooted at the application data directory.
func NewStore() (*Store, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	return &Store{path: filepath.Join(dir, "session.json")}, nil
}

// NewStoreAt creates a store at an explicit path. Used by tests.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Load reads the saved session. Returns ErrNoSession when nobody is
// logged in.
func (st *Store) Load() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}

	if !s.Valid() {
		return nil, common.ErrNoSession
	}

	return &s, nil
}

// Save persists the session, readable by the owner only.
func (st *Store) Save(s *Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(st.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Clear destroys the saved session. Clearing an absent session is not
// an error.
func (st *Store) Clear() error {
	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
