// Package session persists the logged-in user record on the client machine
// and routes roles to their landing view.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/laes18/go-restaurant-pos/internal/pos"
)

var ErrNoSession = errors.New("no saved session")

type Record struct {
	User    pos.User  `json:"user"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

type Store struct{ path string }

func NewStore(path string) *Store { return &Store{path: path} }

// DefaultPath places the session file under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "restaurant-pos", "session.json"), nil
}

func (s *Store) Save(rec Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o600)
}

func (s *Store) Load() (Record, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Record{}, ErrNoSession
	}
	if err != nil {
		return Record{}, err
	}
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return Record{}, fmt.Errorf("corrupt session file: %w", err)
	}
	return rec, nil
}

func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

type View string

const (
	ViewAdmin   View = "admin"
	ViewWaiter  View = "waiter"
	ViewKitchen View = "kitchen"
	ViewCashier View = "cashier"
)

// LandingView resolves a role to the screen it lands on after login.
func LandingView(role pos.Role) (View, error) {
	switch role {
	case pos.RoleAdmin:
		return ViewAdmin, nil
	case pos.RoleWaiter:
		return ViewWaiter, nil
	case pos.RoleKitchen:
		return ViewKitchen, nil
	case pos.RoleCashier:
		return ViewCashier, nil
	}
	return "", fmt.Errorf("unknown role %q", role)
}
