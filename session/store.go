// Package session holds the locally persisted login state: the bearer token
// issued by the myFlix API and the profile of the authenticated user,
// including the favorite-movies list. The session survives across runs as a
// JSON file in the user config directory.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	configDirName   = "flixctl"
	sessionFileName = "session.json"
)

// User is the profile of the authenticated user as the server returns it.
type User struct {
	ID             string    `json:"_id,omitempty"`
	Username       string    `json:"Username"`
	Email          string    `json:"Email"`
	Birthday       time.Time `json:"Birthday"`
	FavoriteMovies []string  `json:"FavoriteMovies"`
}

// Session pairs the bearer token with the user it belongs to. At most one
// session is resident at a time; no session means anonymous.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Store is the single accessor for the persisted session. All reads and
// writes of login state go through it; mutators persist to disk before
// returning.
type Store struct {
	path    string
	logger  zerolog.Logger
	mu      sync.Mutex
	current *Session
}

// DefaultPath returns the standard session file location:
// <user config dir>/flixctl/session.json
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config dir: %w", err)
	}
	return filepath.Join(configDir, configDirName, sessionFileName), nil
}

// Open creates a Store backed by the given file and loads any resident
// session. A missing file means anonymous; an unreadable or corrupt file is
// logged and likewise treated as anonymous rather than propagated.
func Open(path string, logger zerolog.Logger) *Store {
	s := &Store{path: path, logger: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn().Err(err).Str("path", path).Msg("Failed to read session file, starting anonymous")
		}
		return s
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Corrupt session file, starting anonymous")
		return s
	}

	s.current = &sess
	return s
}

// Path returns the file path where the session is stored.
func (s *Store) Path() string {
	return s.path
}

// Token returns the resident bearer token, or "" when anonymous.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Username returns the resident user's name, or "" when anonymous.
func (s *Store) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.User.Username
}

// User returns a copy of the cached profile and whether a session is resident.
func (s *Store) User() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return User{}, false
	}
	u := s.current.User
	u.FavoriteMovies = append([]string(nil), s.current.User.FavoriteMovies...)
	return u, true
}

// IsFavorite reports whether the cached favorites set contains movieID.
// Purely local, no network access.
func (s *Store) IsFavorite(movieID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return false
	}
	for _, id := range s.current.User.FavoriteMovies {
		if id == movieID {
			return true
		}
	}
	return false
}

// Set replaces the resident session and persists it.
func (s *Store) Set(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &sess
	return s.persist()
}

// SetUser replaces the cached profile, keeping the current token, and
// persists the session. Used after a profile edit or refetch.
func (s *Store) SetUser(user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		s.current = &Session{}
	}
	s.current.User = user
	return s.persist()
}

// AddFavorite inserts movieID into the cached favorites set and persists the
// session. The returned bool reports whether membership actually changed;
// adding an id already present leaves the set untouched.
func (s *Store) AddFavorite(movieID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return false, nil
	}
	for _, id := range s.current.User.FavoriteMovies {
		if id == movieID {
			return false, nil
		}
	}
	s.current.User.FavoriteMovies = append(s.current.User.FavoriteMovies, movieID)
	return true, s.persist()
}

// RemoveFavorite deletes movieID from the cached favorites set and persists
// the session. Removing an absent id is a no-op and reports false.
func (s *Store) RemoveFavorite(movieID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return false, nil
	}
	favorites := s.current.User.FavoriteMovies
	for i, id := range favorites {
		if id == movieID {
			s.current.User.FavoriteMovies = append(favorites[:i:i], favorites[i+1:]...)
			return true, s.persist()
		}
	}
	return false, nil
}

// Clear drops the resident session and removes the session file. Clearing an
// anonymous store is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

// persist writes the resident session to disk. Callers hold s.mu.
func (s *Store) persist() error {
	if s.current == nil {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}

	return nil
}
