package client

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore persists the session token across client restarts.
// Implementations must be safe for concurrent use.
type TokenStore interface {
	// Load returns the stored token, or "" when none is stored.
	Load() (string, error)
	// Save stores the token, replacing any previous value.
	Save(token string) error
	// Clear removes the stored token.
	Clear() error
}

// memTokenStore keeps the token in process memory only.
type memTokenStore struct {
	mu    sync.Mutex
	token string
}

func newMemTokenStore() *memTokenStore { return &memTokenStore{} }

func (m *memTokenStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memTokenStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memTokenStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// FileTokenStore persists the token to a single file, created with 0600.
// The zero value is not usable; use NewFileTokenStore.
type FileTokenStore struct {
	mu   sync.Mutex
	path string
}

// NewFileTokenStore stores the token at path. An empty path defaults to
// $HOME/.pawplanet/token.
func NewFileTokenStore(path string) (*FileTokenStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".pawplanet", "token")
	}
	return &FileTokenStore{path: path}, nil
}

func (f *FileTokenStore) Load() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (f *FileTokenStore) Save(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.path, []byte(token), 0o600)
}

func (f *FileTokenStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
