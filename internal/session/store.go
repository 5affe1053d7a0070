//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "TokenStore=TokenStore"
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore persists the single live bearer credential. Exactly one
// token occupies the slot at a time, writes are visible to all
// consumers in the process immediately.
type TokenStore interface {
	Token() (string, bool)
	Save(token string) error
	Clear() error
}

type fileTokenStore struct {
	mu   sync.Mutex
	path string
}

// NewFileTokenStore keeps the token in a single well-known file,
// reread on every access so external logout is picked up.
func NewFileTokenStore(path string) TokenStore {
	return &fileTokenStore{path: path}
}

func (s *fileTokenStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}

	return token, true
}

func (s *fileTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.MkdirAll(filepath.Dir(s.path), 0o700)
	if err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}

	err = os.WriteFile(s.path, []byte(token), 0o600)
	if err != nil {
		return fmt.Errorf("write token file: %w", err)
	}

	return nil
}

func (s *fileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token file: %w", err)
	}

	return nil
}

type memoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{}
}

func (s *memoryTokenStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return "", false
	}
	return s.token, true
}

func (s *memoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	return nil
}

func (s *memoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	return nil
}
