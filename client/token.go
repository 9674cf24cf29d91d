package client

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore holds the single bearer credential the executor attaches to
// outgoing requests. At most one token is held at a time; there is no
// refresh or rotation logic.
//
// Reads are not synchronized against in-flight requests: a Clear racing a
// request may or may not strip the token depending on read timing. No
// stronger ordering is guaranteed or required.
type TokenStore interface {
	// Token returns the persisted token, reporting whether one is present.
	Token() (string, bool)
	// SetToken persists a token, overwriting any previous value.
	SetToken(token string)
	// Clear removes the persisted token.
	Clear()
}

// --------------------------------------------------------------------
// In-memory store (default)
// --------------------------------------------------------------------

// MemoryTokenStore keeps the token in process memory. It is the default
// store a Client is constructed with.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore { return &MemoryTokenStore{} }

func (s *MemoryTokenStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *MemoryTokenStore) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *MemoryTokenStore) Clear() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

// --------------------------------------------------------------------
// File-backed store (CLI sessions)
// --------------------------------------------------------------------

// FileTokenStore persists the token to a single file so CLI invocations share
// a login session. File mode is 0600; the parent directory is created on the
// first write.
type FileTokenStore struct {
	mu   sync.Mutex
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	tok := strings.TrimSpace(string(b))
	return tok, tok != ""
}

func (s *FileTokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = os.MkdirAll(filepath.Dir(s.path), 0o700)
	_ = os.WriteFile(s.path, []byte(token+"\n"), 0o600)
}

func (s *FileTokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = os.Remove(s.path)
}
