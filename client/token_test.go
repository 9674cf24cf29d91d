package client

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryTokenStore(t *testing.T) {
	s := NewMemoryTokenStore()
	if _, ok := s.Token(); ok {
		t.Fatalf("fresh store should be empty")
	}
	s.SetToken("abc")
	tok, ok := s.Token()
	if !ok || tok != "abc" {
		t.Fatalf("Token() = %q, %v", tok, ok)
	}
	s.Clear()
	if _, ok := s.Token(); ok {
		t.Fatalf("store not cleared")
	}
}

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	s := NewFileTokenStore(path)

	if _, ok := s.Token(); ok {
		t.Fatalf("missing file should read as empty")
	}

	s.SetToken("abc")
	tok, ok := s.Token()
	if !ok || tok != "abc" {
		t.Fatalf("Token() = %q, %v", tok, ok)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("token file mode %v, want 0600", info.Mode().Perm())
	}

	// A second store over the same path sees the persisted token.
	s2 := NewFileTokenStore(path)
	if tok, ok := s2.Token(); !ok || tok != "abc" {
		t.Fatalf("persisted token not shared: %q %v", tok, ok)
	}

	s.Clear()
	if _, ok := s2.Token(); ok {
		t.Fatalf("clear did not remove the file")
	}
}
