package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDBPath resolves the database location: DELIBERATE_DB env var if
// set, otherwise the XDG data directory.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("DELIBERATE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "deliberate", "deliberate.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
