package cbpack

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile atomically writes a packed wordlist. It writes to a temp file in
// the destination directory and renames on success, so an aborted export
// never leaves a truncated wordlist behind.
func WriteFile(path string, tiers Tiers) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp wordlist file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := Encode(tmp, tiers); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding wordlist: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing wordlist file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing wordlist file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming wordlist file: %w", err)
	}
	return nil
}

// ReadFile loads a packed wordlist from disk.
func ReadFile(path string) (Tiers, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wordlist file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
