// Package store implements the file-backed record store underneath the
// repositories. A store file is a JSON array of records of one type.
// "File absent" and "file empty" are ordinary states, not errors: both
// load as an empty collection, and a missing file is created on first
// touch so every later run sees the same layout.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCorrupt wraps parse failures on a non-empty store file. The caller
// gets an empty collection alongside the error and decides whether the
// damaged file needs to be preserved before the next Save.
var ErrCorrupt = errors.New("store file is corrupt")

// IsCorrupt reports whether err came from a parse failure rather than
// an I/O problem.
func IsCorrupt(err error) bool { return errors.Is(err, ErrCorrupt) }

// Load reads the JSON array at path into a slice of T.
// A missing file is created empty (parent directories included) and an
// empty slice is returned. A zero-length file also yields an empty
// slice without parsing. A non-empty file that fails to parse yields an
// empty slice and an error wrapping ErrCorrupt.
func Load[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create store dir for %s: %w", path, err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return nil, fmt.Errorf("create store file %s: %w", path, err)
		}
		return []T{}, nil
	}
	if len(data) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return []T{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save serializes records and rewrites the file at path. The whole
// in-memory collection is the source of truth for each write; there is
// no incremental append. The write goes to a temp file in the same
// directory first and is renamed into place, so a crash mid-write never
// leaves a half-written store behind.
func Save[T any](path string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir for %s: %w", path, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp store file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Backup moves the current file at path aside to path+".bak",
// overwriting any previous backup. Used before the first Save after a
// corrupt Load so unparseable content is preserved rather than
// silently destroyed. A missing source file is not an error.
func Backup(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.Rename(path, path+".bak"); err != nil {
		return fmt.Errorf("backup %s: %w", path, err)
	}
	return nil
}
