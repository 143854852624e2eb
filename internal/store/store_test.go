package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestLoadMissingFileCreatesEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "records.json")

	got, err := Load[record](path)
	if err != nil {
		t.Fatalf("load of missing file returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(got))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("backing file was not created: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("backing file should start empty, has %d bytes", info.Size())
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := Load[record](path)
	if err != nil {
		t.Fatalf("load of empty file returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(got))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "records.json")
	want := []record{{ID: "1", Name: "alpha"}, {ID: "2", Name: "beta"}}

	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load[record](path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestSaveOverwritesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	if err := Save(path, []record{{ID: "1"}, {ID: "2"}, {ID: "3"}}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := Save(path, []record{{ID: "9"}}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := Load[record](path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "9" {
		t.Fatalf("save should rewrite the full file, got %+v", got)
	}
}

func TestLoadCorruptFileReturnsEmptyAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := Load[record](path)
	if err == nil {
		t.Fatal("expected an error for unparseable content")
	}
	if !IsCorrupt(err) {
		t.Fatalf("error should wrap ErrCorrupt, got %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("caller must receive an empty usable collection, got %+v", got)
	}
}

func TestBackupMovesFileAside(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := Backup(path); err != nil {
		t.Fatalf("backup: %v", err)
	}
	data, err := os.ReadFile(path + ".bak")
	if err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
	if string(data) != "{broken" {
		t.Fatalf("backup content lost: %q", data)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("original should be moved, stat err = %v", err)
	}
}

func TestBackupMissingFileIsNoop(t *testing.T) {
	if err := Backup(filepath.Join(t.TempDir(), "absent.json")); err != nil {
		t.Fatalf("backup of missing file should be a no-op, got %v", err)
	}
}
