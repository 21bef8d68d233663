// ABOUTME: Contract tests run against every KV backend
// ABOUTME: Covers get/set/has/delete/keys semantics for sqlite, file, and memory stores

package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func backends(t *testing.T) map[string]KV {
	t.Helper()

	sqliteStore, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create sqlite store: %v", err)
	}
	t.Cleanup(func() { sqliteStore.Close() })

	fileStore, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}

	return map[string]KV{
		"sqlite": sqliteStore,
		"file":   fileStore,
		"memory": NewMemoryStore(),
	}
}

func TestKVContract(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			// Missing key is absent, not an error
			v, ok, err := kv.Get(KeyBooks)
			if err != nil {
				t.Fatalf("Get on missing key failed: %v", err)
			}
			if ok || v != nil {
				t.Errorf("expected absent value, got %q (present=%v)", v, ok)
			}

			has, err := kv.Has(KeyBooks)
			if err != nil {
				t.Fatalf("Has failed: %v", err)
			}
			if has {
				t.Error("expected Has to be false before Set")
			}

			if err := kv.Set(KeyBooks, []byte(`[1]`)); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := kv.Set(KeyBooks, []byte(`[1,2]`)); err != nil {
				t.Fatalf("overwrite failed: %v", err)
			}

			v, ok, err = kv.Get(KeyBooks)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if !ok || string(v) != `[1,2]` {
				t.Errorf("expected [1,2], got %q (present=%v)", v, ok)
			}

			if err := kv.Set(KeyMovies, []byte(`[]`)); err != nil {
				t.Fatalf("Set movies failed: %v", err)
			}
			keys, err := kv.Keys()
			if err != nil {
				t.Fatalf("Keys failed: %v", err)
			}
			if len(keys) != 2 || keys[0] != KeyBooks || keys[1] != KeyMovies {
				t.Errorf("expected [books movies], got %v", keys)
			}

			if err := kv.Delete(KeyBooks); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if err := kv.Delete(KeyBooks); !errors.Is(err, ErrNotFound) {
				t.Errorf("expected ErrNotFound on second delete, got %v", err)
			}
		})
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()
	value := []byte("abc")
	if err := store.Set("k", value); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value[0] = 'z'

	got, _, _ := store.Get("k")
	if string(got) != "abc" {
		t.Errorf("expected stored value to be unaffected by caller mutation, got %q", got)
	}
	if store.Writes() != 1 {
		t.Errorf("expected 1 write, got %d", store.Writes())
	}
}

func TestFileStoreRejectsUnsafeKeys(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := store.Set("../escape", []byte("x")); err == nil {
		t.Error("expected error for path-traversal key")
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := store.Set(KeyRecipes, []byte(`[]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "recipes.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only recipes.json, got %v", names)
	}
}

func TestUpdatedAt(t *testing.T) {
	for name, store := range backends(t) {
		ts, ok := store.(Timestamped)
		if !ok {
			continue
		}
		t.Run(name, func(t *testing.T) {
			if _, ok, err := ts.UpdatedAt(KeyBooks); err != nil || ok {
				t.Fatalf("expected no timestamp before write, got ok=%v err=%v", ok, err)
			}
			if err := store.Set(KeyBooks, []byte(`[]`)); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			at, ok, err := ts.UpdatedAt(KeyBooks)
			if err != nil || !ok {
				t.Fatalf("expected timestamp after write, got ok=%v err=%v", ok, err)
			}
			if at.IsZero() {
				t.Error("expected non-zero timestamp")
			}
		})
	}
}

func TestSQLiteCompactKeepsData(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	if err := store.Set(KeyMovies, []byte(`[{"id":"movie-1"}]`)); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(KeyMovies, []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	if err := store.Compact(); err != nil {
		t.Fatalf("Compact failed: %v", err)
	}
	data, ok, err := store.Get(KeyMovies)
	if err != nil || !ok || string(data) != `[]` {
		t.Errorf("after compact got %q ok=%v err=%v", data, ok, err)
	}
}

func TestNewFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	if _, err := NewFileStore(dir); err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&DefaultDirPerms != info.Mode().Perm() {
		t.Errorf("directory mode %v exceeds %v", info.Mode().Perm(), os.FileMode(DefaultDirPerms))
	}
}
