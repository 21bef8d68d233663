// ABOUTME: Tests for storage migration between backends
// ABOUTME: Covers sqlite-to-file, file-to-sqlite, missing keys, and directory checks

package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func seedCatalogBlobs(t *testing.T, src KV) map[string][]byte {
	t.Helper()

	blobs := map[string][]byte{
		KeyBooks:  []byte(`[{"id":"book-1","title":"Dune","status":"read"}]`),
		KeyMovies: []byte(`[{"id":"movie-1","title":"Arrival","status":"to-watch"}]`),
	}
	for k, v := range blobs {
		mustNoErr(t, src.Set(k, v))
	}
	return blobs
}

func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMigrateSQLiteToFile(t *testing.T) {
	src, err := NewSQLiteStore(filepath.Join(t.TempDir(), "src.db"))
	mustNoErr(t, err)
	defer src.Close()

	dst, err := NewFileStore(t.TempDir())
	mustNoErr(t, err)

	blobs := seedCatalogBlobs(t, src)

	summary, err := MigrateData(src, dst)
	mustNoErr(t, err)

	if summary.Keys != 2 {
		t.Errorf("expected 2 keys migrated, got %d", summary.Keys)
	}
	if len(summary.Skipped) != 1 || summary.Skipped[0] != KeyRecipes {
		t.Errorf("expected recipes to be skipped, got %v", summary.Skipped)
	}

	for k, want := range blobs {
		got, ok, err := dst.Get(k)
		mustNoErr(t, err)
		if !ok {
			t.Fatalf("expected %s to exist in destination", k)
		}
		if string(got) != string(want) {
			t.Errorf("%s mismatch: got %s, want %s", k, got, want)
		}
	}
}

func TestMigrateFileToSQLite(t *testing.T) {
	src, err := NewFileStore(t.TempDir())
	mustNoErr(t, err)

	dst, err := NewSQLiteStore(filepath.Join(t.TempDir(), "dst.db"))
	mustNoErr(t, err)
	defer dst.Close()

	blobs := seedCatalogBlobs(t, src)

	summary, err := MigrateData(src, dst, KeyBooks)
	mustNoErr(t, err)
	if summary.Keys != 1 {
		t.Errorf("expected 1 key migrated, got %d", summary.Keys)
	}
	if summary.Bytes != len(blobs[KeyBooks]) {
		t.Errorf("expected %d bytes, got %d", len(blobs[KeyBooks]), summary.Bytes)
	}

	has, err := dst.Has(KeyMovies)
	mustNoErr(t, err)
	if has {
		t.Error("expected movies not to be migrated when only books was requested")
	}
}

func TestIsDirNonEmpty(t *testing.T) {
	dir := t.TempDir()

	nonEmpty, err := IsDirNonEmpty(dir)
	mustNoErr(t, err)
	if nonEmpty {
		t.Error("expected empty directory")
	}

	mustNoErr(t, os.WriteFile(filepath.Join(dir, "books.json"), []byte("[]"), 0644))
	nonEmpty, err = IsDirNonEmpty(dir)
	mustNoErr(t, err)
	if !nonEmpty {
		t.Error("expected non-empty directory")
	}

	nonEmpty, err = IsDirNonEmpty(filepath.Join(dir, "missing"))
	mustNoErr(t, err)
	if nonEmpty {
		t.Error("expected missing directory to report empty")
	}
}
