// ABOUTME: Data migration between hobbies storage backends
// ABOUTME: Copies catalog blobs from source to destination store

package storage

import (
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated keys.
type MigrateSummary struct {
	Keys    int
	Bytes   int
	Skipped []string
}

// MigrateData copies the given keys from src to dst. Keys missing in src are
// recorded as skipped rather than treated as errors. When keys is empty every
// catalog key is copied.
func MigrateData(src, dst KV, keys ...string) (*MigrateSummary, error) {
	if len(keys) == 0 {
		keys = CatalogKeys
	}
	summary := &MigrateSummary{}

	for _, key := range keys {
		value, ok, err := src.Get(key)
		if err != nil {
			return nil, fmt.Errorf("read source %s: %w", key, err)
		}
		if !ok {
			summary.Skipped = append(summary.Skipped, key)
			continue
		}
		if err := dst.Set(key, value); err != nil {
			return nil, fmt.Errorf("write destination %s: %w", key, err)
		}
		summary.Keys++
		summary.Bytes += len(value)
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
