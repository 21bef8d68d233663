// ABOUTME: Storage collaborator interface for hobbies persistence
// ABOUTME: A synchronous string-keyed, byte-valued store shared by all catalog collections

package storage

import (
	"errors"
	"time"
)

// Catalog keys. Each catalog is persisted as one blob under its key.
const (
	KeyBooks   = "books"
	KeyMovies  = "movies"
	KeyRecipes = "recipes"
)

// CatalogKeys lists every catalog key in display order.
var CatalogKeys = []string{KeyBooks, KeyMovies, KeyRecipes}

// DefaultDirPerms is the mode for data directories the backends create.
const DefaultDirPerms = 0o755

// ErrNotFound is returned by Delete when the key does not exist.
var ErrNotFound = errors.New("key not found")

// KV defines the storage contract used by the collection stores.
type KV interface {
	// Get returns the value stored under key. The boolean reports presence;
	// a missing key is not an error.
	Get(key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Has reports whether a value exists under key.
	Has(key string) (bool, error)

	// Delete removes key. Returns ErrNotFound if the key does not exist.
	Delete(key string) error

	// Keys lists all stored keys in lexical order.
	Keys() ([]string, error)

	// Close releases resources.
	Close() error
}

// Compactor is implemented by backends that can reclaim space after bulk
// writes.
type Compactor interface {
	Compact() error
}

// Timestamped is implemented by backends that know when each key was last
// written. The boolean reports presence.
type Timestamped interface {
	UpdatedAt(key string) (time.Time, bool, error)
}
