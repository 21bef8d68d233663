// ABOUTME: Charm KV client wrapper implementing the hobbies storage collaborator
// ABOUTME: Short-lived connections via the transactional Do API, with optional cloud sync

package charm

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"

	"github.com/harper/hobbies/internal/storage"
)

const (
	// CatalogPrefix namespaces catalog blobs in the KV store.
	CatalogPrefix = "catalog:"

	// Default Charm server
	DefaultCharmHost = "charm.2389.dev"

	// DBName is the name of the charm kv database for hobbies.
	DBName = "hobbies"
)

// Client holds configuration for KV operations.
// It does NOT hold a persistent connection: each operation opens the
// database, performs the operation, and closes it.
type Client struct {
	dbName   string
	autoSync bool
}

// Compile-time check that Client implements storage.KV.
var _ storage.KV = (*Client)(nil)

// NewClient creates a new client.
func NewClient() (*Client, error) {
	// Set Charm server before operations
	if os.Getenv("CHARM_HOST") == "" {
		os.Setenv("CHARM_HOST", DefaultCharmHost)
	}

	return &Client{
		dbName:   DBName,
		autoSync: true,
	}, nil
}

// DoReadOnly executes a function with read-only database access.
func (c *Client) DoReadOnly(fn func(k *kv.KV) error) error {
	return kv.DoReadOnly(c.dbName, fn)
}

// Do executes a function with write access to the database.
func (c *Client) Do(fn func(k *kv.KV) error) error {
	return kv.Do(c.dbName, func(k *kv.KV) error {
		if err := fn(k); err != nil {
			return err
		}
		if c.autoSync {
			return k.Sync()
		}
		return nil
	})
}

// SetAutoSync enables or disables automatic sync after writes.
func (c *Client) SetAutoSync(enabled bool) {
	c.autoSync = enabled
}

// Sync manually triggers a sync with the Charm server.
func (c *Client) Sync() error {
	return kv.Do(c.dbName, func(k *kv.KV) error {
		return k.Sync()
	})
}

// ID returns the user's Charm ID for status display.
func (c *Client) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", err
	}
	return cc.ID()
}

// Close is a no-op: connections are closed after each operation.
func (c *Client) Close() error {
	return nil
}

func catalogKey(key string) []byte {
	return []byte(CatalogPrefix + key)
}

// Get retrieves the blob stored under key.
func (c *Client) Get(key string) ([]byte, bool, error) {
	var (
		data  []byte
		found bool
	)
	err := c.DoReadOnly(func(k *kv.KV) error {
		v, err := k.Get(catalogKey(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get %s: %w", key, err)
		}
		data, found = v, v != nil
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return data, found, nil
}

// Set stores the blob under key and syncs if auto-sync is enabled.
func (c *Client) Set(key string, value []byte) error {
	return c.Do(func(k *kv.KV) error {
		if err := k.Set(catalogKey(key), value); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		return nil
	})
}

// Has reports whether key exists.
func (c *Client) Has(key string) (bool, error) {
	_, ok, err := c.Get(key)
	return ok, err
}

// Delete removes key.
func (c *Client) Delete(key string) error {
	ok, err := c.Has(key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, key)
	}
	return c.Do(func(k *kv.KV) error {
		if err := k.Delete(catalogKey(key)); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
		return nil
	})
}

// Keys lists the catalog keys present in the store.
func (c *Client) Keys() ([]string, error) {
	var keys []string
	err := c.DoReadOnly(func(k *kv.KV) error {
		raw, err := k.Keys()
		if err != nil {
			return fmt.Errorf("list keys: %w", err)
		}
		for _, key := range raw {
			if name, ok := strings.CutPrefix(string(key), CatalogPrefix); ok {
				keys = append(keys, name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

// GetCharmClient returns a new Charm client for low-level operations.
func GetCharmClient() (*client.Client, error) {
	return client.NewClientWithDefaults()
}

// NewTestClientWithDBName creates a Client for testing with a custom database name.
// Use this when you need isolated test databases.
func NewTestClientWithDBName(dbName string, autoSync bool) *Client {
	return &Client{
		dbName:   dbName,
		autoSync: autoSync,
	}
}
