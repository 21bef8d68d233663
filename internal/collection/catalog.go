// ABOUTME: Non-generic view of a collection store for name-based dispatch
// ABOUTME: Lets the CLI and MCP server handle books, movies, and recipes through one interface

package collection

import (
	"github.com/harper/hobbies/internal/models"
	"github.com/harper/hobbies/internal/query"
)

// Catalog is the domain-independent surface of a Store. Entries are returned
// as pointers to copies; mutating them does not affect the store.
type Catalog interface {
	Name() string
	Mutable() bool
	Statuses() models.Vocabulary
	Source() Source
	Len() int

	Entries(p query.Params) []models.Entry
	Find(ref string) (models.Entry, error)
	Categories() []string
	Counts() query.Counts

	MarkCompleted(id string, rating int, note, date string) (bool, error)
	MarkIncomplete(id string) (bool, error)
	Plan(id string) (bool, error)
	Delete(id string) (bool, error)
	Patch(id string, patch []byte) (models.Entry, error)
	Reset() error
	Export() ([]byte, error)
}

// Catalog returns the store's non-generic view.
func (s *Store[T, P]) Catalog() Catalog {
	return catalog[T, P]{s}
}

type catalog[T any, P EntryPtr[T]] struct {
	*Store[T, P]
}

func (c catalog[T, P]) Entries(p query.Params) []models.Entry {
	items := c.View(p)
	out := make([]models.Entry, len(items))
	for i := range items {
		out[i] = P(&items[i])
	}
	return out
}

func (c catalog[T, P]) Find(ref string) (models.Entry, error) {
	entry, err := c.Resolve(ref)
	if err != nil {
		return nil, err
	}
	return P(&entry), nil
}

func (c catalog[T, P]) Patch(id string, patch []byte) (models.Entry, error) {
	entry, err := c.Store.Patch(id, patch)
	if err != nil {
		return nil, err
	}
	return P(&entry), nil
}
