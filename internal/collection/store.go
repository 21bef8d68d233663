// ABOUTME: Generic collection store that owns one catalog's list and keeps it persisted
// ABOUTME: Loads from the storage collaborator or the seed dataset; every mutation writes the full list

package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/harper/hobbies/internal/models"
	"github.com/harper/hobbies/internal/query"
	"github.com/harper/hobbies/internal/storage"
)

// MinPrefixLength is the shortest id prefix Resolve accepts.
const MinPrefixLength = 6

var (
	// ErrNotFound is returned when no entry matches an id.
	ErrNotFound = errors.New("entry not found")
	// ErrAmbiguous is returned when an id prefix matches more than one entry.
	ErrAmbiguous = errors.New("ambiguous id prefix")
	// ErrUnsupported is returned for operations a domain does not offer.
	ErrUnsupported = errors.New("operation not supported")
	// ErrLifecycleField is returned when a patch touches the status or
	// completion fields in a way only the mark and plan operations may.
	ErrLifecycleField = errors.New("field changes only through mark completed, mark incomplete, or plan")
)

// Domain describes one catalog: where it is persisted and how it starts out.
type Domain[T any] struct {
	// Name is the catalog name and its storage key ("books").
	Name string
	// IDPrefix is prepended to generated ids ("book").
	IDPrefix string
	// Seed returns a fresh copy of the bundled dataset.
	Seed func() ([]T, error)
	// Mutable reports whether Add and Delete are offered.
	Mutable bool
}

// Source records where the current list came from.
type Source string

const (
	SourcePersisted Source = "persisted"
	SourceSeed      Source = "seed"
)

// EntryPtr constrains P to the pointer type of T carrying the entry methods.
// Clone must return a copy that shares no slices or pointers with the
// receiver.
type EntryPtr[T any] interface {
	*T
	models.Entry
	Clone() T
}

// Store holds the authoritative list for one domain. T is the entry struct,
// P its pointer type carrying the Entry methods.
type Store[T any, P EntryPtr[T]] struct {
	mu     sync.RWMutex
	kv     storage.KV
	domain Domain[T]
	items  []T
	source Source
	log    zerolog.Logger

	now   func() time.Time
	newID func() string
}

// Option customizes a Store.
type Option func(*options)

type options struct {
	now   func() time.Time
	newID func() string
}

// WithClock overrides the time source used for dateAdded.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator overrides the random part of generated ids.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) { o.newID = fn }
}

// Open builds a store for domain and loads its initial list. Loading never
// writes to kv.
func Open[T any, P EntryPtr[T]](kv storage.KV, domain Domain[T], logger zerolog.Logger, opts ...Option) (*Store[T, P], error) {
	o := options{now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store[T, P]{
		kv:     kv,
		domain: domain,
		log:    logger.With().Str("catalog", domain.Name).Logger(),
		now:    o.now,
		newID:  o.newID,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store[T, P]) load() error {
	data, ok, err := s.kv.Get(s.domain.Name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", s.domain.Name, err)
	}

	if ok {
		var items []T
		err := json.Unmarshal(data, &items)
		if err == nil {
			s.items = items
			s.source = SourcePersisted
			s.log.Debug().Int("entries", len(items)).Msg("loaded persisted catalog")
			return nil
		}
		s.log.Warn().Err(err).Msg("persisted catalog is unreadable, falling back to seed")
	}

	items, err := s.domain.Seed()
	if err != nil {
		return fmt.Errorf("failed to load %s seed: %w", s.domain.Name, err)
	}
	s.items = items
	s.source = SourceSeed
	s.log.Debug().Int("entries", len(items)).Msg("loaded seed catalog")
	return nil
}

// Name returns the catalog name.
func (s *Store[T, P]) Name() string {
	return s.domain.Name
}

// Mutable reports whether the catalog supports Add and Delete.
func (s *Store[T, P]) Mutable() bool {
	return s.domain.Mutable
}

// Source reports whether the current list was loaded from storage or seed.
func (s *Store[T, P]) Source() Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// Statuses returns the domain's status vocabulary.
func (s *Store[T, P]) Statuses() models.Vocabulary {
	var zero T
	return P(&zero).Statuses()
}

// List returns a copy of the full list in stored order.
func (s *Store[T, P]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll[T, P](s.items)
}

// Len returns the number of entries.
func (s *Store[T, P]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the entry with exactly this id.
func (s *Store[T, P]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return P(&s.items[i]).Clone(), nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Resolve returns the entry whose id equals ref, or else the single entry
// whose id starts with ref (at least MinPrefixLength characters).
func (s *Store[T, P]) Resolve(ref string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	if i := s.indexOf(ref); i >= 0 {
		return P(&s.items[i]).Clone(), nil
	}
	if len(ref) < MinPrefixLength {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}

	match := -1
	for i := range s.items {
		if strings.HasPrefix(P(&s.items[i]).EntryID(), ref) {
			if match >= 0 {
				return zero, fmt.Errorf("%w: %s", ErrAmbiguous, ref)
			}
			match = i
		}
	}
	if match < 0 {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return P(&s.items[match]).Clone(), nil
}

// View runs the view query over the current list.
func (s *Store[T, P]) View(p query.Params) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := query.Apply[T, P](s.items, p)
	for i := range out {
		out[i] = P(&out[i]).Clone()
	}
	return out
}

// Categories lists the catalog's category values, led by the "all" sentinel.
func (s *Store[T, P]) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return query.Categories[T, P](s.items)
}

// Counts tallies the catalog by tab.
func (s *Store[T, P]) Counts() query.Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return query.Count[T, P](s.items)
}

// Add assigns entry a fresh id and the current time as dateAdded, appends it,
// and persists. Returns the stored entry.
func (s *Store[T, P]) Add(entry T) (T, error) {
	if !s.domain.Mutable {
		var zero T
		return zero, fmt.Errorf("add %s: %w", s.domain.Name, ErrUnsupported)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := P(&entry)
	id := s.domain.IDPrefix + "-" + s.newID()
	for s.indexOf(id) >= 0 {
		id = s.domain.IDPrefix + "-" + s.newID()
	}
	p.SetEntryID(id)
	p.SetDateAdded(s.now().UTC())

	err := s.commit(func(items []T) []T {
		return append(items, p.Clone())
	})
	if err != nil {
		var zero T
		return zero, err
	}
	s.log.Info().Str("id", id).Str("title", p.DisplayTitle()).Msg("added entry")
	return entry, nil
}

// Update applies fn to the entry matching id and persists. fn works on a
// private copy, so nothing it changes is visible until the write succeeds.
// fn must not change the id or dateAdded. An unknown id leaves the list unchanged but
// still persists; the returned bool reports whether an entry matched.
func (s *Store[T, P]) Update(id string, fn func(P)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	err := s.commit(func(items []T) []T {
		if i := indexIn[T, P](items, id); i >= 0 {
			fn(P(&items[i]))
			found = true
		}
		return items
	})
	return found, err
}

// Patch merges a JSON object of fields into the entry matching id. Fields
// absent from patch keep their values; id and dateAdded cannot be changed.
// Completion fields are rejected, and status may only move an entry that is
// not completed to a pending status.
func (s *Store[T, P]) Patch(id string, patch []byte) (T, error) {
	var zero, check T
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(patch, &fields); err != nil {
		return zero, fmt.Errorf("invalid patch: %w", err)
	}
	if err := json.Unmarshal(patch, &check); err != nil {
		return zero, fmt.Errorf("invalid patch: %w", err)
	}
	for _, key := range P(&check).CompletionFields() {
		if _, ok := fields[key]; ok {
			return zero, fmt.Errorf("%w: %s", ErrLifecycleField, key)
		}
	}

	var updated T
	var mergeErr error
	found, err := s.Update(id, func(e P) {
		next := e.Clone()
		if err := json.Unmarshal(patch, &next); err != nil {
			mergeErr = err
			return
		}
		if _, ok := fields["status"]; ok {
			vocab := e.Statuses()
			to := P(&next).CurrentStatus()
			if e.CurrentStatus() == vocab.Completed || !vocab.IsPending(to) {
				mergeErr = fmt.Errorf("%w: status %q to %q", ErrLifecycleField, e.CurrentStatus(), to)
				return
			}
		}
		P(&next).SetEntryID(e.EntryID())
		P(&next).SetDateAdded(e.AddedAt())
		*e = next
		updated = P(&next).Clone()
	})
	switch {
	case err != nil:
		return zero, err
	case errors.Is(mergeErr, ErrLifecycleField):
		return zero, mergeErr
	case mergeErr != nil:
		return zero, fmt.Errorf("invalid patch: %w", mergeErr)
	case !found:
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return updated, nil
}

// Delete removes the entry matching id and persists. An unknown id leaves
// the list unchanged.
func (s *Store[T, P]) Delete(id string) (bool, error) {
	if !s.domain.Mutable {
		return false, fmt.Errorf("delete %s: %w", s.domain.Name, ErrUnsupported)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	err := s.commit(func(items []T) []T {
		i := indexIn[T, P](items, id)
		if i < 0 {
			return items
		}
		found = true
		return append(items[:i], items[i+1:]...)
	})
	if err == nil && found {
		s.log.Info().Str("id", id).Msg("deleted entry")
	}
	return found, err
}

// MarkCompleted moves the entry to the completed status with rating, note,
// and completion date. The rating is stored as given.
func (s *Store[T, P]) MarkCompleted(id string, rating int, note, date string) (bool, error) {
	return s.Update(id, func(e P) {
		e.MarkCompleted(rating, note, date)
	})
}

// MarkIncomplete moves the entry back to the not-started status and clears
// rating, note, and completion date.
func (s *Store[T, P]) MarkIncomplete(id string) (bool, error) {
	return s.Update(id, func(e P) {
		e.MarkIncomplete()
	})
}

// Plan puts the entry on the to-do list. Completed entries are reversed the
// same way as MarkIncomplete; pending entries are left untouched.
func (s *Store[T, P]) Plan(id string) (bool, error) {
	return s.Update(id, func(e P) {
		vocab := e.Statuses()
		switch {
		case e.CurrentStatus() == vocab.Completed:
			e.MarkIncomplete()
		case !vocab.IsPending(e.CurrentStatus()):
			e.SetStatus(vocab.NotStarted)
		}
	})
}

// Reset replaces the list with a fresh copy of the seed dataset and persists.
func (s *Store[T, P]) Reset() error {
	items, err := s.domain.Seed()
	if err != nil {
		return fmt.Errorf("failed to load %s seed: %w", s.domain.Name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(func([]T) []T { return items }); err != nil {
		return err
	}
	s.source = SourceSeed
	s.log.Info().Int("entries", len(items)).Msg("reset catalog to seed")
	return nil
}

// Export returns the catalog serialized the same way it is persisted.
func (s *Store[T, P]) Export() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return encode(s.items)
}

// commit applies fn to a working copy of the list, writes the result, and
// only then makes it current. Callers hold s.mu.
func (s *Store[T, P]) commit(fn func([]T) []T) error {
	next := fn(cloneAll[T, P](s.items))

	data, err := encode(next)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.domain.Name, err)
	}
	if err := s.kv.Set(s.domain.Name, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.domain.Name, err)
	}

	s.items = next
	s.log.Debug().Int("entries", len(next)).Int("bytes", len(data)).Msg("persisted catalog")
	return nil
}

func (s *Store[T, P]) indexOf(id string) int {
	return indexIn[T, P](s.items, id)
}

func indexIn[T any, P EntryPtr[T]](items []T, id string) int {
	for i := range items {
		if P(&items[i]).EntryID() == id {
			return i
		}
	}
	return -1
}

func cloneAll[T any, P EntryPtr[T]](items []T) []T {
	out := make([]T, len(items))
	for i := range items {
		out[i] = P(&items[i]).Clone()
	}
	return out
}

func encode[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}
