package tinydb

import (
	"iter"

	"github.com/mesh-intelligence/tinydb/pkg/codec"
)

// Database is an in-memory deduplicated collection of T values with
// dump/reload support. Records are unique by full-value identity; the
// comparable constraint supplies the hashing and equality the set
// relies on. Iteration order over records is unspecified.
type Database[T comparable] struct {
	// Label is the human-readable database name. It doubles as the
	// basis for the default save file, "<Label>.tinydb", when SavePath
	// is empty.
	Label string

	// SavePath, when non-empty, is used verbatim as the dump/load
	// location instead of the label-derived default.
	SavePath string

	// StrictDupes controls re-insertion of an existing record: when
	// true Add returns ErrDupeFound, when false the insert is a silent
	// membership no-op. Neither setting ever stores a duplicate.
	StrictDupes bool

	items map[T]struct{}
	codec codec.Codec
}

// Option adjusts database construction and loading.
type Option func(*settings)

type settings struct {
	codec codec.Codec
}

// WithCodec selects the codec used by Dump and Load. The default is
// codec.NewGob(). A database must be loaded with the codec it was
// dumped with.
func WithCodec(c codec.Codec) Option {
	return func(s *settings) {
		s.codec = c
	}
}

func newSettings(opts []Option) settings {
	s := settings{codec: codec.NewGob()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// New creates an empty database with the given metadata. An empty
// savePath means Dump writes to "<label>.tinydb" in the process working
// directory.
func New[T comparable](label, savePath string, strictDupes bool, opts ...Option) *Database[T] {
	s := newSettings(opts)
	return &Database[T]{
		Label:       label,
		SavePath:    savePath,
		StrictDupes: strictDupes,
		items:       make(map[T]struct{}),
		codec:       s.codec,
	}
}

// Add inserts a record. When an equal record already exists the set
// never grows: under StrictDupes the insert fails with ErrDupeFound,
// otherwise it succeeds without changing membership.
func (db *Database[T]) Add(item T) error {
	if db.items == nil {
		db.items = make(map[T]struct{})
	}
	if db.StrictDupes {
		if _, exists := db.items[item]; exists {
			return ErrDupeFound
		}
	}
	db.items[item] = struct{}{}
	return nil
}

// Remove deletes the record equal to item. Returns ErrItemNotFound,
// leaving the set unchanged, when no such record exists.
func (db *Database[T]) Remove(item T) error {
	if _, exists := db.items[item]; !exists {
		return ErrItemNotFound
	}
	delete(db.items, item)
	return nil
}

// Update replaces old with replacement by removing old and then adding
// replacement, returning the first error encountered. The two steps are
// not atomic: when old is absent nothing changes, but when the removal
// succeeds and the add then fails under StrictDupes, old is already
// gone and replacement has not been inserted.
func (db *Database[T]) Update(old, replacement T) error {
	if err := db.Remove(old); err != nil {
		return err
	}
	return db.Add(replacement)
}

// Contains reports whether a record equal to item is present.
func (db *Database[T]) Contains(item T) bool {
	_, exists := db.items[item]
	return exists
}

// Len returns the number of records.
func (db *Database[T]) Len() int {
	return len(db.items)
}

// All returns an iterator over every record, in unspecified order.
// The database must not be mutated during iteration.
func (db *Database[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range db.items {
			if !yield(item) {
				return
			}
		}
	}
}
