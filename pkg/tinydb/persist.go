package tinydb

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"

	"github.com/mesh-intelligence/tinydb/internal/paths"
	"github.com/mesh-intelligence/tinydb/pkg/codec"
)

// envelope is the persisted representation of a database: its metadata,
// a tag naming the record type it was dumped with, and every record.
type envelope[T comparable] struct {
	Label       string
	SavePath    string
	StrictDupes bool
	Type        string
	Items       []T
}

// typeTag returns the package-qualified name of T, recorded in dumps so
// that loads with a different record type are rejected instead of
// silently decoding into the wrong shape.
func typeTag[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// Dump serializes the whole database to its effective save path: the
// explicit SavePath when set, otherwise "<Label>.tinydb" in the working
// directory. The file is written to a temp file and renamed into place
// so an existing dump is never left half-overwritten.
//
// Filesystem failures are returned wrapped. An encode failure means the
// record type cannot be represented by the configured codec at all,
// which is a caller bug rather than a runtime condition, and panics.
func (db *Database[T]) Dump() error {
	env := envelope[T]{
		Label:       db.Label,
		SavePath:    db.SavePath,
		StrictDupes: db.StrictDupes,
		Type:        typeTag[T](),
		Items:       make([]T, 0, len(db.items)),
	}
	for item := range db.items {
		env.Items = append(env.Items, item)
	}

	c := db.codec
	if c == nil {
		c = codec.NewGob()
	}
	data, err := c.Encode(env)
	if err != nil {
		panic(fmt.Sprintf("tinydb: encoding database %q: %v", db.Label, err))
	}
	return writeFileAtomic(paths.Resolve(db.SavePath, db.Label), data)
}

// Load reads the dump file at path and reconstructs the database it
// holds, including its label, save path, and duplicate policy. Returns
// ErrDatabaseNotFound when path does not exist, ErrTypeMismatch when
// the file was dumped with a different record type, and a wrapped
// decode error when the bytes are not a valid dump for the configured
// codec.
func Load[T comparable](path string, opts ...Option) (*Database[T], error) {
	s := newSettings(opts)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDatabaseNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading database file %s: %w", path, err)
	}

	var env envelope[T]
	if err := s.codec.Decode(data, &env); err != nil {
		return nil, fmt.Errorf("decoding database file %s: %w", path, err)
	}
	if want := typeTag[T](); env.Type != want {
		return nil, fmt.Errorf("%w: file holds %q, loading as %q", ErrTypeMismatch, env.Type, want)
	}

	db := &Database[T]{
		Label:       env.Label,
		SavePath:    env.SavePath,
		StrictDupes: env.StrictDupes,
		items:       make(map[T]struct{}, len(env.Items)),
		codec:       s.codec,
	}
	for _, item := range env.Items {
		db.items[item] = struct{}{}
	}
	return db, nil
}

// LoadOrCreate loads the database at path when the file exists (the
// strictDupes argument is then ignored, since the dump carries its own
// policy). Otherwise it creates a new empty database whose label is the
// path's file stem and whose save path is the given path, so a later
// Dump writes back to the same location. Returns ErrBadDBName when no
// stem can be extracted from path.
func LoadOrCreate[T comparable](path string, strictDupes bool, opts ...Option) (*Database[T], error) {
	if _, err := os.Stat(path); err == nil {
		return Load[T](path, opts...)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking database file %s: %w", path, err)
	}

	stem := paths.Stem(path)
	if stem == "" {
		return nil, fmt.Errorf("%w: %q", ErrBadDBName, path)
	}
	return New[T](stem, path, strictDupes, opts...), nil
}

// writeFileAtomic writes data to path using the temp-file, sync, rename
// pattern so the destination is replaced in a single step.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tinydb-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing database: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
