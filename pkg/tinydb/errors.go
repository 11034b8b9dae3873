package tinydb

import "errors"

// Database operation errors. Filesystem failures are returned wrapped
// around the underlying os error rather than mapped to a sentinel.
var (
	// ErrDupeFound reports an insert of a record that already exists
	// while the strict duplicate policy is enabled.
	ErrDupeFound = errors.New("duplicate record exists")

	// ErrItemNotFound reports a lookup, removal, or query that matched
	// no record.
	ErrItemNotFound = errors.New("record not found")

	// ErrDatabaseNotFound reports a Load path that does not exist.
	ErrDatabaseNotFound = errors.New("database file not found")

	// ErrBadDBName reports a LoadOrCreate path with no extractable
	// file stem to use as the database label.
	ErrBadDBName = errors.New("cannot derive database name from path")

	// ErrTypeMismatch reports a dump file whose records were written
	// for a different record type than the one being loaded.
	ErrTypeMismatch = errors.New("database file holds a different record type")
)
