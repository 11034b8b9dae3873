package tinydb

// QueryItem scans the database and returns the first record whose
// selected field equals want. Scan order is unspecified, so when several
// records share the selected value any one of them may be returned.
// Returns ErrItemNotFound when no record matches.
//
// These are package-level functions rather than methods because the
// selected field's type Q is a separate type parameter.
func QueryItem[T, Q comparable](db *Database[T], selector func(T) Q, want Q) (T, error) {
	for item := range db.items {
		if selector(item) == want {
			return item, nil
		}
	}
	var zero T
	return zero, ErrItemNotFound
}

// Query returns every record whose selected field equals want, in
// unspecified order. An empty result is reported as ErrItemNotFound
// rather than an empty slice.
func Query[T, Q comparable](db *Database[T], selector func(T) Q, want Q) ([]T, error) {
	var matches []T
	for item := range db.items {
		if selector(item) == want {
			matches = append(matches, item)
		}
	}
	if len(matches) == 0 {
		return nil, ErrItemNotFound
	}
	return matches, nil
}
