// Package tinydb implements a small in-memory collection store for a
// single record type, with whole-database dump and reload through a
// binary codec.
//
// A Database[T] holds a deduplicated set of T values keyed by full-value
// identity (T must be comparable). Databases are created empty with New,
// reconstructed from a dump file with Load, or created-or-loaded with
// LoadOrCreate. Records are mutated in place with Add, Remove, and
// Update, inspected with Contains, Len, and All, and searched with the
// package-level Query and QueryItem functions. Dump serializes the full
// database (label, save path, duplicate policy, and every record) to its
// save file.
//
// The store is single-owner: no internal locking exists, and callers
// sharing a Database across goroutines must impose their own mutual
// exclusion.
package tinydb
