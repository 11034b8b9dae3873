// Package codec defines the byte-level encoding used when a database is
// dumped to or loaded from a file, together with the built-in gob and
// JSON implementations. The database core treats a Codec as an opaque
// serialize/deserialize service; any implementation that round-trips the
// persisted envelope can be plugged in.
package codec

// Codec serializes values to bytes and reconstructs them.
type Codec interface {
	// Encode serializes v into a byte slice.
	Encode(v any) ([]byte, error)

	// Decode deserializes data into the value pointed to by v.
	// Returns an error when the bytes are not a valid encoding of v's type.
	Decode(data []byte, v any) error
}
