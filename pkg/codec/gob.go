package codec

import (
	"bytes"
	"encoding/gob"
)

// NewGob returns a Codec backed by Go's gob binary format. Gob streams
// are self-describing and length-prefix strings and sequences, which
// makes them stable across re-encodings of the same types. This is the
// default database codec.
func NewGob() Codec {
	return gobCodec{}
}

type gobCodec struct{}

func (gobCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (gobCodec) Decode(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
