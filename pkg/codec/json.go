package codec

import "encoding/json"

// NewJSON returns a Codec backed by encoding/json. Dumps produced with
// it are human-inspectable at the cost of larger files. A database
// dumped with one codec must be loaded with the same codec.
func NewJSON() Codec {
	return jsonCodec{}
}

type jsonCodec struct{}

func (jsonCodec) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
