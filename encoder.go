package frcmp

import (
	"github.com/pthm/frcmp/lib/encoding"
)

// Encoder is the props codec. See lib/encoding for the wire format.
type Encoder = encoding.Encoder

// Encodable is implemented by props types to define their wire shape.
// Keep keys short and stable; they travel in URLs.
type Encodable = encoding.Encodable

// Decodable is the inverse of Encodable. Implementations must tolerate
// missing keys so old URLs keep decoding across deploys.
type Decodable = encoding.Decodable

// NewEncoder creates a props encoder with the given encryption key.
// The registry creates one for all of its components; reach for this
// directly only when encoding props outside the component system.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// PropInt reads an integer prop in DecodeProps. The codec decodes wire
// integers into the smallest type that fits, so assert through this
// instead of on int:
//
//	if v, ok := frcmp.PropInt(data, "count"); ok {
//	    p.Count = v
//	}
func PropInt(data map[string]any, key string) (int, bool) {
	return encoding.Int(data, key)
}

// PropString reads a string prop in DecodeProps.
func PropString(data map[string]any, key string) (string, bool) {
	return encoding.String(data, key)
}

// PropBool reads a boolean prop in DecodeProps.
func PropBool(data map[string]any, key string) (bool, bool) {
	return encoding.Bool(data, key)
}
