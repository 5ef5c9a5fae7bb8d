package hexval

import (
	"bytes"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Value is the canonical form of arbitrary binary data. It is immutable: constructors copy their
// input and Bytes returns a copy.
type Value struct {
	b []byte
}

// FromBytes creates a Value holding a copy of b.
func FromBytes(b []byte) Value {
	return Value{b: bytes.Clone(b)}
}

// Bytes returns a copy of the underlying bytes.
func (v Value) Bytes() []byte {
	if v.b == nil {
		return []byte{}
	}

	return bytes.Clone(v.b)
}

// Len returns the number of bytes.
func (v Value) Len() int { return len(v.b) }

// String returns the "0x"-prefixed lowercase hex encoding.
//
// Implements the fmt.Stringer interface.
func (v Value) String() string {
	return hexutil.Encode(v.b)
}

// Hex returns the lowercase hex encoding without the "0x" prefix.
func (v Value) Hex() string {
	return v.String()[2:]
}

// Equal reports whether both values hold the same bytes.
func (v Value) Equal(other Value) bool {
	return bytes.Equal(v.b, other.b)
}

// IsZero reports whether every byte is zero. The empty value is zero.
func (v Value) IsZero() bool {
	for _, b := range v.b {
		if b != 0 {
			return false
		}
	}

	return true
}

// MarshalText implements the encoding.TextMarshaler interface.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := Normalize(string(text))
	if err != nil {
		return err
	}
	*v = parsed

	return nil
}

// MarshalJSON encodes the value as a hex string.
//
// Implements the json.Marshaler interface.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON accepts a hex string or a JSON number.
//
// Implements the json.Unmarshaler interface.
func (v *Value) UnmarshalJSON(data []byte) error {
	in, err := DecodeJSONScalar(data)
	if err != nil {
		return err
	}
	parsed, err := Normalize(in)
	if err != nil {
		return err
	}
	*v = parsed

	return nil
}
