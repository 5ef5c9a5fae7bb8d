package sized

import (
	"encoding/json"

	"github.com/smartcontractkit/eth-hextypes/hexval"
)

// Bytes is a validated byte value of a bytes family. Its length always equals the family width.
type Bytes struct {
	v hexval.Value
}

// Bytes returns a copy of the underlying bytes.
func (b Bytes) Bytes() []byte { return b.v.Bytes() }

// Value returns the value as a hexval.Value.
func (b Bytes) Value() hexval.Value { return b.v }

// Len returns the number of bytes.
func (b Bytes) Len() int { return b.v.Len() }

// String returns the canonical hex string.
//
// Implements the fmt.Stringer interface.
func (b Bytes) String() string { return b.v.String() }

// Equal reports whether both values hold the same bytes.
func (b Bytes) Equal(other Bytes) bool { return b.v.Equal(other.v) }

// MarshalText implements the encoding.TextMarshaler interface.
func (b Bytes) MarshalText() ([]byte, error) { return b.v.MarshalText() }

// MarshalJSON implements the json.Marshaler interface.
func (b Bytes) MarshalJSON() ([]byte, error) { return json.Marshal(b.String()) }

// NewBytes returns a family validating into Bytes of the given width. A size of zero creates the
// unbounded family.
func NewBytes(size int, opts ...Option) *Family[Bytes] {
	o := applyOptions(sizedName("HexBytes", size), opts)
	schema := hexval.SizedSchema("string", size)
	schema.MinLength, schema.MaxLength = size, size

	return &Family[Bytes]{
		name:   o.name,
		kind:   KindBytes,
		size:   size,
		pad:    o.pad,
		schema: schema,
		validate: func(f *Family[Bytes], in any) (Bytes, error) {
			return validateBytes(in, f.size, f.pad)
		},
		serialize: func(f *Family[Bytes], v Bytes) (string, error) {
			if f.size > 0 && v.Len() != f.size {
				return "", hexval.NewSizeError(f.size, v.String())
			}

			return v.String(), nil
		},
	}
}

// NewStr returns a family validating into canonical hex strings of the given width. A size of
// zero creates the unbounded family.
func NewStr(size int, opts ...Option) *Family[string] {
	o := applyOptions(sizedName("HexStr", size), opts)
	schema := hexval.SizedSchema("string", size)
	if size > 0 {
		schema.MinLength, schema.MaxLength = size*2+2, size*2+2
	}

	return &Family[string]{
		name:   o.name,
		kind:   KindString,
		size:   size,
		pad:    o.pad,
		schema: schema,
		validate: func(f *Family[string], in any) (string, error) {
			b, err := validateBytes(in, f.size, f.pad)
			if err != nil {
				return "", err
			}

			return b.String(), nil
		},
		serialize: func(f *Family[string], v string) (string, error) {
			return hexval.CoerceHex(v, f.size, f.pad)
		},
	}
}

func validateBytes(in any, size int, pad hexval.PadDirection) (Bytes, error) {
	if n, ok := hexval.IntegerFromAny(in); ok && n.Sign() < 0 {
		return Bytes{}, hexval.NewSizeError(size, in)
	}
	v, err := hexval.Normalize(in)
	if err != nil {
		return Bytes{}, err
	}
	coerced, err := hexval.CoerceValue(v, size, pad)
	if err != nil {
		return Bytes{}, hexval.NewSizeError(size, in)
	}

	return Bytes{v: coerced}, nil
}
