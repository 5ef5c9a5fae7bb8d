package sized

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"

	"github.com/smartcontractkit/eth-hextypes/hexval"
)

// Int is a validated integer of an integer family. It is immutable.
type Int struct {
	n      *big.Int
	size   int
	signed bool
}

// Big returns a copy of the integer value.
func (i Int) Big() *big.Int {
	if i.n == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(i.n)
}

// Size returns the width of the family the value was validated by.
func (i Int) Size() int { return i.size }

// Signed reports whether the value belongs to a signed family.
func (i Int) Signed() bool { return i.signed }

// Sign returns -1, 0 or +1.
func (i Int) Sign() int { return i.Big().Sign() }

// Int64 returns the value as an int64 and whether it fits.
func (i Int) Int64() (int64, bool) {
	n := i.Big()
	if !n.IsInt64() {
		return 0, false
	}

	return n.Int64(), true
}

// Uint256 returns the value as a uint256.Int. Negative values and values wider than 256 bits are
// rejected with a SizeError.
func (i Int) Uint256() (*uint256.Int, error) {
	n := i.Big()
	if n.Sign() < 0 {
		return nil, hexval.NewSizeError(32, n)
	}
	u, overflow := uint256.FromBig(n)
	if overflow {
		return nil, hexval.NewSizeError(32, n)
	}

	return u, nil
}

// Bytes returns the big-endian two's-complement encoding at the value's width, or the minimal
// encoding for unbounded values.
func (i Int) Bytes() []byte {
	b, err := encodeInt(i.Big(), i.size)
	if err != nil {
		return nil
	}

	return b
}

// Equal reports whether both values hold the same integer.
func (i Int) Equal(other Int) bool { return i.Big().Cmp(other.Big()) == 0 }

// String returns the hex serialization.
//
// Implements the fmt.Stringer interface.
func (i Int) String() string {
	return hexutil.Encode(i.Bytes())
}

// MarshalText implements the encoding.TextMarshaler interface.
func (i Int) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// MarshalJSON implements the json.Marshaler interface.
func (i Int) MarshalJSON() ([]byte, error) { return json.Marshal(i.String()) }

// NewInt returns an integer family of the given width in bytes. A size of zero creates the
// unbounded family, which accepts any non-negative integer.
func NewInt(size int, signed bool, opts ...Option) *Family[Int] {
	o := applyOptions(defaultIntName(size, signed), opts)
	minInt, maxInt := Bounds(size, signed)

	schema := hexval.SizedSchema("integer", size)
	if minInt != nil {
		schema.Minimum = minInt.String()
	}
	if maxInt != nil {
		schema.Maximum = maxInt.String()
	}

	return &Family[Int]{
		name:   o.name,
		kind:   KindInt,
		size:   size,
		signed: signed,
		// Integers always pad left; right padding would change the value.
		pad:    hexval.PadLeft,
		schema: schema,
		min:    minInt,
		max:    maxInt,
		validate: func(f *Family[Int], in any) (Int, error) {
			n, err := integerFrom(in)
			if err != nil {
				return Int{}, err
			}
			if err := f.checkRange(n, in); err != nil {
				return Int{}, err
			}

			return Int{n: n, size: f.size, signed: f.signed}, nil
		},
		serialize: func(f *Family[Int], v Int) (string, error) {
			n := v.Big()
			if err := f.checkRange(n, n); err != nil {
				return "", err
			}
			b, err := encodeInt(n, f.size)
			if err != nil {
				return "", err
			}

			return hexutil.Encode(b), nil
		},
	}
}

// Bounds returns the inclusive range of a width-byte integer. Unbounded widths return a zero
// minimum and a nil maximum.
func Bounds(size int, signed bool) (minInt, maxInt *big.Int) {
	if size <= 0 {
		return new(big.Int), nil
	}
	bits := uint(size * 8)
	if signed {
		half := new(big.Int).Lsh(big.NewInt(1), bits-1)
		return new(big.Int).Neg(half), new(big.Int).Sub(half, big.NewInt(1))
	}

	return new(big.Int), new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits), big.NewInt(1))
}

func (f *Family[T]) checkRange(n *big.Int, raw any) error {
	if f.min != nil && n.Cmp(f.min) < 0 {
		return hexval.NewSizeError(f.size, raw)
	}
	if f.max != nil && n.Cmp(f.max) > 0 {
		return hexval.NewSizeError(f.size, raw)
	}

	return nil
}

// integerFrom reads Go integers as values, hex strings as magnitudes and bytes as unsigned
// big-endian integers.
func integerFrom(in any) (*big.Int, error) {
	switch t := in.(type) {
	case Int:
		return t.Big(), nil
	case bool:
		return nil, hexval.NewHexValueError(in)
	}
	if n, ok := hexval.IntegerFromAny(in); ok {
		return n, nil
	}
	v, err := hexval.Normalize(in)
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetBytes(v.Bytes()), nil
}

// encodeInt returns the two's-complement big-endian encoding of n in size bytes.
func encodeInt(n *big.Int, size int) ([]byte, error) {
	if size <= 0 {
		if n.Sign() < 0 {
			return nil, hexval.NewSizeError(size, n)
		}
		if n.Sign() == 0 {
			return []byte{0}, nil
		}

		return n.Bytes(), nil
	}
	if n.Sign() < 0 {
		modulus := new(big.Int).Lsh(big.NewInt(1), uint(size*8))
		n = new(big.Int).Add(modulus, n)
	}
	if n.Sign() < 0 || n.BitLen() > size*8 {
		return nil, hexval.NewSizeError(size, n)
	}

	return math.PaddedBigBytes(n, size), nil
}

func defaultIntName(size int, signed bool) string {
	switch {
	case size <= 0:
		return "HexInt"
	case signed:
		return fmt.Sprintf("Int%d", size*8)
	default:
		return fmt.Sprintf("UInt%d", size*8)
	}
}
