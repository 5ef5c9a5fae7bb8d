package sized

import (
	"gopkg.in/yaml.v3"

	"github.com/smartcontractkit/eth-hextypes/hexval"
)

// Width fixes a byte width at compile time for use with Fixed.
type Width interface {
	Width() int
}

type (
	W4  struct{}
	W8  struct{}
	W16 struct{}
	W20 struct{}
	W32 struct{}
	W64 struct{}
)

func (W4) Width() int  { return 4 }
func (W8) Width() int  { return 8 }
func (W16) Width() int { return 16 }
func (W20) Width() int { return 20 }
func (W32) Width() int { return 32 }
func (W64) Width() int { return 64 }

// Fixed is a left-padded byte value whose width is part of its type, so that it can be decoded
// directly from JSON, YAML or text without a family at hand:
//
//	type Block struct {
//	    Hash sized.Fixed[sized.W32] `json:"hash"`
//	}
//
// The zero value holds no bytes; every decoded value holds exactly W bytes.
type Fixed[W Width] struct {
	Bytes
}

// Hash types with the widths commonly used in EVM tooling.
type (
	Hash4  = Fixed[W4]
	Hash8  = Fixed[W8]
	Hash16 = Fixed[W16]
	Hash20 = Fixed[W20]
	Hash32 = Fixed[W32]
	Hash64 = Fixed[W64]
)

// NewFixed validates in into a Fixed of width W.
func NewFixed[W Width](in any) (Fixed[W], error) {
	var w W
	b, err := validateBytes(in, w.Width(), hexval.PadLeft)
	if err != nil {
		return Fixed[W]{}, err
	}

	return Fixed[W]{Bytes: b}, nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (f *Fixed[W]) UnmarshalText(text []byte) error {
	return f.set(string(text))
}

// UnmarshalJSON accepts a hex string or a JSON number.
//
// Implements the json.Unmarshaler interface.
func (f *Fixed[W]) UnmarshalJSON(data []byte) error {
	in, err := hexval.DecodeJSONScalar(data)
	if err != nil {
		return err
	}

	return f.set(in)
}

// MarshalYAML implements the yaml.Marshaler interface.
func (f Fixed[W]) MarshalYAML() (any, error) {
	return f.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (f *Fixed[W]) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	return f.set(s)
}

func (f *Fixed[W]) set(in any) error {
	v, err := NewFixed[W](in)
	if err != nil {
		return err
	}
	*f = v

	return nil
}
