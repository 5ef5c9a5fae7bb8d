package sized

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/smartcontractkit/eth-hextypes/hexval"
)

// Kind is the representation a family validates into.
type Kind int

const (
	KindBytes Kind = iota
	KindString
	KindInt
)

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindString:
		return "str"
	case KindInt:
		return "int"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Descriptor is the representation-independent view of a family, used by catalogs and adapters
// that need to hold families of different representations in one table.
type Descriptor interface {
	Name() string
	Kind() Kind
	// Size is the width in bytes. Zero means unbounded.
	Size() int
	Schema() hexval.Schema
	// ValidateAny validates in and returns the family's representation as any.
	ValidateAny(in any) (any, error)
	// Canonical validates in and returns its serialized form.
	Canonical(in any) (string, error)
}

// Option configures a family.
type Option func(*options)

type options struct {
	name string
	pad  hexval.PadDirection
}

// WithPad sets the direction used when coercing input to the family width. The default is
// hexval.PadLeft. Integer families always pad left.
func WithPad(dir hexval.PadDirection) Option {
	return func(o *options) { o.pad = dir }
}

// WithName sets the name reported by the family.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// Family is a fixed-width value type: a validator, a serializer and schema metadata for one
// width and representation. Families are immutable and safe for concurrent use.
type Family[T any] struct {
	name   string
	kind   Kind
	size   int
	signed bool
	pad    hexval.PadDirection
	schema hexval.Schema

	// integer bounds, nil for unbounded or non-integer families
	min, max *big.Int

	validate  func(f *Family[T], in any) (T, error)
	serialize func(f *Family[T], v T) (string, error)
}

var _ Descriptor = (*Family[Bytes])(nil)

// Name returns the family name.
func (f *Family[T]) Name() string { return f.name }

// Kind returns the family representation.
func (f *Family[T]) Kind() Kind { return f.kind }

// Size returns the family width in bytes, zero when unbounded.
func (f *Family[T]) Size() int { return f.size }

// Signed reports whether an integer family accepts negative values.
func (f *Family[T]) Signed() bool { return f.signed }

// Pad returns the coercion direction.
func (f *Family[T]) Pad() hexval.PadDirection { return f.pad }

// Schema returns a copy of the family schema metadata.
func (f *Family[T]) Schema() hexval.Schema {
	s := f.schema
	s.Examples = slices.Clone(f.schema.Examples)

	return s
}

// Validate normalizes in and coerces it to the family width.
func (f *Family[T]) Validate(in any) (T, error) {
	return f.validate(f, in)
}

// Serialize returns the canonical lowercase "0x"-prefixed hex string of v.
func (f *Family[T]) Serialize(v T) (string, error) {
	return f.serialize(f, v)
}

// ValidateAny implements Descriptor.
func (f *Family[T]) ValidateAny(in any) (any, error) {
	return f.Validate(in)
}

// Canonical implements Descriptor.
func (f *Family[T]) Canonical(in any) (string, error) {
	v, err := f.Validate(in)
	if err != nil {
		return "", err
	}

	return f.Serialize(v)
}

// String implements the fmt.Stringer interface.
func (f *Family[T]) String() string { return f.name }

func applyOptions(defaultName string, opts []Option) options {
	o := options{name: defaultName, pad: hexval.PadLeft}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func sizedName(base string, size int) string {
	if size <= 0 {
		return base
	}

	return fmt.Sprintf("%s%d", base, size)
}
