// Package abi maps Solidity ABI type names to validators.
//
// Every elementary type that has a hex form is enumerated once at package initialization:
// bytes1 through bytes32, int8 through int256 and uint8 through uint256 in steps of 8, and the
// dynamic types address, bytes and string. Fixed bytes types are right padded like ABI encoded
// fixed buffers; integers are range checked for their width and signedness.
package abi

import (
	"fmt"
	"slices"
	"strings"

	"github.com/smartcontractkit/eth-hextypes/address"
	"github.com/smartcontractkit/eth-hextypes/hexval"
	"github.com/smartcontractkit/eth-hextypes/sized"
)

// Type validates values of one ABI type.
type Type interface {
	Name() string
	// Size is the static width in bytes, zero for dynamic types.
	Size() int
	ValidateAny(in any) (any, error)
	// Canonical validates in and returns its serialized form.
	Canonical(in any) (string, error)
	Schema() hexval.Schema
}

var (
	_ Type = (*sized.Family[sized.Bytes])(nil)
	_ Type = (*sized.Family[sized.Int])(nil)
	_ Type = addressType{}
	_ Type = stringType{}
)

// aliases are resolved by Lookup but are not listed by Names.
var aliases = map[string]string{
	"int":  "int256",
	"uint": "uint256",
	"byte": "bytes1",
}

var table = build()

// Lookup returns the type with the given ABI name. Names are matched exactly after trimming
// spaces; "int", "uint" and "byte" resolve to int256, uint256 and bytes1.
func Lookup(name string) (Type, bool) {
	name = strings.TrimSpace(name)
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	t, ok := table[name]

	return t, ok
}

// MustLookup is like Lookup but panics when the name is unknown.
func MustLookup(name string) Type {
	t, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("abi: unknown type %q", name))
	}

	return t
}

// Names returns all canonical type names, sorted.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func build() map[string]Type {
	t := make(map[string]Type, 99)

	for n := 1; n <= 32; n++ {
		name := fmt.Sprintf("bytes%d", n)
		t[name] = sized.NewBytes(n, sized.WithPad(hexval.PadRight), sized.WithName(name))
	}
	for bits := 8; bits <= 256; bits += 8 {
		signed := fmt.Sprintf("int%d", bits)
		unsigned := fmt.Sprintf("uint%d", bits)
		t[signed] = sized.NewInt(bits/8, true, sized.WithName(signed))
		t[unsigned] = sized.NewInt(bits/8, false, sized.WithName(unsigned))
	}

	t["bytes"] = sized.NewBytes(0, sized.WithName("bytes"))
	t["address"] = addressType{}
	t["string"] = stringType{}

	return t
}

type addressType struct{}

func (addressType) Name() string { return "address" }
func (addressType) Size() int    { return 20 }

func (addressType) ValidateAny(in any) (any, error) { return address.Validate(in) }

func (addressType) Canonical(in any) (string, error) {
	a, err := address.Validate(in)
	if err != nil {
		return "", err
	}

	return a.String(), nil
}

func (addressType) Schema() hexval.Schema { return address.Schema() }

// stringType accepts text as is.
type stringType struct{}

func (stringType) Name() string { return "string" }
func (stringType) Size() int    { return 0 }

func (s stringType) ValidateAny(in any) (any, error) { return s.Canonical(in) }

func (stringType) Canonical(in any) (string, error) {
	switch v := in.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("abi: string type cannot hold %T", in)
	}
}

func (stringType) Schema() hexval.Schema { return hexval.Schema{Type: "string"} }
