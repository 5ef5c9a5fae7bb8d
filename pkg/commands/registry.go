package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/smartcontractkit/eth-hextypes/abi"
	"github.com/smartcontractkit/eth-hextypes/bip122"
	"github.com/smartcontractkit/eth-hextypes/hexval"
	"github.com/smartcontractkit/eth-hextypes/sized"
)

// Type is a named validator the CLI can run.
type Type = abi.Type

// Sources reported by the types command.
const (
	SourceCatalog = "catalog"
	SourceABI     = "abi"
	SourceURI     = "uri"
)

// TypeInfo describes one resolvable type name.
type TypeInfo struct {
	Name   string `json:"name" yaml:"name" toml:"name"`
	Size   int    `json:"size" yaml:"size" toml:"size"`
	Source string `json:"source" yaml:"source" toml:"source"`
}

// Resolve returns the type registered under name. ABI names are matched exactly first, then
// catalog family names, "Address" and "Bip122Uri" ignoring case.
func Resolve(name string) (Type, error) {
	if t, ok := abi.Lookup(name); ok {
		return t, nil
	}
	if d, ok := sized.Lookup(name); ok {
		return d, nil
	}

	switch strings.ToLower(name) {
	case "address":
		return abi.MustLookup("address"), nil
	case "bip122uri", "bip122":
		return uriType{}, nil
	}

	return nil, fmt.Errorf("unknown type %q", name)
}

// AdHoc builds a family from flag values.
func AdHoc(kind string, size int, signed bool, pad hexval.PadDirection) (Type, error) {
	if size < 0 {
		return nil, fmt.Errorf("size must not be negative, got %d", size)
	}

	switch strings.ToLower(kind) {
	case sized.KindBytes.String():
		return sized.NewBytes(size, sized.WithPad(pad)), nil
	case sized.KindString.String():
		return sized.NewStr(size, sized.WithPad(pad)), nil
	case sized.KindInt.String():
		return sized.NewInt(size, signed), nil
	default:
		return nil, fmt.Errorf("unknown kind %q: must be bytes, str or int", kind)
	}
}

// Types lists every resolvable name, catalog families first.
func Types() []TypeInfo {
	var out []TypeInfo
	for _, d := range sized.All() {
		out = append(out, TypeInfo{Name: d.Name(), Size: d.Size(), Source: SourceCatalog})
	}
	for _, name := range abi.Names() {
		out = append(out, TypeInfo{Name: name, Size: abi.MustLookup(name).Size(), Source: SourceABI})
	}
	out = append(out, TypeInfo{Name: uriType{}.Name(), Source: SourceURI})

	return slices.Clip(out)
}

// uriType adapts bip122 to the Type interface.
type uriType struct{}

func (uriType) Name() string { return "Bip122Uri" }
func (uriType) Size() int    { return 0 }

func (uriType) ValidateAny(in any) (any, error) {
	s, ok := in.(string)
	if !ok {
		return nil, hexval.NewBip122URIFormatError(fmt.Sprint(in))
	}

	return bip122.Parse(s)
}

func (u uriType) Canonical(in any) (string, error) {
	v, err := u.ValidateAny(in)
	if err != nil {
		return "", err
	}

	return v.(bip122.URI).String(), nil
}

func (uriType) Schema() hexval.Schema { return bip122.Schema() }
