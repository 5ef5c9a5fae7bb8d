// Package bip122 parses and canonicalizes BIP-122 blockchain URIs of the form
//
//	blockchain://<genesis_hash>/<tx|block|address>/<hash>
package bip122

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/smartcontractkit/eth-hextypes/hexval"
)

// Prefix is the URI scheme prefix.
const Prefix = "blockchain://"

// Pattern matches canonical URIs with 32 byte hashes.
const Pattern = "^blockchain://[0-9a-f]{64}/(tx|block|address)/[0-9a-f]{64}$"

// Example is a canonical block URI on Ethereum mainnet.
const Example = Prefix +
	"d4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3" +
	"/block/" +
	"752820c0ad7abc1200f9ad42c4adc6fbb4bd44b5bed4667990e64565102c1ba6"

// Type is the kind of resource a URI points at.
type Type string

const (
	TypeTX      Type = "tx"
	TypeBlock   Type = "block"
	TypeAddress Type = "address"
)

// String implements the fmt.Stringer interface.
func (t Type) String() string { return string(t) }

// ParseType parses a resource kind, ignoring case.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(s)); t {
	case TypeTX, TypeBlock, TypeAddress:
		return t, nil
	default:
		return "", fmt.Errorf("unknown BIP-122 resource type %q", s)
	}
}

// Locator is the parsed form of a URI. Hashes are canonical "0x"-prefixed hex strings.
type Locator struct {
	Chain string `json:"chain" yaml:"chain" toml:"chain"`
	Type  Type   `json:"type" yaml:"type" toml:"type"`
	Hash  string `json:"hash" yaml:"hash" toml:"hash"`
}

// URI is a validated, canonical BIP-122 URI. Its components are parsed from the canonical string
// on first access and memoized; URI values are safe for concurrent use.
type URI struct {
	raw     string
	locator func() Locator
}

// Parse validates s and returns its canonical form: lowercase hashes without "0x" and a
// lowercase resource type.
func Parse(s string) (URI, error) {
	loc, err := parse(s)
	if err != nil {
		return URI{}, err
	}

	return fromCanonical(canonical(loc)), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) URI {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return u
}

// New builds a URI from its components. Hashes may carry a "0x" prefix.
func New(genesis string, typ Type, hash string) (URI, error) {
	return Parse(Prefix + strings.TrimPrefix(genesis, hexval.Prefix) + "/" + string(typ) + "/" +
		strings.TrimPrefix(hash, hexval.Prefix))
}

func fromCanonical(raw string) URI {
	return URI{
		raw: raw,
		locator: sync.OnceValue(func() Locator {
			// raw was produced by canonical and always parses.
			loc, _ := parse(raw)
			return loc
		}),
	}
}

// String returns the canonical URI.
func (u URI) String() string { return u.raw }

// IsZero reports whether u is the zero URI.
func (u URI) IsZero() bool { return u.raw == "" }

// Locator returns the parsed components of u.
func (u URI) Locator() Locator {
	if u.locator == nil {
		return Locator{}
	}

	return u.locator()
}

// Chain returns the genesis hash.
func (u URI) Chain() string { return u.Locator().Chain }

// Type returns the resource kind.
func (u URI) Type() Type { return u.Locator().Type }

// Hash returns the target hash.
func (u URI) Hash() string { return u.Locator().Hash }

// Equal reports whether both URIs have the same canonical form.
func (u URI) Equal(other URI) bool { return u.raw == other.raw }

// MarshalText implements the encoding.TextMarshaler interface.
func (u URI) MarshalText() ([]byte, error) { return []byte(u.raw), nil }

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (u *URI) UnmarshalText(text []byte) error { return u.set(string(text)) }

// MarshalJSON implements the json.Marshaler interface.
func (u URI) MarshalJSON() ([]byte, error) { return json.Marshal(u.raw) }

// UnmarshalJSON implements the json.Unmarshaler interface.
func (u *URI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	return u.set(s)
}

// MarshalYAML implements the yaml.Marshaler interface.
func (u URI) MarshalYAML() (any, error) { return u.raw, nil }

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (u *URI) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	return u.set(s)
}

func (u *URI) set(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*u = v

	return nil
}

// Schema returns the schema metadata for canonical URIs.
func Schema() hexval.Schema {
	return hexval.Schema{
		Type:     "string",
		Pattern:  Pattern,
		Examples: []string{Example},
	}
}

func parse(s string) (Locator, error) {
	rest, ok := strings.CutPrefix(s, Prefix)
	if !ok {
		return Locator{}, hexval.NewBip122URIFormatError(s)
	}

	parts := strings.Split(rest, "/")
	if len(parts) != 3 {
		return Locator{}, hexval.NewBip122URIFormatError(s)
	}

	typ, err := ParseType(parts[1])
	if err != nil {
		return Locator{}, hexval.NewBip122URIFormatError(s)
	}

	chain, err := segment(s, parts[0])
	if err != nil {
		return Locator{}, err
	}
	hash, err := segment(s, parts[2])
	if err != nil {
		return Locator{}, err
	}

	return Locator{Chain: chain, Type: typ, Hash: hash}, nil
}

func segment(uri, part string) (string, error) {
	if part == "" {
		return "", hexval.NewBip122URIFormatError(uri)
	}

	h, err := hexval.NormalizeString(part)
	if err != nil {
		e := hexval.NewBip122URIFormatError(uri)
		e.Err = err

		return "", e
	}
	if h == hexval.Prefix {
		return "", hexval.NewBip122URIFormatError(uri)
	}

	return h, nil
}

func canonical(loc Locator) string {
	return Prefix + strings.TrimPrefix(loc.Chain, hexval.Prefix) + "/" + string(loc.Type) + "/" +
		strings.TrimPrefix(loc.Hash, hexval.Prefix)
}
