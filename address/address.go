package address

import (
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"

	"github.com/smartcontractkit/eth-hextypes/hexval"
	"github.com/smartcontractkit/eth-hextypes/sized"
)

// Pattern matches an address in any casing.
const Pattern = "^0x[a-fA-F0-9]{40}$"

// Zero is the zero address.
const Zero Address = "0x0000000000000000000000000000000000000000"

// Examples used in the address schema.
var examples = []string{
	string(Zero),
	"0x02c84e944F97F4A4f60221e6fb5d5DbAE49c7aaB",
	"0xa5a13f62ce1113838e0d9b4559b8caf5f76463c0",
	"0x1e59ce931B4CFea3fe4B875411e280e173cB7A9C",
}

var family = sized.NewStr(common.AddressLength, sized.WithName("Address"))

// Address is a 20 byte account address in EIP-55 checksum casing.
//
// Values produced by Validate or by the unmarshalers are always checksummed. A conversion from
// an arbitrary string is not, so run it through Validate first.
type Address string

// Validate left pads in to 20 bytes and returns it in checksum casing. The checksum is always
// recomputed; the casing of a string input is never checked.
func Validate(in any) (Address, error) {
	if a, ok := in.(Address); ok {
		in = string(a)
	}

	s, err := family.Validate(in)
	if err != nil {
		return "", err
	}

	return Address(common.HexToAddress(s).Hex()), nil
}

// MustValidate is like Validate but panics on error.
func MustValidate(in any) Address {
	a, err := Validate(in)
	if err != nil {
		panic(err)
	}

	return a
}

// Serialize returns the checksummed form of a.
func Serialize(a Address) (string, error) {
	v, err := Validate(a)
	if err != nil {
		return "", err
	}

	return string(v), nil
}

// IsChecksummed reports whether s is a valid address already in checksum casing.
func IsChecksummed(s string) bool {
	a, err := Validate(s)
	if err != nil {
		return false
	}

	return string(a) == s
}

// Schema returns the schema metadata for addresses.
func Schema() hexval.Schema {
	return hexval.Schema{
		Type:      "string",
		Pattern:   Pattern,
		Examples:  append([]string(nil), examples...),
		MinLength: 42,
		MaxLength: 42,
	}
}

// String implements the fmt.Stringer interface.
func (a Address) String() string { return string(a) }

// Common returns a as a go-ethereum address.
func (a Address) Common() common.Address { return common.HexToAddress(string(a)) }

// Bytes returns the 20 address bytes.
func (a Address) Bytes() []byte { return a.Common().Bytes() }

// Equal compares two addresses ignoring case.
func (a Address) Equal(other Address) bool { return strings.EqualFold(string(a), string(other)) }

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool { return a.Equal(Zero) }

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (a *Address) UnmarshalText(text []byte) error {
	return a.set(string(text))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a), nil
}

// UnmarshalJSON accepts a hex string or a JSON number.
//
// Implements the json.Unmarshaler interface.
func (a *Address) UnmarshalJSON(data []byte) error {
	in, err := hexval.DecodeJSONScalar(data)
	if err != nil {
		return err
	}

	return a.set(in)
}

// MarshalJSON implements the json.Marshaler interface.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (a *Address) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	return a.set(s)
}

func (a *Address) set(in any) error {
	v, err := Validate(in)
	if err != nil {
		return err
	}
	*a = v

	return nil
}
