package hexval

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Prefix is the hex prefix used by every canonical string.
const Prefix = "0x"

// bytesProvider is satisfied by go-ethereum fixed types such as common.Hash and common.Address.
type bytesProvider interface {
	Bytes() []byte
}

// Normalize converts bytes, hex strings, integers and go-ethereum hex types into a Value.
//
// Strings may carry an optional "0x"/"0X" prefix and an odd number of digits, in which case a
// leading zero nibble is assumed. Integers are encoded as their minimal big-endian bytes, with zero
// encoded as a single zero byte. Negative integers have no hex encoding here; callers that accept
// signed input must range-check before normalizing.
func Normalize(in any) (Value, error) {
	switch t := in.(type) {
	case Value:
		return t, nil
	case *Value:
		if t == nil {
			return Value{}, NewHexValueError(in)
		}

		return *t, nil
	case []byte:
		return FromBytes(t), nil
	case hexutil.Bytes:
		return FromBytes(t), nil
	case string:
		return parseString(t)
	case *big.Int:
		if t == nil {
			return Value{}, NewHexValueError(in)
		}

		return normalizeInt(t, in)
	case bool:
		return Value{}, NewHexValueError(in)
	}

	if n, ok := IntegerFromAny(in); ok {
		return normalizeInt(n, in)
	}
	if p, ok := in.(bytesProvider); ok {
		return FromBytes(p.Bytes()), nil
	}

	return Value{}, NewHexValueError(in)
}

// MustNormalize is like Normalize but panics on error.
// Use only for trusted constant input.
func MustNormalize(in any) Value {
	v, err := Normalize(in)
	if err != nil {
		panic(err)
	}

	return v
}

// NormalizeString returns the canonical "0x"-prefixed, lowercase, even-length form of a hex string.
func NormalizeString(s string) (string, error) {
	digits, err := canonicalDigits(s)
	if err != nil {
		return "", err
	}

	return Prefix + digits, nil
}

// NormalizeBytes returns the canonical hex string of b.
func NormalizeBytes(b []byte) string {
	return hexutil.Encode(b)
}

// NormalizeInt returns the canonical hex string of a non-negative integer.
func NormalizeInt(n *big.Int) (string, error) {
	v, err := normalizeInt(n, n)
	if err != nil {
		return "", err
	}

	return v.String(), nil
}

// IntegerFromAny converts Go integer kinds and big integers into a new *big.Int.
// It reports false for any other input.
func IntegerFromAny(in any) (*big.Int, bool) {
	switch t := in.(type) {
	case int:
		return big.NewInt(int64(t)), true
	case int8:
		return big.NewInt(int64(t)), true
	case int16:
		return big.NewInt(int64(t)), true
	case int32:
		return big.NewInt(int64(t)), true
	case int64:
		return big.NewInt(t), true
	case uint:
		return new(big.Int).SetUint64(uint64(t)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(t)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(t)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(t)), true
	case uint64:
		return new(big.Int).SetUint64(t), true
	case *big.Int:
		if t == nil {
			return nil, false
		}

		return new(big.Int).Set(t), true
	case big.Int:
		return new(big.Int).Set(&t), true
	case *hexutil.Big:
		if t == nil {
			return nil, false
		}

		return new(big.Int).Set((*big.Int)(t)), true
	case json.Number:
		return new(big.Int).SetString(t.String(), 10)
	}

	return nil, false
}

// DecodeJSONScalar decodes a JSON string or number into a value Normalize understands.
// Numbers are returned as json.Number so that integers wider than 64 bits survive.
func DecodeJSONScalar(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var in any
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("decode hex value: %w", err)
	}
	switch in.(type) {
	case string, json.Number:
		return in, nil
	}

	return nil, NewHexValueError(string(data))
}

func parseString(s string) (Value, error) {
	digits, err := canonicalDigits(s)
	if err != nil {
		return Value{}, err
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return Value{}, NewHexValueError(s)
	}

	return Value{b: b}, nil
}

// canonicalDigits strips the prefix, lowercases and validates s, and zero-pads odd lengths.
func canonicalDigits(s string) (string, error) {
	digits := s
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	digits = strings.ToLower(digits)
	for i := range len(digits) {
		c := digits[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", NewHexValueError(s)
		}
	}
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}

	return digits, nil
}

func normalizeInt(n *big.Int, raw any) (Value, error) {
	if n == nil || n.Sign() < 0 {
		return Value{}, NewHexValueError(raw)
	}
	if n.Sign() == 0 {
		return Value{b: []byte{0}}, nil
	}

	return Value{b: n.Bytes()}, nil
}
