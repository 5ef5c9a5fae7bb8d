package hexval

import (
	"bytes"
	"fmt"
	"strings"
)

// PadDirection selects the side on which coercion adds or removes zero units.
type PadDirection int

const (
	// PadLeft prepends zeros, matching big-endian numeric semantics. It is the default.
	PadLeft PadDirection = iota
	// PadRight appends zeros, as used by fixed-size byte buffers such as ABI bytesN values.
	PadRight
)

// String returns the lowercase name of the direction.
//
// Implements the fmt.Stringer interface.
func (d PadDirection) String() string {
	switch d {
	case PadLeft:
		return "left"
	case PadRight:
		return "right"
	default:
		return fmt.Sprintf("PadDirection(%d)", int(d))
	}
}

// ParsePadDirection parses "left" or "right", ignoring case. An empty string yields PadLeft.
func ParsePadDirection(s string) (PadDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return PadLeft, nil
	case "right":
		return PadRight, nil
	default:
		return PadLeft, fmt.Errorf("unknown pad direction %q: must be left or right", s)
	}
}

// Coerce pads or trims b to exactly width bytes.
//
// Zero bytes on the padding side are considered insignificant: they are stripped before the value
// is re-padded to width. If the significant bytes alone exceed width, a SizeError is returned.
// A width of zero or less means the value is unbounded and b is returned unchanged.
// The result never aliases b.
func Coerce(b []byte, width int, dir PadDirection) ([]byte, error) {
	if width <= 0 || len(b) == width {
		return bytes.Clone(nonNil(b)), nil
	}

	var significant []byte
	switch dir {
	case PadRight:
		significant = bytes.TrimRight(b, "\x00")
	default:
		significant = bytes.TrimLeft(b, "\x00")
	}
	if len(significant) > width {
		return nil, NewSizeError(width, b)
	}

	out := make([]byte, width)
	if dir == PadRight {
		copy(out, significant)
	} else {
		copy(out[width-len(significant):], significant)
	}

	return out, nil
}

// CoerceValue is Coerce over a Value.
func CoerceValue(v Value, width int, dir PadDirection) (Value, error) {
	b, err := Coerce(v.b, width, dir)
	if err != nil {
		return Value{}, NewSizeError(width, v.String())
	}

	return Value{b: b}, nil
}

// CoerceHex normalizes s and coerces it to width bytes, working on hex digit pairs.
// The result is the canonical "0x"-prefixed lowercase string.
func CoerceHex(s string, width int, dir PadDirection) (string, error) {
	digits, err := canonicalDigits(s)
	if err != nil {
		return "", err
	}
	size := width * 2
	if width <= 0 || len(digits) == size {
		return Prefix + digits, nil
	}

	significant := digits
	for len(significant) >= 2 {
		var unit string
		if dir == PadRight {
			unit = significant[len(significant)-2:]
		} else {
			unit = significant[:2]
		}
		if unit != "00" {
			break
		}
		if dir == PadRight {
			significant = significant[:len(significant)-2]
		} else {
			significant = significant[2:]
		}
	}
	if len(significant) > size {
		return "", NewSizeError(width, s)
	}

	zeros := strings.Repeat("0", size-len(significant))
	if dir == PadRight {
		return Prefix + significant + zeros, nil
	}

	return Prefix + zeros + significant, nil
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}

	return b
}
