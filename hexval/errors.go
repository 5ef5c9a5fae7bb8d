package hexval

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks. The structured error types below match their sentinel.
var (
	ErrHexValue        = errors.New("invalid hex value")
	ErrSize            = errors.New("invalid size of value")
	ErrBip122URIFormat = errors.New("invalid BIP-122 URI format")
)

// Bip122URIExpectedFormat is reported by Bip122URIFormatError for diagnostics.
const Bip122URIExpectedFormat = "blockchain://<genesis_hash>/<tx|block|address>/<hash>"

// HexValueError is returned when an input contains non-hex characters or has no defined
// conversion to hex.
type HexValueError struct {
	Value any
}

// NewHexValueError creates a HexValueError for the offending raw value.
func NewHexValueError(value any) *HexValueError {
	return &HexValueError{Value: value}
}

// Error implements the error interface.
func (e *HexValueError) Error() string {
	return fmt.Sprintf("%s: %v", ErrHexValue, describe(e.Value))
}

// Is reports whether target is ErrHexValue.
func (e *HexValueError) Is(target error) bool { return target == ErrHexValue }

// SizeError is returned when a value cannot be coerced to its required width without discarding
// significant data, or when an integer falls outside the bounds of its width and signedness.
type SizeError struct {
	// Size is the required width in bytes.
	Size  int
	Value any
}

// NewSizeError creates a SizeError for the target size and offending value.
func NewSizeError(size int, value any) *SizeError {
	return &SizeError{Size: size, Value: value}
}

// Error implements the error interface.
func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: %v does not fit in %d bytes", ErrSize, describe(e.Value), e.Size)
}

// Is reports whether target is ErrSize.
func (e *SizeError) Is(target error) bool { return target == ErrSize }

// Bip122URIFormatError is returned when a BIP-122 URI fails the prefix, segment count, kind or
// hash checks.
type Bip122URIFormatError struct {
	URI    string
	Format string
	// Err is the underlying hex error when a hash segment was rejected.
	Err error
}

// NewBip122URIFormatError creates a Bip122URIFormatError carrying the expected format.
func NewBip122URIFormatError(uri string) *Bip122URIFormatError {
	return &Bip122URIFormatError{URI: uri, Format: Bip122URIExpectedFormat}
}

// Error implements the error interface.
func (e *Bip122URIFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q (expected %s): %v", ErrBip122URIFormat, e.URI, e.Format, e.Err)
	}

	return fmt.Sprintf("%s: %q (expected %s)", ErrBip122URIFormat, e.URI, e.Format)
}

// Is reports whether target is ErrBip122URIFormat.
func (e *Bip122URIFormatError) Is(target error) bool { return target == ErrBip122URIFormat }

// Unwrap returns the underlying hex error, if any.
func (e *Bip122URIFormatError) Unwrap() error { return e.Err }

// describe renders byte slices as hex so error messages stay readable.
func describe(v any) string {
	switch t := v.(type) {
	case []byte:
		return fmt.Sprintf("0x%x", t)
	case string:
		return fmt.Sprintf("%q", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
