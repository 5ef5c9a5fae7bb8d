/*
Package hexval normalizes loosely typed hex input and coerces it to fixed widths.

It is the leaf of the module: every sized family, the address validator and the BIP-122 URI
parser build on the functions here.

# Normalization

[Normalize] accepts byte slices, hex strings (with or without a "0x" prefix, any case, odd or
even length), Go integers, big integers and the go-ethereum hex types, and returns a [Value]:

	v, err := hexval.Normalize("ABC")
	// v.String() == "0x0abc"

	v, err = hexval.Normalize(10)
	// v.String() == "0x0a"

# Coercion

[Coerce] pads or trims a value to a width. Zero bytes on the padding side are insignificant and
may be dropped; anything else that does not fit is a [SizeError]:

	b, _ := hexval.Coerce([]byte{0x05}, 4, hexval.PadLeft)  // 00 00 00 05
	b, _ = hexval.Coerce([]byte{0x05}, 4, hexval.PadRight)  // 05 00 00 00
	_, err := hexval.Coerce([]byte{1, 2, 3}, 2, hexval.PadLeft)
	// errors.Is(err, hexval.ErrSize)

# Errors

All errors returned by this module are one of [HexValueError], [SizeError] or
[Bip122URIFormatError]. Each matches its sentinel with errors.Is and carries the offending value.
*/
package hexval
