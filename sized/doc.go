// Package sized provides families of fixed-width hex value types.
//
// A family is created for a width and a representation (bytes, hex string or integer) and exposes
// Validate, Serialize and Schema:
//
//	f := sized.NewBytes(20)
//	v, err := f.Validate(5)           // 0x0000000000000000000000000000000000000005
//	s, err := f.Serialize(v)
//
//	r := sized.NewBytes(20, sized.WithPad(hexval.PadRight))
//	v, err = r.Validate(5)            // 0x0500000000000000000000000000000000000000
//
//	u8 := sized.NewInt(1, false)
//	_, err = u8.Validate(256)         // hexval.ErrSize
//
// Commonly used families are predeclared and can be looked up by name with Lookup.
package sized
