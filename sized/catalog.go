package sized

import (
	"maps"
	"slices"
	"strings"
)

// Named families. Hash and HexBytes families pad left; use NewBytes with WithPad for buffers
// that are conventionally right padded.
var (
	HexBytes   = NewBytes(0)
	HexBytes20 = NewBytes(20)
	HexBytes32 = NewBytes(32)

	HexStr   = NewStr(0)
	HexStr20 = NewStr(20)
	HexStr32 = NewStr(32)

	HexInt   = NewInt(0, false)
	HexInt32 = NewInt(32, false, WithName("HexInt32"))
	// UInt256 is the name other EVM packages use for an unsigned 32-byte integer.
	UInt256 = NewInt(32, false, WithName("UInt256"))

	HashBytes4  = NewBytes(4, WithName("HashBytes4"))
	HashBytes8  = NewBytes(8, WithName("HashBytes8"))
	HashBytes16 = NewBytes(16, WithName("HashBytes16"))
	HashBytes20 = NewBytes(20, WithName("HashBytes20"))
	HashBytes32 = NewBytes(32, WithName("HashBytes32"))
	HashBytes64 = NewBytes(64, WithName("HashBytes64"))

	HashStr4  = NewStr(4, WithName("HashStr4"))
	HashStr8  = NewStr(8, WithName("HashStr8"))
	HashStr16 = NewStr(16, WithName("HashStr16"))
	HashStr20 = NewStr(20, WithName("HashStr20"))
	HashStr32 = NewStr(32, WithName("HashStr32"))
	HashStr64 = NewStr(64, WithName("HashStr64"))
)

// catalog is keyed by lowercase name and never modified after initialization.
var catalog = index(
	HexBytes, HexBytes20, HexBytes32,
	HexStr, HexStr20, HexStr32,
	HexInt, HexInt32, UInt256,
	HashBytes4, HashBytes8, HashBytes16, HashBytes20, HashBytes32, HashBytes64,
	HashStr4, HashStr8, HashStr16, HashStr20, HashStr32, HashStr64,
)

// Lookup returns the named family, ignoring case.
func Lookup(name string) (Descriptor, bool) {
	d, ok := catalog[strings.ToLower(name)]
	return d, ok
}

// Names returns the names of all catalog families, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, d := range catalog {
		names = append(names, d.Name())
	}
	slices.Sort(names)

	return names
}

// All returns every catalog family ordered by name.
func All() []Descriptor {
	keys := slices.Sorted(maps.Keys(catalog))
	out := make([]Descriptor, 0, len(keys))
	for _, k := range keys {
		out = append(out, catalog[k])
	}

	return out
}

func index(ds ...Descriptor) map[string]Descriptor {
	m := make(map[string]Descriptor, len(ds))
	for _, d := range ds {
		m[strings.ToLower(d.Name())] = d
	}

	return m
}
