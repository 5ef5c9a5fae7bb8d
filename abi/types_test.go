package abi

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/eth-hextypes/address"
	"github.com/smartcontractkit/eth-hextypes/hexval"
	"github.com/smartcontractkit/eth-hextypes/sized"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()

	n, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, s)

	return n
}

func TestNames(t *testing.T) {
	t.Parallel()

	names := Names()
	assert.Len(t, names, 99)
	assert.Contains(t, names, "bytes1")
	assert.Contains(t, names, "bytes32")
	assert.Contains(t, names, "int24")
	assert.Contains(t, names, "uint256")
	assert.Contains(t, names, "address")
	assert.Contains(t, names, "string")
	assert.NotContains(t, names, "bytes33")
	assert.NotContains(t, names, "uint")
	assert.IsIncreasing(t, names)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give     string
		wantName string
		wantSize int
	}{
		{give: "bytes4", wantName: "bytes4", wantSize: 4},
		{give: "uint", wantName: "uint256", wantSize: 32},
		{give: "int", wantName: "int256", wantSize: 32},
		{give: "byte", wantName: "bytes1", wantSize: 1},
		{give: " uint64 ", wantName: "uint64", wantSize: 8},
		{give: "address", wantName: "address", wantSize: 20},
		{give: "bytes", wantName: "bytes", wantSize: 0},
		{give: "string", wantName: "string", wantSize: 0},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			typ, ok := Lookup(tt.give)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, typ.Name())
			assert.Equal(t, tt.wantSize, typ.Size())
		})
	}

	_, ok := Lookup("uint7")
	assert.False(t, ok)
	assert.Panics(t, func() { MustLookup("tuple") })
}

func TestFixedBytes_PadRight(t *testing.T) {
	t.Parallel()

	got, err := MustLookup("bytes4").Canonical("0x01")
	require.NoError(t, err)
	assert.Equal(t, "0x01000000", got)

	got, err = MustLookup("bytes32").Canonical(5)
	require.NoError(t, err)
	assert.Equal(t, "0x0500000000000000000000000000000000000000000000000000000000000000", got)

	_, err = MustLookup("bytes2").Canonical("0x010203")
	require.ErrorIs(t, err, hexval.ErrSize)

	v, err := MustLookup("bytes3").ValidateAny([]byte{0xab})
	require.NoError(t, err)
	require.IsType(t, sized.Bytes{}, v)
	assert.Equal(t, []byte{0xab, 0, 0}, v.(sized.Bytes).Bytes())
}

func TestIntegers_RetainValue(t *testing.T) {
	t.Parallel()

	for i, name := range []string{"int8", "int16", "int32", "int64", "int128", "int256"} {
		v, err := MustLookup(name).ValidateAny(-(i + 1))
		require.NoError(t, err, name)
		n, ok := v.(sized.Int).Int64()
		require.True(t, ok)
		assert.Equal(t, int64(-(i + 1)), n, name)
	}

	for i, name := range []string{"uint8", "uint16", "uint32", "uint64", "uint128", "uint256"} {
		v, err := MustLookup(name).ValidateAny(i + 1)
		require.NoError(t, err, name)
		n, ok := v.(sized.Int).Int64()
		require.True(t, ok)
		assert.Equal(t, int64(i+1), n, name)
	}
}

func TestIntegers_Bounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		min, max string
	}{
		{name: "int8", min: "-128", max: "127"},
		{name: "int16", min: "-32768", max: "32767"},
		{name: "int32", min: "-2147483648", max: "2147483647"},
		{name: "int64", min: "-9223372036854775808", max: "9223372036854775807"},
		{
			name: "int128",
			min:  "-170141183460469231731687303715884105728",
			max:  "170141183460469231731687303715884105727",
		},
		{
			name: "int256",
			min:  "-57896044618658097711785492504343953926634992332820282019728792003956564819968",
			max:  "57896044618658097711785492504343953926634992332820282019728792003956564819967",
		},
		{name: "uint8", min: "0", max: "255"},
		{name: "uint16", min: "0", max: "65535"},
		{name: "uint32", min: "0", max: "4294967295"},
		{name: "uint64", min: "0", max: "18446744073709551615"},
		{name: "uint128", min: "0", max: "340282366920938463463374607431768211455"},
		{
			name: "uint256",
			min:  "0",
			max:  "115792089237316195423570985008687907853269984665640564039457584007913129639935",
		},
	}

	one := big.NewInt(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			typ := MustLookup(tt.name)
			minInt, maxInt := mustBig(t, tt.min), mustBig(t, tt.max)

			_, err := typ.ValidateAny(minInt)
			require.NoError(t, err)
			_, err = typ.ValidateAny(maxInt)
			require.NoError(t, err)

			_, err = typ.ValidateAny(new(big.Int).Sub(minInt, one))
			require.ErrorIs(t, err, hexval.ErrSize)
			_, err = typ.ValidateAny(new(big.Int).Add(maxInt, one))
			require.ErrorIs(t, err, hexval.ErrSize)
		})
	}
}

func TestIntegers_Canonical(t *testing.T) {
	t.Parallel()

	got, err := MustLookup("int8").Canonical(-1)
	require.NoError(t, err)
	assert.Equal(t, "0xff", got)

	got, err = MustLookup("uint24").Canonical("0x1")
	require.NoError(t, err)
	assert.Equal(t, "0x000001", got)

	_, err = MustLookup("uint8").Canonical(-1)
	require.ErrorIs(t, err, hexval.ErrSize)

	s := MustLookup("int16").Schema()
	assert.Equal(t, "integer", s.Type)
	assert.Equal(t, "-32768", s.Minimum)
	assert.Equal(t, "32767", s.Maximum)
}

func TestAddressType(t *testing.T) {
	t.Parallel()

	typ := MustLookup("address")

	got, err := typ.Canonical("0x02c84e944f97f4a4f60221e6fb5d5dbae49c7aab")
	require.NoError(t, err)
	assert.Equal(t, "0x02c84e944F97F4A4f60221e6fb5d5DbAE49c7aaB", got)

	v, err := typ.ValidateAny(1)
	require.NoError(t, err)
	assert.IsType(t, address.Address(""), v)

	assert.Equal(t, address.Pattern, typ.Schema().Pattern)
}

func TestDynamicTypes(t *testing.T) {
	t.Parallel()

	got, err := MustLookup("bytes").Canonical("0xabc")
	require.NoError(t, err)
	assert.Equal(t, "0x0abc", got)

	str := MustLookup("string")
	got, err = str.Canonical("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	got, err = str.Canonical([]byte("raw"))
	require.NoError(t, err)
	assert.Equal(t, "raw", got)

	v, err := str.ValidateAny(address.Zero)
	require.NoError(t, err)
	assert.Equal(t, string(address.Zero), v)

	_, err = str.Canonical(42)
	require.Error(t, err)
	assert.Equal(t, "string", str.Schema().Type)
}
