package sized

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/eth-hextypes/hexval"
)

func TestBytesFamily_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		family  *Family[Bytes]
		give    any
		want    string
		wantErr error
	}{
		{
			name:   "int left padded",
			family: HexBytes20,
			give:   5,
			want:   "0x0000000000000000000000000000000000000005",
		},
		{
			name:   "int right padded",
			family: NewBytes(20, WithPad(hexval.PadRight)),
			give:   5,
			want:   "0x0500000000000000000000000000000000000000",
		},
		{
			name:   "string right padded",
			family: NewBytes(32, WithPad(hexval.PadRight)),
			give:   "0x05",
			want:   "0x0500000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name:   "leading zeros removed",
			family: HexBytes20,
			give:   "0x000000000000000000000000cafac3dd18ac6c6e92c921884f9e4176737c052c",
			want:   "0xcafac3dd18ac6c6e92c921884f9e4176737c052c",
		},
		{
			name:   "bytes input",
			family: HashBytes4,
			give:   []byte("2"),
			want:   "0x00000032",
		},
		{
			name:   "unbounded keeps length",
			family: HexBytes,
			give:   "0xabc",
			want:   "0x0abc",
		},
		{name: "not hex", family: HexBytes20, give: "foo", wantErr: hexval.ErrHexValue},
		{name: "negative int", family: HexBytes20, give: -35, wantErr: hexval.ErrSize},
		{name: "too long", family: HexBytes32, give: "0x" + repeat("F", 100), wantErr: hexval.ErrSize},
		{name: "unsupported kind", family: HexBytes32, give: struct{}{}, wantErr: hexval.ErrHexValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.family.Validate(tt.give)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			if tt.family.Size() > 0 {
				assert.Equal(t, tt.family.Size(), got.Len())
			}

			out, err := tt.family.Serialize(got)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestBytesFamily_SizeErrorCarriesInput(t *testing.T) {
	t.Parallel()

	_, err := HashBytes4.Validate("0x0102030405")

	var sizeErr *hexval.SizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, 4, sizeErr.Size)
	assert.Equal(t, "0x0102030405", sizeErr.Value)
}

func TestBytesFamily_SerializeWrongWidth(t *testing.T) {
	t.Parallel()

	v, err := HashBytes8.Validate(1)
	require.NoError(t, err)

	_, err = HashBytes4.Serialize(v)
	require.ErrorIs(t, err, hexval.ErrSize)
}

func TestStrFamily(t *testing.T) {
	t.Parallel()

	got, err := HexStr32.Validate(5)
	require.NoError(t, err)
	assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000005", got)
	assert.Len(t, got, 66)

	got, err = HexStr20.Validate([]byte{0xAB})
	require.NoError(t, err)
	assert.Equal(t, "0x00000000000000000000000000000000000000ab", got)

	out, err := HexStr20.Serialize("0XAB")
	require.NoError(t, err)
	assert.Equal(t, "0x00000000000000000000000000000000000000ab", out)

	_, err = HexStr20.Serialize("0xgg")
	require.ErrorIs(t, err, hexval.ErrHexValue)

	got, err = HexStr.Validate("ABC")
	require.NoError(t, err)
	assert.Equal(t, "0x0abc", got)
}

func TestFamily_Schema(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		family    Descriptor
		wantType  string
		wantLen   int
		wantDigit int
	}{
		{name: "bytes20", family: HexBytes20, wantType: "string", wantLen: 20, wantDigit: 40},
		{name: "bytes32", family: HexBytes32, wantType: "string", wantLen: 32, wantDigit: 64},
		{name: "str32", family: HexStr32, wantType: "string", wantLen: 66, wantDigit: 64},
		{name: "uint256", family: UInt256, wantType: "integer", wantDigit: 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := tt.family.Schema()
			assert.Equal(t, tt.wantType, s.Type)
			assert.Equal(t, "binary", s.Format)
			assert.Equal(t, hexval.HashPattern(tt.wantDigit), s.Pattern)
			assert.Equal(t, tt.wantLen, s.MinLength)
			assert.Equal(t, tt.wantLen, s.MaxLength)

			require.Len(t, s.Examples, 4)
			assert.Equal(t, "0x"+repeat("0", tt.wantDigit), s.Examples[0])
			assert.Equal(t, "0x0", s.Examples[1][:3])
			assert.Equal(t, byte('0'), s.Examples[2][len(s.Examples[2])-1])
			for _, ex := range s.Examples {
				assert.Len(t, ex, tt.wantDigit+2)
			}
		})
	}
}

func TestFamily_SchemaIsCopied(t *testing.T) {
	t.Parallel()

	s := HashStr8.Schema()
	s.Examples[0] = "mutated"
	assert.NotEqual(t, "mutated", HashStr8.Schema().Examples[0])
}

func TestFamily_UnboundedSchema(t *testing.T) {
	t.Parallel()

	s := HexBytes.Schema()
	assert.Equal(t, hexval.UnboundedPattern, s.Pattern)
	assert.Zero(t, s.MinLength)
	assert.Zero(t, s.MaxLength)
}

func TestBytes_JSON(t *testing.T) {
	t.Parallel()

	v, err := HashBytes4.Validate("0xff")
	require.NoError(t, err)

	raw, err := json.Marshal(map[string]Bytes{"v": v})
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":"0x000000ff"}`, string(raw))
	assert.Equal(t, []byte{0, 0, 0, 0xff}, v.Bytes())
	assert.True(t, v.Equal(v))
	assert.Equal(t, v.String(), v.Value().String())
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bytes", KindBytes.String())
	assert.Equal(t, "str", KindString.String())
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func repeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for range n {
		out = append(out, s...)
	}

	return string(out)
}
