package hexval

import (
	"fmt"
	"strings"
)

// UnboundedPattern matches any canonical hex string.
const UnboundedPattern = "^0x([0-9a-f][0-9a-f])*$"

// UnboundedExamples documents hex values without a fixed width.
var UnboundedExamples = []string{
	"0x",
	"0xd4",
	"0xd4e5",
	"0xd4e56740",
	"0xd4e56740f876aef8",
	"0xd4e56740f876aef8c010b86a40d5f567",
	"0xd4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3",
}

// Schema is descriptive metadata for documentation and tooling. It does not validate anything.
type Schema struct {
	Type      string   `json:"type" yaml:"type" toml:"type"`
	Format    string   `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty" toml:"pattern,omitempty"`
	Examples  []string `json:"examples,omitempty" yaml:"examples,omitempty" toml:"examples,omitempty"`
	MinLength int      `json:"minLength,omitempty" yaml:"minLength,omitempty" toml:"minLength,omitempty"`
	MaxLength int      `json:"maxLength,omitempty" yaml:"maxLength,omitempty" toml:"maxLength,omitempty"`
	Minimum   string   `json:"minimum,omitempty" yaml:"minimum,omitempty" toml:"minimum,omitempty"`
	Maximum   string   `json:"maximum,omitempty" yaml:"maximum,omitempty" toml:"maximum,omitempty"`
}

// HashPattern returns the pattern for a hex string with exactly strSize digits.
func HashPattern(strSize int) string {
	return fmt.Sprintf("^0x[a-fA-F0-9]{%d}$", strSize)
}

// HashExamples returns, in order, the all-zero value, a value with a leading zero nibble, a value
// with a trailing zero nibble and a fully populated value, each strSize digits long.
func HashExamples(strSize int) []string {
	half := (strSize - 1) / 2

	return []string{
		Prefix + strings.Repeat("0", strSize),
		Prefix + "01" + strings.Repeat("1e", half),
		Prefix + strings.Repeat("1e", half) + "10",
		Prefix + strings.Repeat("1e", strSize/2),
	}
}

// SizedSchema returns the schema of a width-byte value. Width zero yields the unbounded schema.
func SizedSchema(typ string, width int) Schema {
	if width <= 0 {
		return Schema{
			Type:     typ,
			Format:   "binary",
			Pattern:  UnboundedPattern,
			Examples: append([]string(nil), UnboundedExamples...),
		}
	}

	return Schema{
		Type:     typ,
		Format:   "binary",
		Pattern:  HashPattern(width * 2),
		Examples: HashExamples(width * 2),
	}
}
