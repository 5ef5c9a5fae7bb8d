package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/smartcontractkit/eth-hextypes/config"
)

// textFunc writes the plain text rendering of a result.
type textFunc func(w io.Writer) error

// render writes v in the given format. TOML requires v to encode as a table.
func render(w io.Writer, format string, v any, text textFunc) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	case config.FormatTOML:
		return toml.NewEncoder(w).Encode(v)
	case config.FormatText, "":
		return text(w)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
