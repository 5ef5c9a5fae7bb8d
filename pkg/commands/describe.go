package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/eth-hextypes/bip122"
	"github.com/smartcontractkit/eth-hextypes/hexval"
)

type typesOutput struct {
	Types []TypeInfo `json:"types" yaml:"types" toml:"types"`
}

type schemaOutput struct {
	Name   string        `json:"name" yaml:"name" toml:"name"`
	Schema hexval.Schema `json:"schema" yaml:"schema" toml:"schema"`
}

// URIResult is the outcome of parsing one BIP-122 URI.
type URIResult struct {
	Input string `json:"input" yaml:"input" toml:"input"`
	URI   string `json:"uri,omitempty" yaml:"uri,omitempty" toml:"uri,omitempty"`
	Chain string `json:"chain,omitempty" yaml:"chain,omitempty" toml:"chain,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Hash  string `json:"hash,omitempty" yaml:"hash,omitempty" toml:"hash,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

type uriOutput struct {
	URIs []URIResult `json:"uris" yaml:"uris" toml:"uris"`
}

// Types creates the types command.
func (c *Commands) Types() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the type names accepted by validate, serialize and schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			types := Types()

			return render(cmd.OutOrStdout(), c.cfg.Output.Format, typesOutput{Types: types}, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tSIZE\tSOURCE")
				for _, t := range types {
					size := "dynamic"
					if t.Size > 0 {
						size = fmt.Sprint(t.Size)
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Name, size, t.Source)
				}

				return tw.Flush()
			})
		},
	}
}

// Schema creates the schema command.
func (c *Commands) Schema() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <type>",
		Short: "Print the schema metadata of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := Resolve(args[0])
			if err != nil {
				return err
			}
			s := typ.Schema()

			out := schemaOutput{Name: typ.Name(), Schema: s}

			return render(cmd.OutOrStdout(), c.cfg.Output.Format, out, func(w io.Writer) error {
				fmt.Fprintf(w, "name: %s\ntype: %s\n", typ.Name(), s.Type)
				if s.Format != "" {
					fmt.Fprintf(w, "format: %s\n", s.Format)
				}
				if s.Pattern != "" {
					fmt.Fprintf(w, "pattern: %s\n", s.Pattern)
				}
				if s.MinLength > 0 || s.MaxLength > 0 {
					fmt.Fprintf(w, "length: %d..%d\n", s.MinLength, s.MaxLength)
				}
				if s.Minimum != "" || s.Maximum != "" {
					fmt.Fprintf(w, "range: %s..%s\n", s.Minimum, s.Maximum)
				}
				for _, ex := range s.Examples {
					fmt.Fprintf(w, "example: %s\n", ex)
				}

				return nil
			})
		},
	}
}

// URI creates the uri command.
func (c *Commands) URI() *cobra.Command {
	return &cobra.Command{
		Use:   "uri <uri>...",
		Short: "Parse BIP-122 blockchain URIs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]URIResult, 0, len(args))
			rejected := 0
			for _, raw := range args {
				r := URIResult{Input: raw}
				u, err := bip122.Parse(raw)
				if err != nil {
					r.Error = err.Error()
					rejected++
					c.lggr.Warnw("URI rejected", "input", raw, "err", err)
				} else {
					loc := u.Locator()
					r.URI, r.Chain, r.Type, r.Hash = u.String(), loc.Chain, loc.Type.String(), loc.Hash
				}
				results = append(results, r)
			}

			err := render(cmd.OutOrStdout(), c.cfg.Output.Format, uriOutput{URIs: results}, func(w io.Writer) error {
				for _, r := range results {
					if r.Error != "" {
						fmt.Fprintf(w, "error: %s\n", r.Error)
						continue
					}
					fmt.Fprintf(w, "%s\tchain=%s type=%s hash=%s\n", r.URI, r.Chain, r.Type, r.Hash)
				}

				return nil
			})
			if err != nil {
				return err
			}
			if rejected > 0 {
				return fmt.Errorf("%d of %d URIs rejected", rejected, len(results))
			}

			return nil
		},
	}
}
