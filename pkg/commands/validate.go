package commands

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/eth-hextypes/helper"
	"github.com/smartcontractkit/eth-hextypes/hexval"
)

// Result is the outcome of validating one input.
type Result struct {
	Input string `json:"input" yaml:"input" toml:"input"`
	Value string `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

type validateOutput struct {
	Type    string   `json:"type" yaml:"type" toml:"type"`
	Results []Result `json:"results" yaml:"results" toml:"results"`
}

type serializeOutput struct {
	Type  string `json:"type" yaml:"type" toml:"type"`
	Value any    `json:"value" yaml:"value" toml:"value"`
}

// familyFlags are the flags that build an ad hoc family instead of resolving a type name.
type familyFlags struct {
	kind    string
	size    int
	signed  bool
	pad     string
	decimal bool
	file    string
}

func (f *familyFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.kind, "kind", "", "Build a family of this kind instead of naming a type: bytes, str or int")
	flags.IntVar(&f.size, "size", 0, "Width in bytes of the ad hoc family, 0 for unbounded")
	flags.BoolVar(&f.signed, "signed", false, "Ad hoc integer family accepts negative values")
	flags.StringVar(&f.pad, "pad", "", "Pad direction of the ad hoc family: left or right")
	flags.BoolVar(&f.decimal, "decimal", false, "Read values as base 10 integers instead of hex")
	flags.StringVarP(&f.file, "file", "f", "", "Read values from a YAML or JSON document holding a list of scalars")
}

// Validate creates the validate command.
func (c *Commands) Validate() *cobra.Command {
	var ff familyFlags

	cmd := &cobra.Command{
		Use:   "validate [type] [value...]",
		Short: "Validate values and print their canonical form",
		Long: `Validate each value against a type and print its canonical form.

The type is a catalog family (HexBytes20, UInt256, ...), an ABI type (bytes4, int24, address, ...)
or Bip122Uri. With --kind or --size an ad hoc family is built instead and every argument is a value.
Values given with --file keep their YAML type: decimal integers are validated as integers and
everything else as hex text. Values are read from stdin, one per line, when none are given.`,
		Example: `  hextypes validate HexBytes20 0x05 0xabc
  hextypes validate --kind bytes --size 20 --pad right 0x05
  hextypes validate --kind int --size 1 --signed --decimal -- -128
  hextypes validate UInt256 -f amounts.yaml
  cat hashes.txt | hextypes validate HashStr32 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, values, err := c.target(cmd, &ff, args)
			if err != nil {
				return err
			}
			inputs, err := c.inputs(values, &ff)
			if err != nil {
				return err
			}

			results := make([]Result, 0, len(inputs))
			rejected := 0
			for _, in := range inputs {
				r := Result{Input: in.Raw}

				err := in.err
				if err == nil {
					r.Value, err = typ.Canonical(in.Value)
				}
				if err != nil {
					r.Error = err.Error()
					rejected++
					c.lggr.Warnw("Value rejected", "type", typ.Name(), "input", in.Raw, "err", err)
				}
				results = append(results, r)
			}
			c.lggr.Infow("Validation finished",
				"type", typ.Name(),
				"accepted", len(results)-rejected,
				"rejected", rejected,
			)

			out := validateOutput{Type: typ.Name(), Results: results}
			err = render(cmd.OutOrStdout(), c.cfg.Output.Format, out, func(w io.Writer) error {
				for _, r := range results {
					line := r.Value
					if r.Error != "" {
						line = "error: " + r.Error
					}
					if _, err := fmt.Fprintln(w, line); err != nil {
						return err
					}
				}

				return nil
			})
			if err != nil {
				return err
			}
			if rejected > 0 {
				return fmt.Errorf("%d of %d values rejected", rejected, len(results))
			}

			return nil
		},
	}
	ff.register(cmd)

	return cmd
}

// Serialize creates the serialize command.
func (c *Commands) Serialize() *cobra.Command {
	var decimal bool

	cmd := &cobra.Command{
		Use:   "serialize <type> <value>",
		Short: "Validate one value and encode it with the type's own marshaler",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := Resolve(args[0])
			if err != nil {
				return err
			}
			in, err := parseInput(args[1], decimal)
			if err != nil {
				return err
			}
			v, err := typ.ValidateAny(in)
			if err != nil {
				return fmt.Errorf("failed to validate %s: %w", typ.Name(), err)
			}

			out := serializeOutput{Type: typ.Name(), Value: v}

			return render(cmd.OutOrStdout(), c.cfg.Output.Format, out, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, v)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&decimal, "decimal", false, "Read the value as a base 10 integer instead of hex")

	return cmd
}

// target resolves the type for validate and returns the remaining arguments as values.
func (c *Commands) target(cmd *cobra.Command, ff *familyFlags, args []string) (Type, []string, error) {
	flags := cmd.Flags()
	if !flags.Changed("kind") && !flags.Changed("size") {
		if len(args) == 0 {
			return nil, nil, fmt.Errorf("requires a type or --kind")
		}
		typ, err := Resolve(args[0])

		return typ, args[1:], err
	}

	kind := ff.kind
	if kind == "" {
		kind = "bytes"
	}
	signed := c.cfg.Validate.Signed
	if flags.Changed("signed") {
		signed = ff.signed
	}
	padName := c.cfg.Validate.Pad
	if flags.Changed("pad") {
		padName = ff.pad
	}
	pad, err := hexval.ParsePadDirection(padName)
	if err != nil {
		return nil, nil, err
	}

	typ, err := AdHoc(kind, ff.size, signed, pad)
	if err != nil {
		return nil, nil, err
	}
	c.lggr.Debugw("Using ad hoc family", "name", typ.Name(), "pad", pad.String(), "signed", signed)

	return typ, args, nil
}

// pendingInput is a value waiting for validation, or the error that prevented reading it.
type pendingInput struct {
	helper.Input
	err error
}

// inputs collects values from the --file document followed by the arguments. Stdin is read
// only when neither is given.
func (c *Commands) inputs(args []string, ff *familyFlags) ([]pendingInput, error) {
	var out []pendingInput

	if ff.file != "" {
		f, err := os.Open(ff.file)
		if err != nil {
			return nil, fmt.Errorf("failed to open values file: %w", err)
		}
		defer f.Close()

		decoded, err := helper.DecodeInputs(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", ff.file, err)
		}
		for _, in := range decoded {
			out = append(out, pendingInput{Input: in})
		}
		c.lggr.Debugw("Read values file", "path", ff.file, "count", len(decoded))
	}

	if len(args) == 0 && ff.file == "" {
		var err error
		if args, err = readValues(c.deps.Stdin); err != nil {
			return nil, fmt.Errorf("failed to read values: %w", err)
		}
	}
	for _, raw := range args {
		v, err := parseInput(raw, ff.decimal)
		out = append(out, pendingInput{Input: helper.Input{Raw: raw, Value: v}, err: err})
	}

	return out, nil
}

// parseInput returns raw as a hex string, or as an integer when decimal is set.
func parseInput(raw string, decimal bool) (any, error) {
	if !decimal {
		return raw, nil
	}

	n, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok {
		return nil, hexval.NewHexValueError(raw)
	}

	return n, nil
}

func readValues(r io.Reader) ([]string, error) {
	var values []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			values = append(values, line)
		}
	}

	return values, sc.Err()
}
