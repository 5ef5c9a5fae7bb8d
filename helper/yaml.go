// Package helper decodes validation inputs from YAML and JSON documents.
package helper

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"gopkg.in/yaml.v3"
)

// Input is one value read from a document.
type Input struct {
	// Raw is the scalar as written in the document.
	Raw string
	// Value is a string for hex text or a *big.Int for decimal integers.
	Value any
}

// DecodeInputs reads a YAML or JSON document holding a single scalar or a sequence of scalars.
//
// Decimal integers are returned as *big.Int so that values wider than 64 bits keep every digit;
// yaml.v3 would otherwise turn them into float64. Everything else, including "0x" literals that
// YAML resolves as integers, is kept as text for hex normalization.
func DecodeInputs(r io.Reader) ([]Input, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.ScalarNode:
		in, err := scalarInput(root)
		if err != nil {
			return nil, err
		}

		return []Input{in}, nil
	case yaml.SequenceNode:
		out := make([]Input, 0, len(root.Content))
		for _, n := range root.Content {
			in, err := scalarInput(n)
			if err != nil {
				return nil, err
			}
			out = append(out, in)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("line %d: expected a scalar or a sequence of scalars", root.Line)
	}
}

func scalarInput(n *yaml.Node) (Input, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return Input{}, fmt.Errorf("line %d: nested values are not supported", n.Line)
	}

	in := Input{Raw: n.Value, Value: n.Value}
	// integers wider than 64 bits resolve as floats
	tag := n.ShortTag()
	if (tag == "!!int" || tag == "!!float") && isDecimal(n.Value) {
		z, ok := new(big.Int).SetString(strings.ReplaceAll(n.Value, "_", ""), 10)
		if !ok {
			return Input{}, fmt.Errorf("line %d: invalid integer %q", n.Line, n.Value)
		}
		in.Value = z
	}

	return in, nil
}

// isDecimal reports whether s is a base 10 integer literal with an optional sign.
func isDecimal(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if s == "" {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && c != '_' {
			return false
		}
	}

	return true
}
