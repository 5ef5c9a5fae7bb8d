// Package main is the hextypes command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/smartcontractkit/eth-hextypes/pkg/commands"
	"github.com/smartcontractkit/eth-hextypes/pkg/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	lggr, err := logger.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := commands.New(lggr).Root(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = lggr.Sync()
		os.Exit(1)
	}
	_ = lggr.Sync()
}
