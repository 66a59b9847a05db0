// Package main provides the CLI entrypoint for bridge-generator.
//
// bridge-generator holds the argument conversions of a C-to-Swift binding
// generator:
//   - Lists the conversion strategies and their templates
//   - Renders the C value, closure head/tail and native reconstruction of one strategy
//   - Picks a strategy from a parameter's type category
//   - Renders a whole C call wrapped in the closures its arguments need
//   - Validates and exports YAML catalogs overriding the built-in templates
package main

import (
	"fmt"
	"os"

	"bridge-generator/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
