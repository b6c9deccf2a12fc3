// Package main provides the CLI entrypoint for wrapgen.
//
// wrapgen is the analysis front-end of a wrapper-type generator:
//   - Loads Go packages (AST + go/types) or a YAML manifest of declarations
//   - Selects the inner field of every declaration marked for wrapping
//   - Checks that mutable access would not widen the declaration's visibility
//   - Reports a plan per declaration plus diagnostics for its author
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
