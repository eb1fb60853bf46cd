// Package main provides the plainmap command.
//
// plainmap converts JSON payloads with the declarations of the built-in
// odata domain, either declared in Go or loaded from a YAML schema file:
//   - to-object prints the typed result of a conversion
//   - round-trip converts to objects and back to plain JSON
//   - stores dumps the registered descriptors
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
