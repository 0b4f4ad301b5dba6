// Command iconsign builds, signs and verifies ICON JSON-RPC requests offline.
// It never contacts a node; signed request bodies are printed for the
// caller's own transport.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
