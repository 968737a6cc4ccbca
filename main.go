package main

import (
	"os"

	"github.com/flarebyte/greet/cmd/greet/root"
)

// Allows `go run .` from the repository root; the installable binary lives
// in cmd/greet.
func main() {
	os.Exit(root.Run(os.Args[1:], os.Stdout, os.Stderr))
}
