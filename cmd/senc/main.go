// Command senc encrypts and decrypts files and streams into self-describing
// envelopes.
package main

import (
	"os"

	"github.com/idelchi/senc/internal/commands"
)

// version is set at build time.
var version = "dev"

func main() {
	if err := commands.Execute(version); err != nil {
		os.Exit(1)
	}
}
