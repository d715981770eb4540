// Command loxfront is the CLI collaborator around the lexer, parser, and
// DOT emitter. File I/O, exit-code policy, and configuration live here
// so the core packages stay free of any dependency on a filesystem or a
// process.
package main

import (
	"os"

	"github.com/ostnam/loxfront/cmd/loxfront/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
