package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MacroPower/pathnorm/internal/cli"
)

const (
	cmdName = "pathnorm"

	shortDesc = "The pathnorm Command Line Interface (CLI)."
	longDesc  = `The pathnorm Command Line Interface (CLI).

pathnorm normalizes and combines path strings across operating system
conventions. It parses Windows and Unix root syntax (drive letters, UNC shares,
device and extended-length prefixes), resolves "." and ".." segments without
escaping the root, rewrites separators, and joins segments with validation.
Paths are treated purely as text; the filesystem is never consulted.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
