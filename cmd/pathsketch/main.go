// Command pathsketch replays a sketched scene and talks to an external path
// solver through files: it prints the problem the solver needs, reads the
// solver's edge-list answer back and shows the reconstructed paths.
//
// Usage:
//
//	pathsketch problem -scene s.toml
//	pathsketch solve   -scene s.toml [-output solver.txt | -output -]
//	pathsketch check   -scene s.toml
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
