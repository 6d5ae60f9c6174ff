// Command tdmasched_root is a thin delegate so `go run .` at the module
// root still produces a working binary; the command tree itself lives
// in internal/cli, shared with cmd/tdmasched.
package main

import "github.com/wandstem/tdmasched/internal/cli"

func main() {
	cli.Main()
}
