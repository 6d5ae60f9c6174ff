// Command tdmasched is the CLI shell for the TDMA scheduling CORE: a
// single binary with plan, draw, and netdesc subcommands, per spec §6.
// It is a pure I/O shell — config loading, logging, metrics, and
// rendering all live here or in supporting internal packages, never in
// the CORE itself.
package main

import "github.com/wandstem/tdmasched/internal/cli"

func main() {
	cli.Main()
}
