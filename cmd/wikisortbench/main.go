// Command wikisortbench drives the wikisort package from the outside: it
// generates stress inputs, diffs wikisort's output against the independent
// reference sort, times wikisort across sizes and cache configurations, and
// offers an interactive REPL for poking at a single run.
//
// Subcommands:
//
//	gen  --dist <name> --n <count> [--seed N]
//	diff --dist <name> --n <count> [--trials N]
//	bench --dist <name> --n <count>,<count>,... [--cache-size N]
//	repl
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: wikisortbench <gen|diff|bench|repl> [flags]")
		os.Exit(2)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, "wikisortbench:", err)
		os.Exit(1)
	}
	cfg, err := LoadConfig(cwd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wikisortbench:", err)
		os.Exit(1)
	}

	var runErr error
	switch cmd {
	case "gen":
		runErr = runGen(cfg, args)
	case "diff":
		runErr = runDiff(cfg, args)
	case "bench":
		runErr = runBench(cfg, args)
	case "repl":
		runErr = runRepl(cfg, args)
	default:
		runErr = fmt.Errorf("%w: %q", errUnknownCommand, cmd)
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, "wikisortbench:", runErr)
		os.Exit(1)
	}
}
