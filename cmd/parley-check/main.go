// parley-check is a CLI tool for inspecting and comparing parley
// compatibility version strings.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/parley-protocol/parley-go/pkg/compat"
	"github.com/parley-protocol/parley-go/pkg/feature"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitIncompatible = 2
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "compare":
		exitCode = runCompare(args)
	case "show":
		exitCode = runShow(args)
	case "current":
		fmt.Println(compat.Current())
		exitCode = exitSuccess
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func runCompare(args []string) int {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	featureID := fs.Uint("feature", uint(feature.Root), "feature ID to check")
	rangeSpec := fs.String("range", "", "acceptable peer version range (e.g. \">= 1.0, < 2.0\")")
	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: parley-check compare [options] <self-wire> <peer-wire>")
		return exitCommandError
	}

	acceptable := compat.Unbounded()
	if *rangeSpec != "" {
		var err error
		acceptable, err = compat.NewRange(*rangeSpec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitCommandError
		}
	}

	cat := feature.Default()
	self, err := compat.ParseSnapshot(cat, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing self version: %v\n", err)
		return exitCommandError
	}
	peer, err := compat.ParseSnapshot(cat, fs.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing peer version: %v\n", err)
		return exitCommandError
	}

	f := feature.ID(*featureID)
	if self.IsCompatibleRange(peer, f, acceptable) {
		fmt.Printf("compatible for %s\n", f)
		return exitSuccess
	}
	fmt.Printf("incompatible for %s\n", f)
	return exitIncompatible
}

func runShow(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: parley-check show <wire>")
		return exitCommandError
	}

	cat := feature.Default()
	snap, err := compat.ParseSnapshot(cat, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCommandError
	}

	for _, f := range cat.Features() {
		if v, ok := snap.Get(f); ok {
			fmt.Printf("%-12s %s\n", f, v)
		} else {
			fmt.Printf("%-12s (absent)\n", f)
		}
	}
	return exitSuccess
}

func printUsage() {
	fmt.Println(`parley-check - compatibility version inspection tool

Usage:
  parley-check <command> [options] [args...]

Commands:
  compare    Compare two wire-format version strings for a feature
  show       Display the per-feature versions in a wire string
  current    Print this build's own wire-format version string

Options:
  -h, --help  Show this help message

Examples:
  parley-check compare -feature 1 "1.0.0;1.2.0" "1.0.0;1.2.5"
  parley-check compare -range ">= 1.0, < 2.0" "1.0.0" "1.5.0"
  parley-check show "1.2.0;0.3.1;2.0.0-beta"`)
}
