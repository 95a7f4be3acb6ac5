/*
Hxlc is a small command-line front end for the hxl package.

Usage:

	hxlc [flags] check FILE [FILE ...]
	hxlc [flags] repl

Once started, "check" tokenizes, parses, and analyzes one or more HXL files
(no schema or deserialization protocol is known to the CLI, so only the
structural stages run) and prints either a success summary with per-stage
timing or a table of diagnostics for each. When more than one file is given,
a final line names which ones had diagnostics. "repl" reads HXL blocks from
stdin,
separated by blank lines, and reports diagnostics for each block as it is
entered; type the single word "quit" to exit.

The flags are:

	-v, --version
		Give the current version of hxlc and then exit.

	-c, --config FILE
		Use the given .hxlc.toml file instead of searching the working
		directory and $HOME for one.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/hxlconf/hxl/internal/config"
	"github.com/hxlconf/hxl/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitCheckFailed indicates "check" found diagnostics in, or could not
	// read, at least one of its input files.
	ExitCheckFailed

	// ExitUsageError indicates the CLI was invoked incorrectly.
	ExitUsageError

	// ExitInitError indicates an issue loading configuration or input.
	ExitInitError
)

var (
	returnCode  int     = ExitSuccess
	flagVersion *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	configFile  *string = pflag.StringP("config", "c", "", "Use the given .hxlc.toml file instead of the default search path")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	args := pflag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "ERROR: expected a subcommand: check FILE, or repl")
		returnCode = ExitUsageError
		return
	}

	switch args[0] {
	case "check":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "ERROR: check requires at least one FILE argument")
			returnCode = ExitUsageError
			return
		}
		if !runCheckAll(cfg, args[1:]) {
			returnCode = ExitCheckFailed
		}
	case "repl":
		if err := runRepl(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
		}
	default:
		fmt.Fprintf(os.Stderr, "ERROR: unknown subcommand %q\n", args[0])
		returnCode = ExitUsageError
	}
}

func loadConfig(explicit string) (config.Config, error) {
	if explicit == "" {
		return config.Load()
	}

	data, err := os.ReadFile(explicit)
	if err != nil {
		return config.Config{}, err
	}
	return config.FromBytes(data)
}
