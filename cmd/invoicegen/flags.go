package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// ErrParseFlags indicates invalid command line flags.
var ErrParseFlags = errors.New("invalid flags")

// cliFlags holds the ambient flags. The operational flow (which data file,
// template, and invoice to use) is always interactive; flags only tune the
// environment around it.
type cliFlags struct {
	config  string
	timeout int
	noOpen  bool
	verbose bool
	version bool
}

// parseFlags parses command line arguments into cliFlags.
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("invoicegen", flag.ContinueOnError)
	fs.StringVarP(&f.config, "config", "c", "", "path to YAML config file")
	fs.IntVarP(&f.timeout, "timeout", "t", 0, "PDF rendering timeout in seconds (0 = config default)")
	fs.BoolVar(&f.noOpen, "no-open", false, "do not open the generated PDF")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose diagnostics")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFlags, err)
	}
	if f.timeout < 0 {
		return nil, fmt.Errorf("%w: timeout must not be negative", ErrParseFlags)
	}

	return f, nil
}
