package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	addr    string
	config  string
	verbose bool
	version bool
}

// parseFlags parses args (including the program name). --addr overrides
// the config file's listen address when set.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("whtreportd", flag.ContinueOnError)

	f := &cliFlags{}
	fs.StringVar(&f.addr, "addr", "", "listen address (overrides config)")
	fs.StringVarP(&f.config, "config", "c", "", "path to YAML config file")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	return f, nil
}
