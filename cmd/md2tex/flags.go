package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the md2tex command.
type cliFlags struct {
	output     string
	stagingDir string
	workers    int
	config     string
	quiet      bool
	verbose    bool
	version    bool
}

// parseFlags parses command-line flags and returns the remaining
// positional arguments (the input files).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2tex", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (single input) or directory (batch)")
	fs.StringVar(&f.stagingDir, "staging-dir", "", "root directory for staged images (default ./tmp)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel conversions (0 = auto)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
