package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// printUsage writes the command usage and flag defaults.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "usage: md2tex [flags] <input.md> [<input.md> ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Converts Markdown documents with YAML front matter into LaTeX.")
	fmt.Fprintln(w, "Requires pandoc on PATH.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
