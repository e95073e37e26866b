// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForPandocNotFound returns hints when the pandoc binary cannot be executed.
func ForPandocNotFound() string {
	return format("install pandoc (https://pandoc.org/installing) and ensure it is on PATH")
}

// ForAnchorDrift returns hints for anchor-not-found errors. The patch
// passes assume the LaTeX layout pandoc produces for --standalone article
// documents; a missing anchor usually means pandoc changed that layout.
func ForAnchorDrift() string {
	return format("pandoc's LaTeX output layout may have changed; check pandoc --version")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2tex/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-md2tex") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
