package md2tex

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// LaTeXConverter abstracts Markdown to LaTeX conversion so the patch engine
// and tests do not depend on a pandoc installation.
type LaTeXConverter interface {
	ToLaTeX(ctx context.Context, markdown string) (string, error)
}

// CommandRunner abstracts command execution to enable testing without real
// subprocesses. The content is fed to the command on stdin.
type CommandRunner interface {
	Run(ctx context.Context, stdin string, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, stdin string, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// PandocConverter converts GitHub-flavored Markdown to standalone LaTeX by
// invoking the pandoc CLI.
type PandocConverter struct {
	Runner CommandRunner
}

// NewPandocConverter creates a PandocConverter with a real command runner.
func NewPandocConverter() *PandocConverter {
	return &PandocConverter{Runner: &ExecRunner{}}
}

// pandocArgs selects GFM input, standalone LaTeX output, and the fixed
// link-coloring variables.
var pandocArgs = []string{
	"-f", "gfm",
	"-t", "latex",
	"--standalone",
	"-V", "urlcolor=blue",
	"-V", "linkcolor=black",
}

// ToLaTeX converts Markdown content to a standalone LaTeX document.
// The content is passed to pandoc on stdin; a non-zero exit status yields
// an error wrapping ErrConversion that includes pandoc's stderr.
func (c *PandocConverter) ToLaTeX(ctx context.Context, markdown string) (string, error) {
	if markdown == "" {
		return "", ErrEmptyInput
	}

	stdout, stderr, err := c.Runner.Run(ctx, markdown, "pandoc", pandocArgs...)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrConversion, strings.TrimSpace(stderr), err)
	}

	return stdout, nil
}
