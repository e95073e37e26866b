package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	md2tex "github.com/alnah/go-md2tex"
	"github.com/alnah/go-md2tex/internal/config"
	"github.com/alnah/go-md2tex/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadInput          = errors.New("failed to read input file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrOutputNotDirectory = errors.New("output must be a directory when converting multiple files")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// filePermissions for written .tex files: rw-r--r--.
const filePermissions = 0o644

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, raw string, out io.Writer) error
}

// Compile-time interface implementation check.
var _ Converter = (*md2tex.Service)(nil)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// run orchestrates the conversion process: merge config, build the pool,
// convert every input, and report per-file results.
func run(ctx context.Context, flags *cliFlags, inputs []string) error {
	if len(inputs) == 0 {
		return ErrNoInput
	}
	if flags.workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, flags.workers)
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	quiet := flags.quiet || cfg.Quiet
	logger := newLogger(quiet, flags.verbose)

	stagingDir := flags.stagingDir
	if stagingDir == "" {
		stagingDir = cfg.StagingDir
	}

	files, err := resolveOutputs(inputs, flags.output)
	if err != nil {
		return err
	}

	var opts []md2tex.Option
	if stagingDir != "" {
		opts = append(opts, md2tex.WithStagingDir(stagingDir))
	}
	opts = append(opts, md2tex.WithLogger(logger))

	workers := resolvePoolSize(firstPositive(flags.workers, cfg.Workers))
	pool := NewServicePool(workers, func() Converter { return md2tex.New(opts...) })

	results := convertAll(ctx, pool, files)

	var failed []error
	for _, res := range results {
		if res.Err != nil {
			logger.Error("conversion failed", "input", res.InputPath, "error", res.Err)
			failed = append(failed, fmt.Errorf("%s: %w", res.InputPath, res.Err))
			continue
		}
		if flags.verbose {
			logger.Info("converted", "input", res.InputPath, "output", res.OutputPath,
				"duration", res.Duration.Round(time.Millisecond))
		} else if !quiet {
			fmt.Printf("Created %s\n", res.OutputPath)
		}
	}

	return errors.Join(failed...)
}

// convertAll converts every file, bounded by the pool size. One failing
// file does not stop the batch.
func convertAll(ctx context.Context, pool Pool, files []FileToConvert) []ConversionResult {
	results := make([]ConversionResult, len(files))

	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file FileToConvert) {
			defer wg.Done()

			svc := pool.Acquire()
			defer pool.Release(svc)

			start := time.Now()
			err := convertFile(ctx, svc, file)
			results[i] = ConversionResult{
				InputPath:  file.InputPath,
				OutputPath: file.OutputPath,
				Err:        err,
				Duration:   time.Since(start),
			}
		}(i, file)
	}
	wg.Wait()

	return results
}

// convertFile runs a single conversion to a temporary buffer first so a
// failed run never truncates an existing output file.
func convertFile(ctx context.Context, svc Converter, file FileToConvert) error {
	raw, err := os.ReadFile(file.InputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	var buf strings.Builder
	if err := svc.Convert(ctx, string(raw), &buf); err != nil {
		return err
	}

	if err := os.WriteFile(file.OutputPath, []byte(buf.String()), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// resolveOutputs pairs each input with its output path.
// A single input may target an explicit output file; multiple inputs
// require the output to be a directory. Without -o, outputs land next to
// their inputs with the extension swapped to .tex.
func resolveOutputs(inputs []string, output string) ([]FileToConvert, error) {
	files := make([]FileToConvert, 0, len(inputs))

	for _, input := range inputs {
		if !hasMarkdownExtension(input) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, input)
		}
	}

	if output != "" && len(inputs) == 1 && !isDirectory(output) {
		files = append(files, FileToConvert{InputPath: inputs[0], OutputPath: output})
		return files, nil
	}

	if output != "" && len(inputs) > 1 && !isDirectory(output) {
		return nil, fmt.Errorf("%w: %s", ErrOutputNotDirectory, output)
	}

	for _, input := range inputs {
		name := texName(filepath.Base(input))
		dir := filepath.Dir(input)
		if output != "" {
			dir = output
		}
		files = append(files, FileToConvert{InputPath: input, OutputPath: filepath.Join(dir, name)})
	}
	return files, nil
}

// texName swaps a Markdown extension for .tex.
func texName(base string) string {
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".tex"
}

func hasMarkdownExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// newLogger builds the CLI logger: quiet shows only errors, verbose shows
// per-file progress and debug detail.
func newLogger(quiet, verbose bool) *log.Logger {
	logger := log.New(os.Stderr)
	switch {
	case quiet:
		logger.SetLevel(log.ErrorLevel)
	case verbose:
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// firstPositive returns the first value greater than zero, or zero.
func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

// hintFor appends an actionable hint for well-known failure modes.
func hintFor(err error) string {
	switch {
	case errors.Is(err, exec.ErrNotFound):
		return hints.ForPandocNotFound()
	case errors.Is(err, md2tex.ErrAnchorNotFound):
		return hints.ForAnchorDrift()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
