package md2tex

import (
	"time"

	"github.com/charmbracelet/log"
)

// Context carries auxiliary configuration into every patch pass.
// Pass logic does not branch on it today; the fields are reserved so pass
// signatures stay stable as the pipeline grows.
type Context struct {
	// SourceDir is the directory of the input document. Reserved for
	// resolving image paths relative to the document instead of the
	// working directory.
	SourceDir string

	// Logger receives non-fatal diagnostics (e.g. missing images).
	Logger *log.Logger
}

// Pass is one self-contained transformation over the LaTeX line sequence.
// A pass locates its anchor fresh on every run and either inserts its whole
// block or fails without mutating the document.
type Pass interface {
	Name() string
	Apply(doc *Document, fm FrontMatter, pctx *Context) error
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout    time.Duration
	stagingDir string
}

// Defaults for service configuration.
const (
	defaultTimeout    = 60 * time.Second
	defaultStagingDir = "./tmp"
)

// WithTimeout sets the pandoc subprocess timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2tex: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithStagingDir sets the root directory for staged image files.
func WithStagingDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.cfg.stagingDir = dir
		}
	}
}

// WithConverter substitutes the Markdown to LaTeX converter.
// Used by tests to decouple the patch engine from a pandoc installation.
func WithConverter(c LaTeXConverter) Option {
	return func(s *Service) {
		s.converter = c
	}
}

// WithRasterizer substitutes the SVG to PDF rasterizer.
func WithRasterizer(r Rasterizer) Option {
	return func(s *Service) {
		s.rasterizer = r
	}
}

// WithLogger substitutes the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}
