package md2tex

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-md2tex/internal/mdscan"
	"github.com/alnah/go-md2tex/internal/svgpdf"
)

// Service orchestrates the markdown-to-LaTeX pipeline.
type Service struct {
	cfg        serviceConfig
	converter  LaTeXConverter
	rasterizer Rasterizer
	logger     *log.Logger
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithStagingDir).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout:    defaultTimeout,
			stagingDir: defaultStagingDir,
		},
		logger: log.New(os.Stderr),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.converter == nil {
		s.converter = NewPandocConverter()
	}
	if s.rasterizer == nil {
		s.rasterizer = &svgpdf.Rasterizer{}
	}

	return s
}

// Convert runs the full pipeline on raw input and writes the patched LaTeX
// document to out. The input is YAML front matter between "---" delimiter
// lines followed by a GitHub-flavored Markdown body.
func (s *Service) Convert(ctx context.Context, raw string, out io.Writer) error {
	if raw == "" {
		return ErrEmptyInput
	}

	body, fm, err := Extract(raw)
	if err != nil {
		return err
	}

	s.warnRemoteImages(body)

	convertCtx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	tex, err := s.converter.ToLaTeX(convertCtx, body)
	if err != nil {
		return err
	}

	doc := NewDocument(tex)
	pctx := &Context{Logger: s.logger}

	for _, pass := range s.passes() {
		if err := pass.Apply(doc, fm, pctx); err != nil {
			return fmt.Errorf("applying %s pass: %w", pass.Name(), err)
		}
	}

	if _, err := io.WriteString(out, doc.String()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// passes returns the patch passes in their required order. Later passes
// insert at the same anchor offsets as earlier ones and therefore land
// closer to the anchor; the interleaving is pinned by tests.
func (s *Service) passes() []Pass {
	return []Pass{
		marginsPass{},
		titleTOCPass{},
		headerFooterPass{},
		imagesPass{stagingDir: s.cfg.stagingDir, rasterizer: s.rasterizer},
	}
}

// warnRemoteImages reports image destinations the resolver cannot stage.
// Remote fetching is deferred; the scan keeps the surprise out of the
// LaTeX compile step.
func (s *Service) warnRemoteImages(markdown string) {
	refs, err := mdscan.Images([]byte(markdown))
	if err != nil {
		s.logger.Debug("markdown scan failed", "error", err)
		return
	}
	for _, ref := range refs {
		if ref.Remote {
			s.logger.Warn("remote image will not be staged", "url", ref.Destination)
		}
	}
}
