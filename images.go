package md2tex

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alnah/go-md2tex/internal/fileutil"
)

// includeGraphicsPattern matches pandoc's image inclusion for paths rooted
// one directory above the document, capturing the relative path.
var includeGraphicsPattern = regexp.MustCompile(`^\\includegraphics\{\.\./(?P<path>.*)\}$`)

// Rasterizer converts an SVG file into a PDF file.
type Rasterizer interface {
	ToPDF(svgPath, pdfPath string) error
}

// imagesPass relocates referenced images into the staging directory and
// rewrites each inclusion line to the staged path at 95% text width.
//
// Markdown tolerates relative paths and SVGs; LaTeX tolerates neither,
// so files are copied (or rasterized) into a mirror tree under stagingDir.
// A missing source file is a warning, not an abort: the staged path is
// still written and the failure surfaces later at LaTeX compile time,
// keeping one broken image from sinking a whole batch.
type imagesPass struct {
	stagingDir string
	rasterizer Rasterizer
}

func (imagesPass) Name() string { return "images" }

func (p imagesPass) Apply(doc *Document, _ FrontMatter, pctx *Context) error {
	for i := 0; i < doc.Len(); i++ {
		m := includeGraphicsPattern.FindStringSubmatch(doc.Line(i))
		if m == nil {
			continue
		}
		srcPath := m[1]

		stagedPath, err := p.stage(srcPath, pctx)
		if err != nil {
			return err
		}

		doc.Rewrite(i, `\includegraphics[width=0.95\textwidth]{`+stagedPath+`}`)
	}
	return nil
}

// stage places srcPath's file under the staging directory, mirroring its
// subdirectory structure, and returns the staged path. SVG sources are
// rasterized to PDF with the extension swapped; everything else is copied
// verbatim. Repeated runs overwrite silently.
func (p imagesPass) stage(srcPath string, pctx *Context) (string, error) {
	outDir := filepath.Join(p.stagingDir, filepath.Dir(srcPath))

	if !fileutil.FileExists(srcPath) {
		abs, _ := filepath.Abs(srcPath)
		if pctx != nil && pctx.Logger != nil {
			pctx.Logger.Warn("image does not exist", "path", abs)
		}
		return p.stagedPath(outDir, srcPath), nil
	}

	if err := fileutil.EnsureDir(outDir); err != nil {
		return "", fmt.Errorf("creating staging directory: %w", err)
	}

	outPath := p.stagedPath(outDir, srcPath)
	if isSVG(srcPath) {
		if err := p.rasterizer.ToPDF(srcPath, outPath); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrRasterize, srcPath, err)
		}
	} else {
		if err := fileutil.CopyFile(srcPath, outPath); err != nil {
			return "", fmt.Errorf("staging image %s: %w", srcPath, err)
		}
	}
	return outPath, nil
}

// stagedPath computes the output path for a source file, swapping .svg
// for .pdf and preserving every other extension.
func (imagesPass) stagedPath(outDir, srcPath string) string {
	name := filepath.Base(srcPath)
	if isSVG(srcPath) {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".pdf"
	}
	return filepath.ToSlash(filepath.Join(outDir, name))
}

func isSVG(path string) bool {
	return strings.HasSuffix(path, ".svg")
}
