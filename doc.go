// Package md2tex converts Markdown documents with YAML front matter into
// LaTeX suitable for PDF rendering.
//
// Pandoc performs the Markdown to LaTeX conversion; md2tex then patches the
// resulting document line by line to apply organization formatting: margins,
// a title page built from the front matter, fancyhdr headers and footers,
// and a table of contents. Image references are staged under a local
// directory, with SVGs rasterized to PDF since LaTeX cannot include them.
//
// # Quick Start
//
//	svc := md2tex.New()
//
//	raw, _ := os.ReadFile("spec.md")
//	out, _ := os.Create("spec.tex")
//	defer out.Close()
//
//	if err := svc.Convert(ctx, string(raw), out); err != nil {
//	    log.Fatal(err)
//	}
//
// The input must carry YAML front matter with the keys title, id, revision,
// and manufacturer_name:
//
//	---
//	title: Software Requirements
//	id: DOC-001
//	revision: 3
//	manufacturer_name: Acme Devices Inc.
//	---
//	# Introduction
//	...
//
// # Conversion Pipeline
//
//  1. Front matter extraction (YAML between --- delimiters)
//  2. Markdown to LaTeX via the pandoc subprocess (GFM in, standalone out)
//  3. Patch passes over the LaTeX lines: margins, title and table of
//     contents, header and footer, image resolution
//  4. Output written to the caller's writer
//
// The patch passes depend on the precise shape of pandoc's standalone LaTeX
// output. When an expected anchor line is missing the pass fails with
// ErrAnchorNotFound rather than guessing; that usually means the installed
// pandoc formats its output differently.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := md2tex.New(
//	    md2tex.WithStagingDir("build/images"),
//	    md2tex.WithTimeout(2*time.Minute),
//	)
//
// Tests can substitute the external tool boundaries with WithConverter and
// WithRasterizer.
//
// # Requirements
//
// Conversion requires pandoc on PATH. SVG rasterization is done in-process
// (oksvg); masks, style sheets, gradients, and embedded bitmaps are not
// supported and render incompletely.
package md2tex
