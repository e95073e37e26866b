// Package svgpdf converts SVG files into single-page PDF files.
//
// The SVG is rasterized in-process (no external tool): oksvg parses the
// vector data, rasterx renders it into an RGBA image, and the result is
// embedded as a PNG in a PDF page of matching dimensions. Masks, style
// sheets, color gradients, and embedded bitmaps are not supported by the
// renderer and come out incomplete.
package svgpdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"codeberg.org/go-pdf/fpdf"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// defaultSize is used when the SVG declares no viewBox or dimensions.
const defaultSize = 512.0

// Rasterizer converts SVG files to PDF via in-process rasterization.
type Rasterizer struct{}

// ToPDF reads the SVG at svgPath and writes a one-page PDF to pdfPath.
// The page dimensions follow the SVG viewport, one point per pixel.
func (Rasterizer) ToPDF(svgPath, pdfPath string) error {
	icon, err := oksvg.ReadIcon(svgPath, oksvg.WarnErrorMode)
	if err != nil {
		return fmt.Errorf("svgpdf: parsing %s: %w", svgPath, err)
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = defaultSize, defaultSize
	}

	rgba := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	scanner := rasterx.NewScannerGV(int(w), int(h), rgba, rgba.Bounds())
	icon.SetTarget(0, 0, w, h)
	icon.Draw(rasterx.NewDasher(int(w), int(h), scanner), 1)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return fmt.Errorf("svgpdf: encoding %s: %w", svgPath, err)
	}

	return writePDF(&buf, w, h, pdfPath)
}

// writePDF embeds the PNG as a full-page image in a PDF sized to match.
func writePDF(pngData *bytes.Buffer, w, h float64, pdfPath string) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.AddPage()
	pdf.RegisterImageOptionsReader("svg", fpdf.ImageOptions{ImageType: "PNG"}, pngData)
	pdf.ImageOptions("svg", 0, 0, w, h, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	if err := pdf.OutputFileAndClose(pdfPath); err != nil {
		return fmt.Errorf("svgpdf: writing %s: %w", pdfPath, err)
	}
	return nil
}
