package md2tex

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInput     = errors.New("input content cannot be empty")
	ErrFrontMatter    = errors.New("invalid YAML front matter")
	ErrMissingKey     = errors.New("missing front matter key")
	ErrInvalidValue   = errors.New("invalid front matter value")
	ErrConversion     = errors.New("pandoc conversion failed")
	ErrAnchorNotFound = errors.New("anchor line not found")
	ErrRasterize      = errors.New("SVG rasterization failed")
)
