package md2tex

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-md2tex/internal/yamlutil"
)

// frontMatterDelimiter separates the YAML block from the Markdown body.
const frontMatterDelimiter = "---\n"

// FrontMatter holds the parsed YAML metadata prefixed to a document.
// Parsed once by Extract, read-only afterwards.
type FrontMatter map[string]any

// Extract splits raw input into the Markdown body and its front matter.
//
// The input must contain at least two "---" delimiter lines: an empty
// preamble, the YAML block, and the body. Further delimiters inside the
// body are rejoined verbatim. Returns an error wrapping ErrFrontMatter
// when the delimiters are missing or the YAML does not parse.
func Extract(raw string) (string, FrontMatter, error) {
	parts := strings.Split(raw, frontMatterDelimiter)
	if len(parts) < 3 {
		return "", nil, fmt.Errorf("%w: expected two %q delimiters", ErrFrontMatter, "---")
	}

	body := strings.Join(parts[2:], frontMatterDelimiter)

	var fm FrontMatter
	if err := yamlutil.Unmarshal([]byte(parts[1]), &fm); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	return body, fm, nil
}

// Title returns the required "title" key.
func (fm FrontMatter) Title() (string, error) {
	return fm.stringKey("title")
}

// ID returns the required "id" key.
func (fm FrontMatter) ID() (string, error) {
	return fm.stringKey("id")
}

// ManufacturerName returns the required "manufacturer_name" key.
func (fm FrontMatter) ManufacturerName() (string, error) {
	return fm.stringKey("manufacturer_name")
}

// Revision returns the required "revision" key rendered as a string.
// Both integer and string revisions are accepted.
func (fm FrontMatter) Revision() (string, error) {
	v, ok := fm["revision"]
	if !ok {
		return "", fmt.Errorf("%w: revision", ErrMissingKey)
	}
	switch r := v.(type) {
	case string:
		return r, nil
	case int, int64, uint64:
		return fmt.Sprintf("%v", r), nil
	default:
		return "", fmt.Errorf("%w: revision must be a string or integer, got %T", ErrInvalidValue, v)
	}
}

// Date returns the optional "date" key, normalized to ISO YYYY-MM-DD.
// The second return value reports whether the key is present. YAML parsers
// may hand back unquoted dates as time.Time, so both forms are accepted.
func (fm FrontMatter) Date() (string, bool, error) {
	v, ok := fm["date"]
	if !ok {
		return "", false, nil
	}
	switch d := v.(type) {
	case string:
		return d, true, nil
	case time.Time:
		return d.Format("2006-01-02"), true, nil
	default:
		return "", true, fmt.Errorf("%w: date must be a YYYY-MM-DD string, got %T", ErrInvalidValue, v)
	}
}

// stringKey looks up a required string-valued key.
func (fm FrontMatter) stringKey(key string) (string, error) {
	v, ok := fm[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidValue, key, v)
	}
	return s, nil
}
