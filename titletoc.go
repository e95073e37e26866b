package md2tex

import (
	"fmt"

	"github.com/alnah/go-md2tex/internal/dateutil"
)

// beginDocumentLine is the anchor for every body-adjacent insertion.
// Pandoc emits it exactly once in a well-formed standalone document.
const beginDocumentLine = `\begin{document}`

// titleTOCPass builds the title block from front matter and renders it with
// a table of contents on an unnumbered first page.
type titleTOCPass struct{}

func (titleTOCPass) Name() string { return "title and toc" }

func (p titleTOCPass) Apply(doc *Document, fm FrontMatter, _ *Context) error {
	i, err := findBeginDocument(doc)
	if err != nil {
		return err
	}

	title, err := fm.Title()
	if err != nil {
		return err
	}
	id, err := fm.ID()
	if err != nil {
		return err
	}
	revision, err := fm.Revision()
	if err != nil {
		return err
	}
	author, err := fm.ManufacturerName()
	if err != nil {
		return err
	}
	date, err := p.dateLine(fm)
	if err != nil {
		return err
	}

	// After-block first, then before-block, so both use the same index.
	doc.InsertAt(i+1,
		`\maketitle`,
		`\thispagestyle{empty}`,
		`\tableofcontents`,
		`\pagebreak`,
	)
	doc.InsertAt(i,
		`\title{`+title+` \\ `,
		`\large `+id+`, Rev. `+revision+`}`,
		date,
		`\author{`+author+`}`,
	)
	return nil
}

// dateLine renders the \date directive: the formatted front-matter date
// when present, otherwise LaTeX's \today.
func (titleTOCPass) dateLine(fm FrontMatter) (string, error) {
	date, ok, err := fm.Date()
	if err != nil {
		return "", err
	}
	if !ok {
		return `\date{\today}`, nil
	}
	formatted, err := dateutil.FormatTitleDate(date)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return `\date{` + formatted + `}`, nil
}

// findBeginDocument locates the single \begin{document} anchor.
func findBeginDocument(doc *Document) (int, error) {
	i, ok := doc.Find(beginDocumentLine)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrAnchorNotFound, beginDocumentLine)
	}
	return i, nil
}
