package md2tex

import "fmt"

// Document class anchor shapes emitted by pandoc --standalone. The options
// list is empty on a single line, or spills onto the following line.
const (
	documentClassLine  = `\documentclass[]{article}`
	documentClassOpen  = `\documentclass[`
	documentClassClose = `]{article}`
)

// marginDirective sets the organization's 1.25-inch page margins.
const marginDirective = `\usepackage[margin=1.25in]{geometry}`

// marginsPass inserts the geometry directive right after the document class
// declaration.
type marginsPass struct{}

func (marginsPass) Name() string { return "margins" }

func (p marginsPass) Apply(doc *Document, _ FrontMatter, _ *Context) error {
	i, err := p.findAnchor(doc)
	if err != nil {
		return err
	}
	doc.InsertAt(i+1, marginDirective)
	return nil
}

// findAnchor returns the index of the last line of the document class
// declaration. Failure means pandoc's preamble shape changed.
func (marginsPass) findAnchor(doc *Document) (int, error) {
	if i, ok := doc.Find(documentClassLine); ok {
		return i, nil
	}
	i, ok := doc.Find(documentClassOpen)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrAnchorNotFound, documentClassLine)
	}
	if i+1 >= doc.Len() || doc.Line(i+1) != documentClassClose {
		return 0, fmt.Errorf("%w: %s not followed by %s", ErrAnchorNotFound, documentClassOpen, documentClassClose)
	}
	return i + 1, nil
}
