package md2tex

import "strings"

// Document is the ordered sequence of LaTeX lines being patched.
// It is owned by a single Convert call; passes mutate it in place and there
// is never more than one writer.
type Document struct {
	lines []string
}

// NewDocument splits LaTeX text into a line sequence.
func NewDocument(text string) *Document {
	return &Document{lines: strings.Split(text, "\n")}
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns the line at index i. Panics on out-of-range indices, like a
// slice access; callers derive indices from Find results.
func (d *Document) Line(i int) string {
	return d.lines[i]
}

// Lines returns a copy of the current line sequence.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// Find returns the index of the first line equal to literal.
func (d *Document) Find(literal string) (int, bool) {
	for i, line := range d.lines {
		if line == literal {
			return i, true
		}
	}
	return 0, false
}

// InsertAt inserts the block of lines before index i, shifting the tail.
// The whole block is inserted in order as a single operation.
func (d *Document) InsertAt(i int, block ...string) {
	d.lines = append(d.lines[:i], append(append([]string{}, block...), d.lines[i:]...)...)
}

// Rewrite replaces the line at index i.
func (d *Document) Rewrite(i int, line string) {
	d.lines[i] = line
}

// String joins the lines back into LaTeX text.
func (d *Document) String() string {
	return strings.Join(d.lines, "\n")
}
