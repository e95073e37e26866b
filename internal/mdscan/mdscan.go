// Package mdscan inspects Markdown sources before conversion.
//
// The LaTeX image resolver can only stage files reachable on the local
// filesystem. Scanning the Markdown AST up front lets the pipeline warn
// about remote image URLs instead of handing the user a LaTeX document
// that fails to compile.
package mdscan

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Ref is one image reference found in a Markdown document.
type Ref struct {
	Destination string
	Remote      bool
}

// parser matches the GFM dialect fed to pandoc.
var parser = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Images collects every image destination in document order.
func Images(source []byte) ([]Ref, error) {
	doc := parser.Parser().Parse(text.NewReader(source))

	var refs []Ref
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		img, ok := n.(*ast.Image)
		if !ok {
			return ast.WalkContinue, nil
		}
		dest := string(img.Destination)
		refs = append(refs, Ref{Destination: dest, Remote: isRemote(dest)})
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return refs, nil
}

func isRemote(dest string) bool {
	return strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://")
}
