// Package markup builds the HTML fragments printed by the CLI.
package markup

import (
	"bytes"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// GenerateHTML wraps text in a level-1 heading.
//
// The text is added as a text node, so it is escaped the way the html
// package escapes text: &, <, >, quotes and carriage returns become
// character references. Output is compact, with no trailing newline.
func GenerateHTML(text string) string {
	return render(heading(atom.H1, text))
}

// Heading returns an element node of the given heading atom with a
// single text child.
func heading(a atom.Atom, text string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	n.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: text,
	})
	return n
}

func render(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		// bytes.Buffer writes never fail.
		panic(err)
	}
	return buf.String()
}
