package htmlio

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mackee/go-readability/domtree"
)

// Render serializes n back to an HTML string using golang.org/x/net/html's
// own writer, so escaping and self-closing-tag rules come from the library
// rather than from a hand-rolled string builder.
func Render(n domtree.Node) string {
	var b strings.Builder
	_ = html.Render(&b, toHTMLNode(n))
	return b.String()
}

// RenderDocument serializes a full-document envelope (an <html> element)
// with a leading doctype, per spec.md §4.6.
func RenderDocument(root *domtree.Element) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(Render(root))
	return b.String()
}

func toHTMLNode(n domtree.Node) *html.Node {
	switch v := n.(type) {
	case *domtree.Text:
		return &html.Node{Type: html.TextNode, Data: v.Data}
	case *domtree.Element:
		hn := &html.Node{
			Type:     html.ElementNode,
			Data:     v.TagName,
			DataAtom: atom.Lookup([]byte(v.TagName)),
		}
		for _, a := range v.Attrs {
			hn.Attr = append(hn.Attr, html.Attribute{Key: a.Key, Val: a.Val})
		}
		for _, c := range v.Children {
			hn.AppendChild(toHTMLNode(c))
		}
		return hn
	default:
		return &html.Node{Type: html.TextNode}
	}
}
