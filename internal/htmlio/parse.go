// Package htmlio implements the three external collaborators spec.md §6
// names: HTML parsing, HTML cleaning (sanitization), and serialization. All
// three sit on top of golang.org/x/net/html, the teacher library's existing
// dependency, rather than hand-rolling a tokenizer or a serializer.
package htmlio

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/mackee/go-readability/domtree"
)

// Parse reads HTML from r and builds a domtree.Document. golang.org/x/net/html
// never fails on malformed markup — only on a read error from r — so the
// returned error corresponds to spec.md §7's ParseError, not to "ugly but
// parseable" HTML.
func Parse(r io.Reader) (*domtree.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var htmlNode, bodyNode *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "html":
				if htmlNode == nil {
					htmlNode = n
				}
			case "body":
				if bodyNode == nil {
					bodyNode = n
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(root)

	htmlEl := domtree.NewElement("html")
	if htmlNode != nil {
		for c := htmlNode.FirstChild; c != nil; c = c.NextSibling {
			convert(c, htmlEl)
		}
	} else {
		for c := root.FirstChild; c != nil; c = c.NextSibling {
			convert(c, htmlEl)
		}
	}

	var bodyEl *domtree.Element
	for _, c := range domtree.ByTagName(htmlEl, "body") {
		bodyEl = c
		break
	}
	if bodyEl == nil {
		bodyEl = domtree.NewElement("body")
		if bodyNode != nil {
			for c := bodyNode.FirstChild; c != nil; c = c.NextSibling {
				convert(c, bodyEl)
			}
		}
		htmlEl.AppendChild(bodyEl)
	}

	return &domtree.Document{Root: htmlEl, Body: bodyEl}, nil
}

// convert appends node (and its subtree) onto parent, skipping comment and
// processing-instruction nodes — those are also stripped by the Sanitizer
// collaborator, but Parse drops them unconditionally since domtree has no
// representation for them at all.
func convert(node *html.Node, parent *domtree.Element) {
	switch node.Type {
	case html.ElementNode:
		el := domtree.NewElement(node.Data)
		for _, a := range node.Attr {
			el.Set(a.Key, a.Val)
		}
		parent.AppendChild(el)
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			convert(c, el)
		}
	case html.TextNode:
		parent.AppendChild(domtree.NewText(node.Data))
	case html.DocumentNode:
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			convert(c, parent)
		}
	default:
		// Comment, Doctype, ErrorNode: intentionally dropped.
	}
}
