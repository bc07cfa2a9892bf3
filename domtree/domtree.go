// Package domtree defines the mutable node tree that the readability engine
// operates on: elements and text nodes with parent back-references, in
// document order, owned by the caller for the duration of one extraction pass.
package domtree

import "strings"

// Node is implemented by *Element and *Text. Every node knows its parent so
// the engine can walk upward during scoring and sibling extension.
type Node interface {
	Parent() *Element
	setParent(*Element)
}

// Attr is a single attribute, kept in a slice (not a map) so that attribute
// order survives a parse/serialize round-trip even though the order carries
// no semantic meaning to the engine.
type Attr struct {
	Key string
	Val string
}

// Element is a mutable element node: a tag name, its attributes, its
// children in document order, and a parent back-reference.
type Element struct {
	TagName  string
	Attrs    []Attr
	Children []Node
	parent   *Element
}

// Text is a text node.
type Text struct {
	Data   string
	parent *Element
}

func (e *Element) Parent() *Element    { return e.parent }
func (e *Element) setParent(p *Element) { e.parent = p }
func (t *Text) Parent() *Element       { return t.parent }
func (t *Text) setParent(p *Element)   { t.parent = p }

// NewElement creates a detached element with the given (lowercased) tag name.
func NewElement(tag string) *Element {
	return &Element{TagName: strings.ToLower(tag)}
}

// NewText creates a detached text node.
func NewText(data string) *Text {
	return &Text{Data: data}
}

// AppendChild appends child to e's children, taking ownership of it.
func (e *Element) AppendChild(child Node) {
	child.setParent(e)
	e.Children = append(e.Children, child)
}

// ReplaceChildren installs a new child list wholesale, re-parenting each one.
func (e *Element) ReplaceChildren(children []Node) {
	for _, c := range children {
		c.setParent(e)
	}
	e.Children = children
}

// Detach removes n from its parent's children, if it has a parent. A no-op
// if n has already been detached (its parent is nil), so detaching twice is
// harmless. If an ancestor of n was removed first, n is unlinked from its
// parent inside the already-detached subtree, which leaves the live tree
// unchanged.
func Detach(n Node) {
	p := n.Parent()
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == n {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	n.setParent(nil)
}

// Get returns the value of attribute key and whether it is present.
func (e *Element) Get(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Attr returns the value of attribute key, or "" if absent.
func (e *Element) Attr(key string) string {
	v, _ := e.Get(key)
	return v
}

// Has reports whether attribute key is present.
func (e *Element) Has(key string) bool {
	_, ok := e.Get(key)
	return ok
}

// Set adds or overwrites attribute key, preserving first-seen order.
func (e *Element) Set(key, val string) {
	for i, a := range e.Attrs {
		if a.Key == key {
			e.Attrs[i].Val = val
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Val: val})
}

// Del removes attribute key if present.
func (e *Element) Del(key string) {
	for i, a := range e.Attrs {
		if a.Key == key {
			e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
			return
		}
	}
}

// Retag rewrites e's tag name in place (used by the div→p and sibling-tag
// rewrites; never creates a new node so existing parent/child links and any
// external index keyed on *Element identity stay valid).
func (e *Element) Retag(tag string) {
	e.TagName = strings.ToLower(tag)
}

// ClassName and ID are convenience accessors used throughout the classifier.
func (e *Element) ClassName() string { return e.Attr("class") }
func (e *Element) ID() string        { return e.Attr("id") }

// Document wraps the root <html> element and a direct handle to <body>.
type Document struct {
	Root *Element
	Body *Element
}

// Walk calls fn for e and every descendant, in pre-order document order.
// fn must not add, remove or move nodes — structural mutation is kept out
// of traversals everywhere in this module (see internal/engine for the
// scan-then-mutate pattern that relies on this). Changing a node's tag name
// or attributes in place is safe; Normalize and Clean do so.
func Walk(e *Element, fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		if ce, ok := c.(*Element); ok {
			Walk(ce, fn)
		}
	}
}

// Elements returns every descendant (and e itself) in document order,
// snapshotting the tree before the caller mutates it.
func Elements(e *Element) []*Element {
	var out []*Element
	Walk(e, func(el *Element) { out = append(out, el) })
	return out
}

// ByTagName returns descendants (and e itself) matching tag, or every
// element if tag is "*".
func ByTagName(e *Element, tag string) []*Element {
	tag = strings.ToLower(tag)
	var out []*Element
	Walk(e, func(el *Element) {
		if tag == "*" || el.TagName == tag {
			out = append(out, el)
		}
	})
	return out
}

// TextContent concatenates the text of n and all of its descendants.
func TextContent(n Node) string {
	switch v := n.(type) {
	case *Text:
		return v.Data
	case *Element:
		var b strings.Builder
		for _, c := range v.Children {
			b.WriteString(TextContent(c))
		}
		return b.String()
	default:
		return ""
	}
}

// CountNodes returns the number of elements in the subtree rooted at e
// (e included), or 0 for a nil root.
func CountNodes(e *Element) int {
	if e == nil {
		return 0
	}
	n := 0
	Walk(e, func(*Element) { n++ })
	return n
}
