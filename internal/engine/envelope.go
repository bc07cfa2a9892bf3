package engine

import "github.com/mackee/go-readability/domtree"

// BuildEnvelope implements spec.md §4.6. Given the cleaned subtree T, it
// returns a <div id="readabilityBody"> (fragment=true) or a full minimal
// HTML document wrapping that div (fragment=false).
func BuildEnvelope(t *domtree.Element, fragment bool) *domtree.Element {
	var result *domtree.Element

	switch {
	case t.TagName == "body":
		t.Retag("div")
		result = t
	default:
		if body := findBody(t); body != nil {
			body.Retag("div")
			result = body
		} else {
			wrapper := domtree.NewElement("div")
			wrapper.AppendChild(t)
			result = wrapper
		}
	}

	result.Set("id", "readabilityBody")

	if fragment {
		return result
	}
	return shell(result)
}

// BuildErrorEnvelope implements the empty error envelope of spec.md §4.6/§7.
func BuildErrorEnvelope(fragment bool) *domtree.Element {
	frag := domtree.NewElement("div")
	frag.Set("id", "readabilityBody")
	frag.Set("class", "parsing-error")

	if fragment {
		return frag
	}
	return shell(frag)
}

func findBody(t *domtree.Element) *domtree.Element {
	for _, e := range domtree.ByTagName(t, "body") {
		return e
	}
	return nil
}

// shell wraps content in a minimal HTML document: <html><head><meta
// http-equiv="Content-Type" content="text/html; charset=utf-8"></head>
// <body>content</body></html>. The leading "<!DOCTYPE
// html>" is added by the serializer, not the DOM, since DOCTYPE is not an
// element domtree models.
func shell(content *domtree.Element) *domtree.Element {
	html := domtree.NewElement("html")
	head := domtree.NewElement("head")
	meta := domtree.NewElement("meta")
	meta.Set("http-equiv", "Content-Type")
	meta.Set("content", "text/html; charset=utf-8")
	head.AppendChild(meta)
	body := domtree.NewElement("body")
	body.AppendChild(content)
	html.AppendChild(head)
	html.AppendChild(body)
	return html
}
