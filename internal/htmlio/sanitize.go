package htmlio

import "github.com/microcosm-cc/bluemonday"

// Sanitizer is the HTML Cleaner collaborator of spec.md §6: it removes
// <script>, <style>, inline event handlers, <noscript>, <iframe>,
// processing instructions, and comments, while preserving <meta>,
// <object>, <embed>, <form>, and <frame>, and never adding nofollow.
//
// bluemonday is an allow-list sanitizer, the inverse of the block-list the
// spec describes, so the policy below allow-lists the full set of
// structural/text/table/media elements a readable article can plausibly
// contain — everything spec.md requires to survive — and simply never
// allow-lists script/style/noscript/iframe, which is how they get removed.
var Sanitizer = newSanitizerPolicy()

func newSanitizerPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowStandardURLs()
	p.AllowElements(
		"html", "head", "body", "title", "meta", "link",
		"div", "span", "p", "br", "hr",
		"article", "section", "main", "header", "footer", "nav", "aside",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "dl", "dt", "dd",
		"table", "thead", "tbody", "tfoot", "tr", "td", "th", "caption", "colgroup", "col",
		"blockquote", "pre", "code", "q", "cite",
		"a", "b", "strong", "i", "em", "u", "s", "small", "mark", "sub", "sup", "abbr", "time",
		"img", "figure", "figcaption", "picture", "source",
		"audio", "video", "track",
		"object", "embed", "param",
		"form", "input", "button", "select", "option", "textarea", "label", "fieldset", "legend",
		"frame", "frameset",
	)
	p.AllowAttrs("class", "id").Globally()
	p.AllowAttrs("href", "name").OnElements("a")
	p.AllowAttrs("src", "alt", "width", "height", "srcset", "sizes").OnElements("img", "source", "video", "audio")
	p.AllowAttrs("data", "type", "width", "height").OnElements("object", "embed")
	p.AllowAttrs("name", "value").OnElements("param")
	p.AllowAttrs("style").Globally()
	p.AllowAttrs("http-equiv", "content", "charset").OnElements("meta")
	p.AllowAttrs("action", "method").OnElements("form")
	p.AllowAttrs("aria-hidden", "hidden", "role").Globally()

	// AllowStandardURLs switches on rel="nofollow" for links; switch it back
	// off — spec.md §6 forbids adding nofollow that was not already present.
	p.RequireNoFollowOnLinks(false)
	return p
}

// Clean sanitizes raw HTML bytes before they reach the parser.
func Clean(raw []byte) []byte {
	return Sanitizer.SanitizeBytes(raw)
}
