package engine

import (
	"strings"

	"github.com/mackee/go-readability/domtree"
	"github.com/mackee/go-readability/internal/signals"
)

// conditionalDropTags are the only tags clean_conditionally inspects; every
// other tag is a no-op there (spec.md §4.5).
var conditionalDropTags = map[string]bool{
	"form": true, "table": true, "ul": true, "div": true, "p": true,
}

// Clean implements spec.md §4.5: a single read-only traversal that only
// schedules removals, applied in one pass afterward so scanning and
// mutation never interleave (the scan-then-mutate invariant of spec.md §5).
func Clean(root *domtree.Element) {
	if root == nil {
		return
	}

	cleanList := map[string]bool{"object": true, "h1": true}
	if len(domtree.ByTagName(root, "h2")) == 1 {
		cleanList["h2"] = true
	}

	var drop []*domtree.Element
	domtree.Walk(root, func(n *domtree.Element) {
		if n.Has("style") {
			n.Set("style", "")
		}

		if cleanList[n.TagName] {
			keep := false
			if n.TagName == "object" || n.TagName == "embed" {
				if signals.OkEmbeddedVideo(roughSerialize(n)) {
					keep = true
				}
			}
			if !keep {
				drop = append(drop, n)
				return
			}
		}

		switch n.TagName {
		case "h1", "h2", "h3", "h4":
			if signals.ClassWeight(n) < 0 || signals.LinkDensity(n) > 0.33 {
				drop = append(drop, n)
				return
			}
		case "p":
			if len(n.Children) == 0 && len(domtree.TextContent(n)) < 5 {
				drop = append(drop, n)
				return
			}
		}

		if conditionalDrop(n) {
			drop = append(drop, n)
		}
	})

	for _, n := range drop {
		domtree.Detach(n)
	}
}

// conditionalDrop implements clean_conditionally from spec.md §4.5. The
// scorer's content score is deliberately not re-consulted here — it is
// treated as 0, per the "Score plumbing" design note in spec.md §9, even
// though this looks like a bug inherited from the original heuristic.
func conditionalDrop(n *domtree.Element) bool {
	if !conditionalDropTags[n.TagName] {
		return false
	}

	weight := signals.ClassWeight(n)
	const contentScore = 0
	if weight+contentScore < 0 {
		return true
	}

	text := domtree.TextContent(n)
	if strings.Count(text, ",") >= 10 {
		return false
	}

	p := len(domtree.ByTagName(n, "p"))
	if n.TagName == "p" {
		p--
	}
	img := len(domtree.ByTagName(n, "img"))
	li := len(domtree.ByTagName(n, "li")) - 100
	inputs := len(domtree.ByTagName(n, "input"))

	embed := 0
	for _, e := range domtree.ByTagName(n, "embed") {
		if signals.OkEmbeddedVideo(roughSerialize(e)) {
			embed++
		}
	}

	linkDensity := signals.LinkDensity(n)
	contentLength := len(text)

	switch {
	case li > p && n.TagName != "ul" && n.TagName != "ol":
		return true
	case float64(inputs) > float64(p)/3.0:
		return true
	case contentLength < 25 && (img == 0 || img > 2):
		return true
	case weight < 25 && linkDensity > 0.2:
		return true
	case weight >= 25 && linkDensity > 0.5:
		return true
	case (embed == 1 && contentLength < 75) || embed > 1:
		return true
	default:
		return false
	}
}

// roughSerialize is a cheap, non-escaping textual form of n used only to
// substring-match the video-host allowlist in §4.2's ok_embedded_video
// check (e.g. a youtube.com URL in a data/src attribute, or in the value of
// a nested <param>). It covers the tag names and attribute values of n and
// its descendants plus their text. It is not a general serializer — see
// internal/htmlio for that.
func roughSerialize(n *domtree.Element) string {
	var b strings.Builder
	domtree.Walk(n, func(e *domtree.Element) {
		b.WriteString(e.TagName)
		for _, a := range e.Attrs {
			b.WriteByte(' ')
			b.WriteString(a.Val)
		}
	})
	b.WriteString(domtree.TextContent(n))
	return b.String()
}
