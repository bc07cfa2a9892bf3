package engine

import "github.com/mackee/go-readability/domtree"

// Normalize implements spec.md §4.1: rewrite every leaf <div> (a <div> whose
// direct children contain no further <div>) into a <p>, so the scorer's
// paragraph heuristics apply uniformly. Script/style/comment/noscript/
// iframe removal is delegated to the HTML Cleaner collaborator (spec.md §6)
// and is not repeated here.
//
// The rule only inspects *direct* children, intentionally: a <div>
// containing a <div> is left alone regardless of how deeply nested any
// further leaf divs are — those inner divs get their own turn when Walk
// reaches them.
//
// Mutation ordering: Retag never adds or removes nodes or changes the
// shape of the tree, only the TagName field, so it is safe to rewrite
// during the same traversal that discovers leaf divs — there is no
// re-visit hazard the way there would be for node removal or insertion.
func Normalize(doc *domtree.Document) {
	domtree.Walk(doc.Root, func(e *domtree.Element) {
		if e.TagName != "div" {
			return
		}
		for _, c := range e.Children {
			if ce, ok := c.(*domtree.Element); ok && ce.TagName == "div" {
				return
			}
		}
		e.Retag("p")
	})
}
