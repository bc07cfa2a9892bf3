package engine

import (
	"strings"

	"github.com/mackee/go-readability/domtree"
	"github.com/mackee/go-readability/internal/signals"
)

// scoreResult is the output of the scoring pass: a populated candidateIndex
// plus the nodes already known to be unwanted (spec.md §3's DropList).
type scoreResult struct {
	candidates *candidateIndex
	dropList   []*domtree.Element
}

// Score implements spec.md §4.3. It walks doc once, classifying every
// element as it goes (unlikely nodes and bad links are scheduled for
// removal, and neither they nor anything beneath them is scored), scores the
// surviving scorable elements, and propagates each element's score to its
// parent and grandparent.
func Score(doc *domtree.Document) scoreResult {
	var scorable []*domtree.Element
	var dropList []*domtree.Element
	dropped := make(map[*domtree.Element]bool)

	domtree.Walk(doc.Root, func(e *domtree.Element) {
		if p := e.Parent(); p != nil && dropped[p] {
			dropped[e] = true
			return
		}
		if signals.IsUnlikely(e) {
			dropped[e] = true
			dropList = append(dropList, e)
			return
		}
		if signals.IsBadLink(e) {
			dropped[e] = true
			dropList = append(dropList, e)
			return
		}
		if signals.ScorableTags[e.TagName] {
			scorable = append(scorable, e)
		}
	})

	idx := newCandidateIndex()

	for _, n := range scorable {
		text := strings.TrimSpace(domtree.TextContent(n))
		if len(text) < 25 {
			continue
		}

		base := 1.0
		base += float64(strings.Count(text, ","))
		extra := len(text) / 100
		if extra > 3 {
			extra = 3
		}
		base += float64(extra)

		parent := n.Parent()
		if parent != nil {
			cand := idx.seed(parent, float64(signals.ClassWeight(parent))+signals.TagSeed(parent.TagName))
			cand.score += base

			grandparent := parent.Parent()
			if grandparent != nil {
				gcand := idx.seed(grandparent, float64(signals.ClassWeight(grandparent))+signals.TagSeed(grandparent.TagName))
				gcand.score += base / 2
			}
		}
	}

	// Seeding order is not document order (a parent is seeded before its
	// grandparent), so rebuild idx.order in document order for the
	// tie-break in candidateIndex.sorted.
	ordered := make([]*domtree.Element, 0, len(idx.order))
	domtree.Walk(doc.Root, func(e *domtree.Element) {
		if _, ok := idx.byNode[e]; ok {
			ordered = append(ordered, e)
		}
	})
	idx.order = ordered

	for _, n := range idx.order {
		cand := idx.byNode[n]
		cand.score *= 1 - signals.LinkDensity(n)
	}

	return scoreResult{candidates: idx, dropList: dropList}
}
