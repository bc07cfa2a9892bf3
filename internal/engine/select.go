package engine

import (
	"strings"

	"github.com/mackee/go-readability/domtree"
	"github.com/mackee/go-readability/internal/signals"
)

// SelectWinner implements spec.md §4.4: pick the highest-scoring candidate,
// then absorb qualifying siblings of its parent into it. Returns nil if idx
// is empty (the NoCandidates case of spec.md §7, handled by the caller).
func SelectWinner(idx *candidateIndex) *domtree.Element {
	ranked := idx.sorted()
	if len(ranked) == 0 {
		return nil
	}
	winner := ranked[0]
	extendWithSiblings(winner, idx)
	return winner.node
}

func extendWithSiblings(winner *candidate, idx *candidateIndex) {
	parent := winner.node.Parent()
	if parent == nil {
		return
	}

	threshold := winner.score * 0.2
	if threshold < 10 {
		threshold = 10
	}
	winnerClass := winner.node.ClassName()

	// Snapshot before mutating: decisions are made against the tree as it
	// stood when selection began, per the scan-then-mutate discipline.
	siblings := append([]domtree.Node(nil), parent.Children...)

	for _, sib := range siblings {
		if sib == domtree.Node(winner.node) {
			continue // already present; never re-appended to itself.
		}
		el, ok := sib.(*domtree.Element)
		if !ok {
			continue
		}

		include := false
		bonus := 0.0
		if winnerClass != "" && el.ClassName() == winnerClass {
			bonus = winner.score * 0.2
		}

		if cand, ok := idx.get(el); ok {
			if cand.score+bonus >= threshold {
				include = true
			}
		}

		if el.TagName == "p" {
			text := domtree.TextContent(el)
			density := signals.LinkDensity(el)
			if len(text) > 80 && density < 0.25 {
				include = true
			} else if len(text) <= 80 && density == 0 && strings.Contains(text, ". ") {
				include = true
			}
		}

		if !include {
			continue
		}

		if el.TagName != "div" && el.TagName != "p" {
			el.Retag("div")
		}
		domtree.Detach(el)
		winner.node.AppendChild(el)
	}
}
