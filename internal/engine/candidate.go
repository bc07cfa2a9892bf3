// Package engine implements the content-extraction pipeline: normalization,
// scoring, winner selection with sibling extension, and conditional
// cleaning, as specified in spec.md §4. It is internal because its
// CandidateIndex/DropList machinery is a pass-scoped implementation detail;
// callers only ever see the resulting *domtree.Element through the public
// readability package.
package engine

import "github.com/mackee/go-readability/domtree"

// candidate is the Candidate record of spec.md §3: a scorable element's
// accumulated content score, attached for the duration of one pass.
type candidate struct {
	node  *domtree.Element
	score float64
}

// candidateIndex maps node identity to its candidate record while also
// remembering document order, since document order is the required
// tie-break when two candidates score equally (§4.3 "Ties").
type candidateIndex struct {
	byNode map[*domtree.Element]*candidate
	order  []*domtree.Element
}

func newCandidateIndex() *candidateIndex {
	return &candidateIndex{byNode: make(map[*domtree.Element]*candidate)}
}

func (c *candidateIndex) get(n *domtree.Element) (*candidate, bool) {
	cand, ok := c.byNode[n]
	return cand, ok
}

// seed registers n as a candidate if it is not already one, initializing its
// score to the given value. Returns the (possibly pre-existing) candidate.
func (c *candidateIndex) seed(n *domtree.Element, initial float64) *candidate {
	if cand, ok := c.byNode[n]; ok {
		return cand
	}
	cand := &candidate{node: n, score: initial}
	c.byNode[n] = cand
	c.order = append(c.order, n)
	return cand
}

func (c *candidateIndex) len() int { return len(c.order) }

// sorted returns candidates by content_score descending, breaking ties by
// the order of c.order, which Score rearranges into document order once
// seeding is done.
func (c *candidateIndex) sorted() []*candidate {
	out := make([]*candidate, len(c.order))
	for i, n := range c.order {
		out[i] = c.byNode[n]
	}
	// Stable sort preserves document order among equal scores.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].score < out[j].score; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
