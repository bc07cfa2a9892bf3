package engine

import "github.com/mackee/go-readability/domtree"

// Result is what Run hands back to the readability package: the envelope
// element ready for serialization, plus the number of elements in its
// readabilityBody div (the div itself included), in the recovered cases as
// well.
type Result struct {
	Envelope  *domtree.Element
	NodeCount int
}

// Run executes the full pipeline of spec.md §2 over doc: normalize, score,
// select the winner with sibling extension, clean, and envelope. It always
// returns a usable envelope — the NoCandidates and WinnerProducedNothing
// recoveries of spec.md §7 are handled internally, not surfaced as errors.
func Run(doc *domtree.Document, fragment bool) Result {
	Normalize(doc)

	scored := Score(doc)
	for _, n := range scored.dropList {
		domtree.Detach(n)
	}

	if scored.candidates.len() == 0 {
		return recoverFullDocument(doc, fragment)
	}

	winner := SelectWinner(scored.candidates)
	if !hasElementChild(winner) {
		// WinnerProducedNothing: recover exactly as NoCandidates, per
		// spec.md §7 — the winner is abandoned uncleaned.
		return recoverFullDocument(doc, fragment)
	}

	Clean(winner)

	envelope := BuildEnvelope(winner, fragment)
	return Result{Envelope: envelope, NodeCount: domtree.CountNodes(contentRoot(envelope))}
}

// recoverFullDocument implements the NoCandidates recovery of spec.md §7:
// the scheduled drops are already applied by the caller; clean_document
// runs over the whole body and the result is wrapped as usual.
func recoverFullDocument(doc *domtree.Document, fragment bool) Result {
	target := doc.Body
	if target == nil {
		target = doc.Root
	}
	Clean(target)
	envelope := BuildEnvelope(target, fragment)
	return Result{Envelope: envelope, NodeCount: domtree.CountNodes(contentRoot(envelope))}
}

func hasElementChild(e *domtree.Element) bool {
	for _, c := range e.Children {
		if _, ok := c.(*domtree.Element); ok {
			return true
		}
	}
	return false
}

// contentRoot finds the readabilityBody div within envelope (which may be
// envelope itself, for the fragment case, or nested under html>body for
// the full-document case) so NodeCount measures the content, not the shell.
func contentRoot(envelope *domtree.Element) *domtree.Element {
	if id, _ := envelope.Get("id"); id == "readabilityBody" {
		return envelope
	}
	for _, e := range domtree.ByTagName(envelope, "div") {
		if id, _ := e.Get("id"); id == "readabilityBody" {
			return e
		}
	}
	return envelope
}
