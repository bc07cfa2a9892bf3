// Package readability extracts the main readable article content from an
// arbitrary HTML page: a heuristic scoring and pruning pipeline that scores
// candidate block nodes using class/id text signals and text-density
// metrics, selects a winner, augments it with related siblings, and runs a
// conditional cleaner to remove low-value sub-trees.
package readability

import "github.com/mackee/go-readability/domtree"

// Options configures one extraction.
type Options struct {
	// Fragment, when true, returns a bare <div id="readabilityBody">.
	// When false, the fragment is embedded in a minimal full HTML document.
	Fragment bool

	// URL is passed through untouched for the caller's own downstream link
	// resolution; the core engine never reads it.
	URL string
}

// Output is the result of one Extract call.
type Output struct {
	// Root is the envelope element itself: a <div id="readabilityBody">
	// fragment, or the <html> element wrapping it, per Options.Fragment.
	Root *domtree.Element

	// HTML is the serialized envelope: a <div id="readabilityBody"> fragment,
	// or a full HTML document wrapping it, per Options.Fragment.
	HTML string

	// NodeCount is the number of elements in the extracted content (0 for
	// the error envelope).
	NodeCount int

	// ParseError is true when extraction could not proceed at all and HTML
	// holds the empty error envelope (spec.md §7).
	ParseError bool
}
