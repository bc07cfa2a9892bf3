package readability

import (
	"bytes"
	"fmt"

	"github.com/mackee/go-readability/domtree"
	"github.com/mackee/go-readability/internal/engine"
	"github.com/mackee/go-readability/internal/htmlio"
	"github.com/mackee/go-readability/internal/logging"
)

// Extract is the single read-once entry point (spec.md §9's "clean
// re-architecture" note): it parses html, normalizes, scores, selects a
// winner with sibling extension, cleans, and wraps the result in the
// stable envelope described in spec.md §4.6.
//
// Recoverable conditions (NoCandidates, WinnerProducedNothing) are handled
// internally by the engine and always yield a valid Output with a nil
// error. ParseError and EmptyDocument (spec.md §7) are the only two cases
// that surface a non-nil error, each alongside a well-formed error
// envelope so a caller that ignores the error still gets usable HTML.
func Extract(html string, opts Options) (Output, error) {
	cleaned := htmlio.Clean([]byte(html))

	doc, err := htmlio.Parse(bytes.NewReader(cleaned))
	if err != nil {
		logging.Default.Debug("parse failed", "error", err)
		return errorOutput(opts.Fragment), fmt.Errorf("%w: %v", ErrParse, err)
	}

	if doc.Body == nil || len(doc.Body.Children) == 0 {
		logging.Default.Debug("empty document")
		return errorOutput(opts.Fragment), ErrEmptyDocument
	}

	result := engine.Run(doc, opts.Fragment)
	return Output{
		Root:      result.Envelope,
		HTML:      serialize(result.Envelope, opts.Fragment),
		NodeCount: result.NodeCount,
	}, nil
}

func errorOutput(fragment bool) Output {
	envelope := engine.BuildErrorEnvelope(fragment)
	return Output{
		Root:       envelope,
		HTML:       serialize(envelope, fragment),
		NodeCount:  0,
		ParseError: true,
	}
}

// serialize renders envelope as a bare fragment or, for the full-document
// case, prefixes it with the doctype the DOM itself doesn't model.
func serialize(envelope *domtree.Element, fragment bool) string {
	if fragment {
		return htmlio.Render(envelope)
	}
	return htmlio.RenderDocument(envelope)
}
