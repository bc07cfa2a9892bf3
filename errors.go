package readability

import "errors"

// ErrParse is wrapped and returned when the upstream HTML parser cannot
// produce a DOM at all (spec.md §7's ParseError).
var ErrParse = errors.New("readability: failed to parse document")

// ErrEmptyDocument is returned when the parsed document has no body content
// to score at all (spec.md §7's EmptyDocument). Extract still returns a
// well-formed error envelope alongside it.
var ErrEmptyDocument = errors.New("readability: document has no body content")
