// Package signals holds the regex-driven text signals the classifier and
// scorer use: the unlikely/maybe/positive/negative patterns from spec §6,
// class-weight, link-density, and the unlikely/bad-link verdicts of §4.2.
package signals

import (
	"regexp"
	"strings"

	"github.com/mackee/go-readability/domtree"
)

// Patterns are the exact pattern constants named in the specification's
// external-interfaces section. Compiled once and shared read-only across
// concurrent extractions.
var (
	Unlikely = regexp.MustCompile(`(?i)combx|comment|community|disqus|extra|foot|header|menu|remark|rss|shoutbox|sidebar|sponsor|ad-break|agegate|pagination|pager|popup|tweet|twitter`)
	Maybe    = regexp.MustCompile(`(?i)and|article|body|column|main|shadow`)
	Positive = regexp.MustCompile(`(?i)article|body|content|entry|hentry|main|page|pagination|post|text|blog|story`)
	Negative = regexp.MustCompile(`(?i)combx|comment|com-|contact|foot|footer|footnote|masthead|media|meta|outbrain|promo|related|scroll|shoutbox|sidebar|sponsor|shopping|tags|tool|widget`)
)

// IsUnlikely implements §4.2.1: a node is unlikely if its class+id text
// matches Unlikely and not Maybe, and it is not <html> or <body>.
func IsUnlikely(e *domtree.Element) bool {
	if e.TagName == "html" || e.TagName == "body" {
		return false
	}
	text := e.ClassName() + " " + e.ID()
	return Unlikely.MatchString(text) && !Maybe.MatchString(text)
}

// IsBadLink implements §4.2.2, applicable only to <a> elements.
func IsBadLink(e *domtree.Element) bool {
	if e.TagName != "a" {
		return false
	}
	name, hasName := e.Get("name")
	href, hasHref := e.Get("href")
	if hasName && name != "" && !hasHref {
		return true
	}
	if hasHref {
		if idx := strings.IndexByte(href, '#'); idx >= 0 {
			if len(href)-idx-1 > 25 {
				return true
			}
		}
	}
	return false
}

// ClassWeight implements §4.2.3: +/-25 for class, +/-25 for id, matched
// independently against Positive/Negative and summed (range -50..+50, not
// clamped — see SPEC_FULL.md's Open Question resolution).
func ClassWeight(e *domtree.Element) int {
	weight := 0
	if cls := e.ClassName(); cls != "" {
		if Negative.MatchString(cls) {
			weight -= 25
		}
		if Positive.MatchString(cls) {
			weight += 25
		}
	}
	if id := e.ID(); id != "" {
		if Negative.MatchString(id) {
			weight -= 25
		}
		if Positive.MatchString(id) {
			weight += 25
		}
	}
	return weight
}

// LinkDensity implements §4.2.4: the ratio of descendant <a> text length to
// total text length, clamped into [0,1] by construction (anchor text can
// never exceed total text since it is a subset).
func LinkDensity(e *domtree.Element) float64 {
	total := len(domtree.TextContent(e))
	if total == 0 {
		return 0
	}
	linkLen := 0
	for _, a := range domtree.ByTagName(e, "a") {
		linkLen += len(domtree.TextContent(a))
	}
	density := float64(linkLen) / float64(total)
	if density > 1 {
		density = 1
	}
	return density
}

// TagSeed implements the tag_seed table from §4.3 step 4.
func TagSeed(tag string) float64 {
	switch tag {
	case "div":
		return 5
	case "pre", "td", "blockquote":
		return 3
	case "address", "ol", "ul", "dl", "dd", "dt", "li", "form":
		return -3
	case "h1", "h2", "h3", "h4", "h5", "h6", "th":
		return -5
	default:
		return 0
	}
}

// ScorableTags are the tags the scorer considers, per §4.3.
var ScorableTags = map[string]bool{
	"div": true, "p": true, "td": true, "pre": true, "article": true,
}

// OkEmbeddedVideo reports whether a serialized embed/object node's markup
// names one of the video hosts the conditional cleaner allows through (§4.5
// step 3, §4.5 rule f).
func OkEmbeddedVideo(serialized string) bool {
	lower := strings.ToLower(serialized)
	for _, host := range []string{"youtube", "blip.tv", "vimeo"} {
		if strings.Contains(lower, host) {
			return true
		}
	}
	return false
}
