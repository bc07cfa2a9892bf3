// Package metadata is the supplemental title/byline/date extractor named in
// SPEC_FULL.md §4.10. It runs independently of the scoring engine, directly
// over the page's HTML string (not the sanitized copy the engine parses),
// and never influences the envelope the engine produces.
package metadata

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/agnivade/levenshtein"
	"github.com/markusmobius/go-dateparser"
)

// Metadata is the additive output of Extract, alongside a readability.Output.
type Metadata struct {
	Title     string
	Byline    string
	SiteName  string
	Published *time.Time
}

// strongTitleMeta and weakTitleMeta mirror the mercury-parser convention of
// preferring narrowly-scoped meta names over the more context-polluted
// og:title, which usually carries the site's brand alongside the headline.
var strongTitleMeta = []string{"tweetmeme-title", "dc.title", "rbtitle", "headline", "title"}
var weakTitleMeta = []string{"og:title"}

var titleSplitter = regexp.MustCompile(`\s[:|\-]\s`)

// Extract parses the page's HTML and pulls whatever title, byline, site name,
// and publish date it can find. A missing field is simply left at its zero
// value; this package never errors on absence.
func Extract(html, pageURL string) (Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Metadata{}, err
	}

	return Metadata{
		Title:     title(doc, pageURL),
		Byline:    byline(doc),
		SiteName:  siteName(doc),
		Published: published(doc),
	}, nil
}

func title(doc *goquery.Document, pageURL string) string {
	if t := metaContent(doc, strongTitleMeta); t != "" {
		return cleanTitle(t, pageURL, doc)
	}
	if t := selectorText(doc, "h1.articleHeader", "h1.article", ".instapaper_title", ".hentry .entry-title"); t != "" {
		return cleanTitle(t, pageURL, doc)
	}
	if t := metaContent(doc, weakTitleMeta); t != "" {
		return cleanTitle(t, pageURL, doc)
	}
	if t := selectorText(doc, "article h1", ".entry-title", "h1.title", "h1", "title"); t != "" {
		return cleanTitle(t, pageURL, doc)
	}
	return ""
}

// cleanTitle strips a trailing " | Site Name" / " - Site Name" tail when the
// segment closely resembles the page's own domain, the way a breadcrumbed
// <title> tag usually does.
func cleanTitle(raw, pageURL string, doc *goquery.Document) string {
	raw = strings.TrimSpace(raw)
	if !titleSplitter.MatchString(raw) {
		return normalizeSpace(raw)
	}

	segments := titleSplitter.Split(raw, -1)
	if len(segments) < 2 {
		return normalizeSpace(raw)
	}

	host := hostOf(pageURL)
	if host == "" {
		return normalizeSpace(raw)
	}

	first, last := strings.TrimSpace(segments[0]), strings.TrimSpace(segments[len(segments)-1])
	if similar(first, host) {
		return normalizeSpace(strings.Join(segments[1:], " "))
	}
	if similar(last, host) {
		return normalizeSpace(strings.Join(segments[:len(segments)-1], " "))
	}
	return normalizeSpace(raw)
}

// similar reports whether a title segment is a plausible rendering of host,
// using normalized Levenshtein distance rather than an exact match since
// titles often drop "www." or a TLD.
func similar(segment, host string) bool {
	segment = strings.ToLower(strings.ReplaceAll(segment, " ", ""))
	host = strings.ToLower(strings.TrimPrefix(host, "www."))
	if len(segment) < 3 || host == "" {
		return false
	}
	maxLen := len(segment)
	if len(host) > maxLen {
		maxLen = len(host)
	}
	dist := levenshtein.ComputeDistance(segment, host)
	return 1-float64(dist)/float64(maxLen) > 0.6
}

func byline(doc *goquery.Document) string {
	if v, ok := doc.Find(`meta[name="author"]`).Attr("content"); ok && v != "" {
		return normalizeSpace(v)
	}
	if v, ok := doc.Find(`meta[property="article:author"]`).Attr("content"); ok && v != "" {
		return normalizeSpace(v)
	}
	if t := selectorText(doc, ".byline", ".author", `[rel="author"]`); t != "" {
		return normalizeSpace(t)
	}
	return ""
}

func siteName(doc *goquery.Document) string {
	if v, ok := doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok && v != "" {
		return normalizeSpace(v)
	}
	if v, ok := doc.Find(`meta[name="application-name"]`).Attr("content"); ok && v != "" {
		return normalizeSpace(v)
	}
	return ""
}

var publishedSelectors = []string{
	`meta[property="article:published_time"]`,
	`meta[name="date"]`,
	`meta[name="DC.date.issued"]`,
	`time[datetime]`,
}

func published(doc *goquery.Document) *time.Time {
	for _, sel := range publishedSelectors {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		raw, ok := node.Attr("content")
		if !ok {
			raw, ok = node.Attr("datetime")
		}
		if !ok || raw == "" {
			continue
		}
		if t := parseDate(raw); t != nil {
			return t
		}
	}
	return nil
}

func parseDate(raw string) *time.Time {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	cfg := &dateparser.Configuration{CurrentTime: time.Now(), StrictParsing: false}
	if parsed, err := dateparser.Parse(cfg, raw); err == nil {
		return &parsed.Time
	}
	return nil
}

func metaContent(doc *goquery.Document, names []string) string {
	for _, name := range names {
		sel := doc.Find(`meta[name="` + name + `"], meta[property="` + name + `"]`).First()
		if v, ok := sel.Attr("content"); ok && v != "" {
			return v
		}
	}
	return ""
}

func selectorText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		node := doc.Find(sel).First()
		if node.Length() > 0 {
			if t := strings.TrimSpace(node.Text()); t != "" {
				return t
			}
		}
	}
	return ""
}

var spaceRun = regexp.MustCompile(`\s+`)

func normalizeSpace(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

func hostOf(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}
