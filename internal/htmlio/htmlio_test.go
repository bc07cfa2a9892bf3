package htmlio

import (
	"strings"
	"testing"

	"github.com/mackee/go-readability/domtree"
)

func TestParseBuildsBodyFromMarkup(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<html><body><p>hello</p></body></html>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Body == nil {
		t.Fatalf("expected a body element")
	}
	ps := domtree.ByTagName(doc.Body, "p")
	if len(ps) != 1 {
		t.Fatalf("expected one <p>, got %d", len(ps))
	}
}

func TestParseSynthesizesMissingBody(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<p>fragment only</p>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Body == nil {
		t.Fatalf("expected a synthesized body")
	}
}

func TestRenderRoundTrips(t *testing.T) {
	el := domtree.NewElement("p")
	el.Set("class", "intro")
	el.AppendChild(domtree.NewText("hi & bye"))

	out := Render(el)
	if !strings.Contains(out, `class="intro"`) {
		t.Errorf("expected class attribute preserved, got %s", out)
	}
	if !strings.Contains(out, "hi &amp; bye") {
		t.Errorf("expected text escaped, got %s", out)
	}
}

func TestRenderDocumentAddsDoctype(t *testing.T) {
	root := domtree.NewElement("html")
	out := RenderDocument(root)
	if !strings.HasPrefix(out, "<!DOCTYPE html>\n") {
		t.Errorf("expected leading doctype, got %s", out)
	}
}

func TestCleanStripsScriptAndStyle(t *testing.T) {
	raw := []byte(`<div><script>alert(1)</script><style>.x{}</style><p>keep me</p></div>`)
	out := Clean(raw)
	if strings.Contains(string(out), "<script") || strings.Contains(string(out), "<style") {
		t.Errorf("expected script/style stripped, got %s", out)
	}
	if !strings.Contains(string(out), "keep me") {
		t.Errorf("expected surviving text preserved, got %s", out)
	}
}

func TestCleanStripsIframeAndNoscript(t *testing.T) {
	raw := []byte(`<div><iframe src="x"></iframe><noscript>no js</noscript><p>content</p></div>`)
	out := Clean(raw)
	if strings.Contains(string(out), "<iframe") {
		t.Errorf("expected iframe stripped, got %s", out)
	}
	if strings.Contains(string(out), "<noscript") {
		t.Errorf("expected noscript stripped, got %s", out)
	}
}

func TestCleanDoesNotAddNofollow(t *testing.T) {
	raw := []byte(`<a href="/x">link</a>`)
	out := Clean(raw)
	if strings.Contains(string(out), "nofollow") {
		t.Errorf("expected sanitizer to not inject nofollow, got %s", out)
	}
}
