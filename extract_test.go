package readability

import (
	"strings"
	"testing"
)

func lorem(chars int) string {
	unit := "lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod "
	var b strings.Builder
	for b.Len() < chars {
		b.WriteString(unit)
	}
	return b.String()[:chars]
}

func TestExtract_MinimalProse(t *testing.T) {
	html := "<html><body><div><p>" + lorem(400) + "</p></div></body></html>"
	out, err := Extract(html, Options{Fragment: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.HTML, `id="readabilityBody"`) {
		t.Errorf("expected readabilityBody envelope, got %s", out.HTML)
	}
	if !strings.Contains(out.HTML, "<p>") {
		t.Errorf("expected <p> to survive, got %s", out.HTML)
	}
}

func TestExtract_CommentBlockElision(t *testing.T) {
	html := `<html><body>
		<div class="content"><p>` + lorem(520) + `</p></div>
		<div class="comments"><p>` + lorem(100) + `</p></div>
	</body></html>`

	out, err := Extract(html, Options{Fragment: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.HTML, `id="readabilityBody"`) {
		t.Errorf("expected readabilityBody envelope, got %s", out.HTML)
	}
	if strings.Contains(out.HTML, `class="comments"`) {
		t.Errorf("expected comments sidebar dropped, got %s", out.HTML)
	}
}

func TestExtract_LinkHeavySidebarElision(t *testing.T) {
	var anchors strings.Builder
	for i := 0; i < 20; i++ {
		anchors.WriteString(`<a href="/l">link text here padding out anchor</a>`)
	}
	html := `<html><body>
		<div><p>` + lorem(520) + `</p></div>
		<div id="beta">` + anchors.String() + `outside text</div>
	</body></html>`

	out, err := Extract(html, Options{Fragment: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out.HTML, `id="beta"`) {
		t.Errorf("expected link-heavy sidebar dropped, got %s", out.HTML)
	}
}

func TestExtract_SingleH2Stripping(t *testing.T) {
	html := `<html><body>
		<h2>Section heading</h2>
		<div><p>` + lorem(520) + `</p></div>
	</body></html>`

	out, err := Extract(html, Options{Fragment: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out.HTML, "<h2>") {
		t.Errorf("expected sole h2 stripped, got %s", out.HTML)
	}
}

func TestExtract_TwoH2sSurvive(t *testing.T) {
	html := `<html><body>
		<div>
			<h2>First</h2>
			<p>` + lorem(520) + `</p>
			<h2>Second</h2>
		</div>
	</body></html>`

	out, err := Extract(html, Options{Fragment: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(out.HTML, "<h2>") != 2 {
		t.Errorf("expected both h2 elements to survive, got %s", out.HTML)
	}
}

func TestExtract_VideoPreservation(t *testing.T) {
	html := `<html><body><div><p>` + lorem(520) + `</p>
		<object><param name="movie" value="https://www.youtube.com/v/abc"></object>
	</div></body></html>`

	out, err := Extract(html, Options{Fragment: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.HTML, "<object>") {
		t.Errorf("expected youtube object to survive cleaning, got %s", out.HTML)
	}
}

func TestExtract_BadLinkPruning(t *testing.T) {
	longFragment := strings.Repeat("x", 30)
	html := `<html><body><div><p>` + lorem(520) + `
		<a href="page#` + longFragment + `">jump</a>
	</p></div></body></html>`

	out, err := Extract(html, Options{Fragment: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out.HTML, longFragment) {
		t.Errorf("expected bad link with long fragment pruned, got %s", out.HTML)
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	out, err := Extract("<html><body></body></html>", Options{Fragment: true})
	if err == nil {
		t.Fatal("expected ErrEmptyDocument")
	}
	if !out.ParseError {
		t.Error("expected ParseError envelope for empty document")
	}
	if !strings.Contains(out.HTML, `class="parsing-error"`) {
		t.Errorf("expected error envelope markup, got %s", out.HTML)
	}
}

func TestExtract_NoCandidatesRecovers(t *testing.T) {
	out, err := Extract("<html><body><span>hi</span></body></html>", Options{Fragment: true})
	if err != nil {
		t.Fatalf("NoCandidates must recover without an error, got %v", err)
	}
	if out.ParseError {
		t.Error("NoCandidates recovery should not set ParseError")
	}
	if !strings.Contains(out.HTML, `id="readabilityBody"`) {
		t.Errorf("expected recovered envelope, got %s", out.HTML)
	}
}

func TestExtract_FullDocumentShell(t *testing.T) {
	html := "<html><body><div><p>" + lorem(400) + "</p></div></body></html>"
	out, err := Extract(html, Options{Fragment: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.HTML, "<!DOCTYPE html>") {
		t.Errorf("expected full document to carry a doctype, got %s", out.HTML)
	}
	if !strings.Contains(out.HTML, `id="readabilityBody"`) {
		t.Errorf("expected readabilityBody div nested in the shell, got %s", out.HTML)
	}
}
