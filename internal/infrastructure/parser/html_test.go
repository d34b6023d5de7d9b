package parser

import (
	"strings"
	"testing"
)

func TestParseHTMLExtractsReadableText(t *testing.T) {
	t.Parallel()

	html := `<html><head>
	  <title>Fallback Title</title>
	  <meta property="og:title" content="  Pricing Guide ">
	  <meta name="description" content="How pricing works">
	  <script>var tracking = 1;</script>
	</head><body>
	  <header><p>Site header</p></header>
	  <nav><p>Menu</p></nav>
	  <article>
	    <h1>Pricing</h1>
	    <p>Compare   plans
	       side by side.</p>
	    <p></p>
	    <p>Book a demo today.</p>
	  </article>
	  <footer><p>Copyright</p></footer>
	</body></html>`

	page, err := ParseHTML(strings.NewReader(html))
	if err != nil {
		t.Fatalf("ParseHTML error: %v", err)
	}
	if page.Title != "Pricing Guide" {
		t.Fatalf("unexpected title: %q", page.Title)
	}
	if page.Description != "How pricing works" {
		t.Fatalf("unexpected description: %q", page.Description)
	}
	want := "Compare plans side by side.\n\nBook a demo today."
	if page.Text != want {
		t.Fatalf("unexpected text: %q", page.Text)
	}
}

func TestParseHTMLFallbacks(t *testing.T) {
	t.Parallel()

	page, err := ParseHTML(strings.NewReader(`<body><h1>Only Heading</h1><div id="main-content">loose   text</div></body>`))
	if err != nil {
		t.Fatalf("ParseHTML error: %v", err)
	}
	if page.Title != "Only Heading" {
		t.Fatalf("unexpected title: %q", page.Title)
	}
	if page.Text != "loose text" {
		t.Fatalf("unexpected text: %q", page.Text)
	}

	page, err = ParseHTML(strings.NewReader(`<head><meta property="og:description" content="summary only"></head><body><script>x()</script></body>`))
	if err != nil {
		t.Fatalf("ParseHTML error: %v", err)
	}
	if page.Text != "summary only" {
		t.Fatalf("description should stand in for empty body, got %q", page.Text)
	}
}
