package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page is the readable part of an HTML document.
type Page struct {
	Title       string
	Description string
	Text        string
}

var (
	boilerplate   = "script, style, nav, footer, header, aside, noscript"
	mainSelectors = []string{
		"article",
		"main",
		"div[class*='content'], div[class*='article'], div[class*='post'], div[class*='entry']",
		"div[id*='content'], div[id*='article'], div[id*='post'], div[id*='entry']",
		"body",
	}
)

// ParseHTML reads an HTML document and extracts its title, description and body text.
func ParseHTML(r io.Reader) (Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Page{}, fmt.Errorf("parse document: %w", err)
	}
	return extractPage(doc), nil
}

func extractPage(doc *goquery.Document) Page {
	page := Page{
		Title:       pageTitle(doc),
		Description: pageDescription(doc),
	}

	doc.Find(boilerplate).Remove()
	page.Text = mainText(doc)
	if page.Text == "" {
		page.Text = page.Description
	}
	return page
}

func pageTitle(doc *goquery.Document) string {
	if v, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	if v := strings.TrimSpace(doc.Find("title").First().Text()); v != "" {
		return v
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

func pageDescription(doc *goquery.Document) string {
	for _, sel := range []string{`meta[name="description"]`, `meta[property="og:description"]`} {
		if v, ok := doc.Find(sel).First().Attr("content"); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func mainText(doc *goquery.Document) string {
	var container *goquery.Selection
	for _, sel := range mainSelectors {
		if found := doc.Find(sel).First(); found.Length() > 0 {
			container = found
			break
		}
	}
	if container == nil {
		return ""
	}

	var parts []string
	container.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := collapseSpace(p.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return collapseSpace(container.Text())
	}
	return strings.Join(parts, "\n\n")
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
