package parser

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ContentAudit/internal/domain"
	"ContentAudit/internal/loader"
)

// FileLoader reads local text, markdown and HTML documents.
type FileLoader struct {
	root string
}

var _ loader.Loader = (*FileLoader)(nil)

// NewFileLoader resolves relative paths against root (the working directory when empty).
func NewFileLoader(root string) *FileLoader {
	return &FileLoader{root: root}
}

// Kind identifies the loader inside the registry.
func (f *FileLoader) Kind() string {
	return "file"
}

// Load reads req.Path. HTML files are reduced to their readable text.
func (f *FileLoader) Load(ctx context.Context, req loader.Request) (domain.ContentItem, error) {
	if err := ctx.Err(); err != nil {
		return domain.ContentItem{}, err
	}
	if req.Path == "" {
		return domain.ContentItem{}, fmt.Errorf("file entry has no path")
	}

	path := req.Path
	if f.root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(f.root, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("read %s: %w", req.Path, err)
	}

	base := filepath.Base(req.Path)
	title := strings.TrimSuffix(base, filepath.Ext(base))
	text := string(raw)

	switch strings.ToLower(filepath.Ext(base)) {
	case ".html", ".htm":
		page, err := ParseHTML(bytes.NewReader(raw))
		if err != nil {
			return domain.ContentItem{}, fmt.Errorf("file %s: %w", req.Path, err)
		}
		text = page.Text
		if page.Title != "" {
			title = page.Title
		}
	case ".txt", ".md", ".markdown", "":
	default:
		return domain.ContentItem{}, fmt.Errorf("file %s: unsupported extension", req.Path)
	}

	return domain.ContentItem{
		Title:  firstNonEmpty(req.Title, title),
		Source: firstNonEmpty(req.Source, req.Path),
		Type:   firstNonEmpty(req.Type, DetectContentType(base)),
		Text:   text,
	}, nil
}

// DetectContentType guesses a content type from a file name.
func DetectContentType(filename string) string {
	name := strings.ToLower(filename)
	switch {
	case strings.Contains(name, "case") && strings.Contains(name, "study"):
		return "case_study"
	case strings.Contains(name, "whitepaper"):
		return "whitepaper"
	case strings.Contains(name, "ebook"):
		return "ebook"
	case strings.Contains(name, "deck"), strings.Contains(name, "presentation"):
		return "sales_deck"
	case strings.Contains(name, "email"):
		return "email_template"
	default:
		return "unknown"
	}
}
