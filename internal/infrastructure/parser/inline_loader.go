package parser

import (
	"context"

	"ContentAudit/internal/domain"
	"ContentAudit/internal/loader"
)

// InlineLoader turns text embedded in the corpus manifest into a content item.
type InlineLoader struct{}

var _ loader.Loader = InlineLoader{}

// Kind identifies the loader inside the registry.
func (InlineLoader) Kind() string {
	return "inline"
}

// Load copies the entry fields.
func (InlineLoader) Load(ctx context.Context, req loader.Request) (domain.ContentItem, error) {
	if err := ctx.Err(); err != nil {
		return domain.ContentItem{}, err
	}
	return domain.ContentItem{
		Title:  req.Title,
		Source: firstNonEmpty(req.Source, "inline"),
		Type:   firstNonEmpty(req.Type, "unknown"),
		Text:   req.Text,
	}, nil
}

// DefaultRegistry registers the inline, file and web loaders.
func DefaultRegistry(root string) *loader.Registry {
	return loader.NewRegistry(InlineLoader{}, NewFileLoader(root), NewWebLoader(nil))
}
