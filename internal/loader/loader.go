package loader

import (
	"context"
	"fmt"
	"strings"

	"ContentAudit/internal/domain"
)

// Request carries one corpus entry as configured.
type Request struct {
	Title  string
	Source string
	Type   string
	Text   string
	Path   string
	URL    string
}

// Loader turns a corpus entry into a content item (inline text, local file, web page).
type Loader interface {
	Kind() string
	Load(ctx context.Context, req Request) (domain.ContentItem, error)
}

// Registry keeps a mapping from loader kinds to their implementations.
type Registry struct {
	loaders map[string]Loader
}

// NewRegistry builds a registry holding the given loaders.
func NewRegistry(loaders ...Loader) *Registry {
	r := &Registry{loaders: map[string]Loader{}}
	for _, l := range loaders {
		r.Register(l)
	}
	return r
}

// Register adds or replaces a loader implementation.
func (r *Registry) Register(l Loader) {
	if r.loaders == nil {
		r.loaders = map[string]Loader{}
	}
	r.loaders[strings.ToLower(l.Kind())] = l
}

// Resolve returns a loader by kind or an error if it is absent.
func (r *Registry) Resolve(kind string) (Loader, error) {
	if l, ok := r.loaders[strings.ToLower(kind)]; ok {
		return l, nil
	}
	return nil, fmt.Errorf("loader %s is not registered", kind)
}
