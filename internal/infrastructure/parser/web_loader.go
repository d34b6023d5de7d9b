package parser

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ContentAudit/internal/domain"
	"ContentAudit/internal/loader"
)

// WebPageType is the content type assigned to pages fetched from a URL.
const WebPageType = "web_page"

// WebLoader fetches a page and extracts its readable text.
type WebLoader struct {
	client    *http.Client
	userAgent string
}

var _ loader.Loader = (*WebLoader)(nil)

// NewWebLoader wires an HTTP client; a nil client gets a 15s timeout.
func NewWebLoader(client *http.Client) *WebLoader {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &WebLoader{client: client, userAgent: "ContentAudit/1.0"}
}

// Kind identifies the loader inside the registry.
func (w *WebLoader) Kind() string {
	return "web"
}

// Load fetches req.URL and converts the page into a content item.
func (w *WebLoader) Load(ctx context.Context, req loader.Request) (domain.ContentItem, error) {
	if err := validateURL(req.URL); err != nil {
		return domain.ContentItem{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("User-Agent", w.userAgent)

	resp, err := w.client.Do(httpReq)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ContentItem{}, fmt.Errorf("%s returned %s", req.URL, resp.Status)
	}

	page, err := ParseHTML(resp.Body)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("page %s: %w", req.URL, err)
	}

	item := domain.ContentItem{
		Title:  firstNonEmpty(req.Title, page.Title, req.URL),
		Source: firstNonEmpty(req.Source, req.URL),
		Type:   firstNonEmpty(req.Type, WebPageType),
		Text:   page.Text,
	}
	return item, nil
}

func validateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %s: %w", raw, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("invalid url %q: want http(s) with a host", raw)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
