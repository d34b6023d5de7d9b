package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ContentAudit/internal/domain"
	"ContentAudit/internal/ports"
)

// Client talks to an external classification service that already speaks the
// record and strategy schemas, so no prompt or fence handling is needed.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

var _ ports.ClassificationOracle = (*Client)(nil)
var _ ports.RecommendationOracle = (*Client)(nil)
var _ ports.BriefOracle = (*Client)(nil)

// NewClient creates a reusable HTTP client.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 60 * time.Second},
	}
}

type personaPayload struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PainPoints  []string `json:"pain_points"`
	Goals       []string `json:"goals"`
}

// Classify sends one content item with the roster for classification.
func (c *Client) Classify(ctx context.Context, req ports.ClassificationRequest) (domain.ClassificationRecord, error) {
	payload := map[string]any{
		"title":    req.Item.Title,
		"source":   req.Item.Source,
		"type":     req.Item.Type,
		"content":  req.Item.Text,
		"personas": toPersonaPayload(req.Personas),
	}

	var rec domain.ClassificationRecord
	if err := c.post(ctx, "/classify", payload, &rec); err != nil {
		return domain.ClassificationRecord{}, fmt.Errorf("classify %q: %w", req.Item.Title, err)
	}
	return rec, nil
}

// Recommend requests a strategy for the audit findings.
func (c *Client) Recommend(ctx context.Context, req ports.StrategyRequest) (domain.Strategy, error) {
	payload := map[string]any{
		"gaps":          req.Gaps,
		"strengths":     req.Strengths,
		"personas":      toPersonaPayload(req.Personas),
		"content_count": req.ContentCount,
	}

	var strategy domain.Strategy
	if err := c.post(ctx, "/strategy", payload, &strategy); err != nil {
		return domain.Strategy{}, fmt.Errorf("recommend strategy: %w", err)
	}
	return strategy, nil
}

// Brief requests a content brief for one planned piece.
func (c *Client) Brief(ctx context.Context, req ports.BriefRequest) (string, error) {
	related := make([]map[string]string, 0, len(req.Related))
	for _, r := range req.Related {
		related = append(related, map[string]string{"title": r.OriginalTitle, "summary": r.Summary})
	}
	payload := map[string]any{
		"content":  req.Recommendation,
		"persona":  toPersonaPayload(domain.Roster{req.Persona})[0],
		"existing": related,
	}

	var resp struct {
		Brief string `json:"brief"`
	}
	if err := c.post(ctx, "/brief", payload, &resp); err != nil {
		return "", fmt.Errorf("brief %q: %w", req.Recommendation.Title, err)
	}
	if resp.Brief == "" {
		return "", fmt.Errorf("brief %q: %w: empty brief", req.Recommendation.Title, ports.ErrMalformedResponse)
	}
	return resp.Brief, nil
}

func toPersonaPayload(roster domain.Roster) []personaPayload {
	out := make([]personaPayload, 0, len(roster))
	for _, p := range roster {
		out = append(out, personaPayload{
			Name:        p.Name,
			Description: p.Description,
			PainPoints:  p.PainPoints,
			Goals:       p.Goals,
		})
	}
	return out
}

func (c *Client) post(ctx context.Context, path string, payload any, v any) error {
	if c == nil || c.http == nil || c.endpoint == "" {
		return fmt.Errorf("%w: classification service not configured", ports.ErrOracleUnavailable)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: do request: %v", ports.ErrOracleUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			return fmt.Errorf("%w: unexpected status %s, close body: %v", ports.ErrOracleUnavailable, resp.Status, closeErr)
		}
		return fmt.Errorf("%w: unexpected status %s", ports.ErrOracleUnavailable, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		_ = resp.Body.Close()
		return fmt.Errorf("%w: decode response: %v", ports.ErrMalformedResponse, err)
	}

	if err := resp.Body.Close(); err != nil {
		return fmt.Errorf("close response body: %w", err)
	}

	return nil
}
