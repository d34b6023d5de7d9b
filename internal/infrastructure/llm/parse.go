package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"ContentAudit/internal/ports"
)

const fence = "```"

// StripCodeFence returns the body of the first fenced block, preferring a
// ```json fence, or the trimmed text when there is no fence.
func StripCodeFence(text string) string {
	if _, after, ok := strings.Cut(text, fence+"json"); ok {
		body, _, _ := strings.Cut(after, fence)
		return strings.TrimSpace(body)
	}
	if _, after, ok := strings.Cut(text, fence); ok {
		body, _, _ := strings.Cut(after, fence)
		return strings.TrimSpace(body)
	}
	return strings.TrimSpace(text)
}

// DecodeJSON strips code fences and decodes the payload into T.
func DecodeJSON[T any](text string) (T, error) {
	var out T
	body := StripCodeFence(text)
	if body == "" {
		return out, fmt.Errorf("%w: empty payload", ports.ErrMalformedResponse)
	}
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return out, fmt.Errorf("%w: %v", ports.ErrMalformedResponse, err)
	}
	return out, nil
}
