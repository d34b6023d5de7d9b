package llm

import (
	"errors"
	"testing"

	"ContentAudit/internal/ports"
)

func TestStripCodeFence(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"{\"a\":1}":                                 `{"a":1}`,
		"```json\n{\"a\":1}\n```":                   `{"a":1}`,
		"Here you go:\n```json\n{\"a\":1}\n```\nok": `{"a":1}`,
		"```\n{\"a\":1}\n```":                       `{"a":1}`,
		"  {\"a\":1}  \n":                           `{"a":1}`,
		"```json\n{\"a\":1}":                        `{"a":1}`,
	}
	for in, want := range cases {
		if got := StripCodeFence(in); got != want {
			t.Fatalf("StripCodeFence(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Stage string `json:"funnel_stage"`
	}

	got, err := DecodeJSON[payload]("```json\n{\"funnel_stage\": \"decision\"}\n```")
	if err != nil {
		t.Fatalf("DecodeJSON returned error: %v", err)
	}
	if got.Stage != "decision" {
		t.Fatalf("unexpected stage: %s", got.Stage)
	}

	for _, bad := range []string{"", "```json\n```", "not json at all"} {
		if _, err := DecodeJSON[payload](bad); !errors.Is(err, ports.ErrMalformedResponse) {
			t.Fatalf("DecodeJSON(%q) error = %v, want ErrMalformedResponse", bad, err)
		}
	}
}
