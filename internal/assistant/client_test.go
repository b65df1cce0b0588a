package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"phi/internal/domain"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func candidateResponse(text string) *http.Response {
	body := fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func newTestClient(rt roundTripFunc) *Client {
	return NewClient(Options{
		APIKey:     "dummy",
		HTTPClient: &http.Client{Transport: rt},
	})
}

func TestGenerateTextReturnsModelText(t *testing.T) {
	var gotPath string
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		gotPath = r.URL.Path
		return candidateResponse("Tell me about a challenge you faced."), nil
	})
	text, err := client.GenerateText(context.Background(), "question please")
	if err != nil {
		t.Fatalf("GenerateText() unexpected error: %v", err)
	}
	if text != "Tell me about a challenge you faced." {
		t.Fatalf("GenerateText() = %q", text)
	}
	if !strings.Contains(gotPath, "gemini-2.5-flash:generateContent") {
		t.Fatalf("request path = %q, want generateContent for default model", gotPath)
	}
}

func TestGenerateTextTransportFailure(t *testing.T) {
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("boom")
	})
	if _, err := client.GenerateText(context.Background(), "p"); !errors.Is(err, domain.ErrAssistantUnavailable) {
		t.Fatalf("GenerateText() error = %v, want ErrAssistantUnavailable", err)
	}
}

func TestGenerateTextEmptyResponseIsError(t *testing.T) {
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		return candidateResponse("   "), nil
	})
	if _, err := client.GenerateText(context.Background(), "p"); !errors.Is(err, domain.ErrAssistantUnavailable) {
		t.Fatalf("GenerateText() error = %v, want ErrAssistantUnavailable for empty text", err)
	}
}

func TestGenerateTextStatusError(t *testing.T) {
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(strings.NewReader(`{"error":{"code":429,"message":"quota"}}`)),
		}, nil
	})
	if _, err := client.GenerateText(context.Background(), "p"); !errors.Is(err, domain.ErrAssistantUnavailable) {
		t.Fatalf("GenerateText() error = %v, want ErrAssistantUnavailable on 429", err)
	}
}

func TestGenerateJSONDeclaresSchema(t *testing.T) {
	var captured []byte
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		captured, _ = io.ReadAll(r.Body)
		return candidateResponse(`{"short":"s","long":"l"}`), nil
	})
	var out CertificateDescription
	if err := client.GenerateJSON(context.Background(), "describe", certificateSchema(), &out); err != nil {
		t.Fatalf("GenerateJSON() unexpected error: %v", err)
	}
	if out.Short != "s" || out.Long != "l" {
		t.Fatalf("GenerateJSON() decoded %+v", out)
	}
	var payload map[string]any
	if err := json.Unmarshal(captured, &payload); err != nil {
		t.Fatalf("request body not JSON: %v", err)
	}
	genCfg, ok := payload["generationConfig"].(map[string]any)
	if !ok {
		t.Fatalf("request missing generationConfig: %s", captured)
	}
	if genCfg["responseMimeType"] != "application/json" {
		t.Fatalf("responseMimeType = %v", genCfg["responseMimeType"])
	}
	if _, ok := genCfg["responseSchema"]; !ok {
		t.Fatalf("request missing responseSchema")
	}
}

func TestGenerateJSONTrimsCodeFences(t *testing.T) {
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		return candidateResponse("```json\n{\"short\":\"cv\",\"long\":\"linkedin\"}\n```"), nil
	})
	var out CertificateDescription
	if err := client.GenerateJSON(context.Background(), "p", certificateSchema(), &out); err != nil {
		t.Fatalf("GenerateJSON() unexpected error: %v", err)
	}
	if out.Short != "cv" || out.Long != "linkedin" {
		t.Fatalf("GenerateJSON() decoded %+v", out)
	}
}

func TestGenerateJSONMalformedPayload(t *testing.T) {
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		return candidateResponse("not json at all"), nil
	})
	var out CertificateDescription
	if err := client.GenerateJSON(context.Background(), "p", certificateSchema(), &out); !errors.Is(err, domain.ErrAssistantUnavailable) {
		t.Fatalf("GenerateJSON() error = %v, want ErrAssistantUnavailable", err)
	}
}

func TestExtractJSONFragment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain object", `{"a":1}`, `{"a":1}`},
		{"fenced array", "```json\n[1,2]\n```", "[1,2]"},
		{"prose around object", "Here you go: {\"a\":1} enjoy", `{"a":1}`},
		{"empty", "   ", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSONFragment(tc.in); got != tc.want {
				t.Fatalf("extractJSONFragment(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
