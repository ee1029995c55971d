package inspire

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel    = "gemini-2.5-flash"
)

// Gemini calls the Gemini REST API.
type Gemini struct {
	APIKey   string
	Model    string
	Endpoint string
	HTTP     *http.Client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if g.APIKey == "" {
		return "", ErrUnconfigured
	}
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.APIKey)

	resp, err := httpClient(g.HTTP).Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("gemini error: %s: %s", resp.Status, bytes.TrimSpace(msg))
	}
	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini decode: %w", err)
	}
	if len(out.Candidates) == 0 {
		return "", nil
	}
	var b strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String(), nil
}

// Ping only checks that a key is present; the API has no cheap health call.
func (g *Gemini) Ping(context.Context) error {
	if g.APIKey == "" {
		return ErrUnconfigured
	}
	return nil
}

func (g *Gemini) url() string {
	endpoint := g.Endpoint
	if endpoint == "" {
		endpoint = DefaultGeminiEndpoint
	}
	model := g.Model
	if model == "" {
		model = DefaultGeminiModel
	}
	return strings.TrimRight(endpoint, "/") + "/models/" + url.PathEscape(model) + ":generateContent"
}
