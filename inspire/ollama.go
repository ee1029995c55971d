package inspire

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Ollama talks to a local Ollama server.
type Ollama struct {
	URL   string // base URL, e.g. http://localhost:11434
	Model string
	HTTP  *http.Client
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func (o *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	if o.URL == "" || o.Model == "" {
		return "", ErrUnconfigured
	}
	body, err := json.Marshal(ollamaGenerateRequest{Model: o.Model, Prompt: prompt})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint("/api/generate"), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient(o.HTTP).Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama error: %s", resp.Status)
	}
	var out ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("ollama decode: %w", err)
	}
	return out.Response, nil
}

// Ping checks /api/tags.
func (o *Ollama) Ping(ctx context.Context) error {
	if o.URL == "" {
		return ErrUnconfigured
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.endpoint("/api/tags"), nil)
	if err != nil {
		return err
	}
	resp, err := httpClient(o.HTTP).Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama status: %s", resp.Status)
	}
	return nil
}

func (o *Ollama) endpoint(path string) string {
	return strings.TrimRight(o.URL, "/") + path
}
