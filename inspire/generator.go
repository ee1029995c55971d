package inspire

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// ErrUnconfigured is returned by a Generator that lacks credentials or an
// endpoint.
var ErrUnconfigured = errors.New("inspire: generator not configured")

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Pinger is implemented by generators that can report availability cheaply.
type Pinger interface {
	Ping(ctx context.Context) error
}

var defaultHTTP = &http.Client{Timeout: 30 * time.Second}

func httpClient(c *http.Client) *http.Client {
	if c != nil {
		return c
	}
	return defaultHTTP
}
