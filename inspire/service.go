package inspire

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
)

// Service wraps a Generator with the fallback policy.
type Service struct {
	gen     Generator
	logger  *slog.Logger
	timeout time.Duration
}

type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTimeout bounds each Inspire call. Zero means no extra bound.
func WithTimeout(d time.Duration) ServiceOption {
	return func(s *Service) { s.timeout = d }
}

// NewService returns a Service. gen may be nil, in which case every call
// yields FallbackUnconfigured.
func NewService(gen Generator, opts ...ServiceOption) *Service {
	s := &Service{gen: gen, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "inspire")
	return s
}

// Inspire returns generated text for topic, or a placeholder.
func (s *Service) Inspire(ctx context.Context, topic string) string {
	if s == nil || s.gen == nil {
		return FallbackUnconfigured
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.gen.Generate(ctx, Prompt(topic))
	switch {
	case errors.Is(err, ErrUnconfigured):
		s.logger.Warn("generator not configured, using placeholder")
		return FallbackUnconfigured
	case err != nil:
		s.logger.Error("generation failed", "err", err, "elapsed", time.Since(start))
		return FallbackJammed
	}

	text = strings.TrimSpace(text)
	if text == "" {
		s.logger.Warn("generator returned empty text")
		return FallbackEmpty
	}
	s.logger.Debug("generated", "runes", len([]rune(text)), "elapsed", time.Since(start))
	return text
}

// Available reports whether the backend looks reachable. Generators without
// a Ping are assumed available.
func (s *Service) Available(ctx context.Context) bool {
	if s == nil || s.gen == nil {
		return false
	}
	p, ok := s.gen.(Pinger)
	if !ok {
		return true
	}
	if err := p.Ping(ctx); err != nil {
		s.logger.Debug("ping failed", "err", err)
		return false
	}
	return true
}
