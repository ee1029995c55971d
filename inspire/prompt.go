package inspire

import (
	"fmt"
	"strings"
)

const (
	FallbackUnconfigured = "The quick brown fox jumps over the lazy dog.\n(Add API_KEY to .env for AI inspiration)"
	FallbackJammed       = "The machine is jammed.\n(API Error)"
	FallbackEmpty        = "Inspiration fails me..."
)

// Prompt builds the generation prompt. A blank topic asks for a generic
// aphorism.
func Prompt(topic string) string {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "Write a very short, nostalgic, vintage-style typewriter aphorism. Max 15 words. Format as raw text."
	}
	return fmt.Sprintf("Write a very short, cryptic, vintage-style typewriter poem or aphorism about: %s. Max 20 words. Format as raw text.", topic)
}
