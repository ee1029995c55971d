// Package config loads retrotype settings from TOML, YAML or JSON, applies
// environment overrides and validates the result.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/iw2rmb/retrotype/carriage"
)

// ErrInvalid marks every validation failure.
var ErrInvalid = errors.New("invalid config")

// Provider names.
const (
	ProviderAuto   = "auto"
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
	ProviderNone   = "none"
)

type Config struct {
	Provider   string           `toml:"provider" yaml:"provider" json:"provider"`
	Topic      string           `toml:"topic" yaml:"topic" json:"topic"`
	Timeout    Duration         `toml:"timeout" yaml:"timeout" json:"timeout"`
	Gemini     GeminiConfig     `toml:"gemini" yaml:"gemini" json:"gemini"`
	Ollama     OllamaConfig     `toml:"ollama" yaml:"ollama" json:"ollama"`
	Typewriter TypewriterConfig `toml:"typewriter" yaml:"typewriter" json:"typewriter"`
	Log        LogConfig        `toml:"log" yaml:"log" json:"log"`
}

type GeminiConfig struct {
	APIKey   string `toml:"api_key" yaml:"api_key" json:"api_key"`
	Model    string `toml:"model" yaml:"model" json:"model"`
	Endpoint string `toml:"endpoint" yaml:"endpoint" json:"endpoint"`
}

type OllamaConfig struct {
	URL   string `toml:"url" yaml:"url" json:"url"`
	Model string `toml:"model" yaml:"model" json:"model"`
}

type TypewriterConfig struct {
	TypeInterval  Duration `toml:"type_interval" yaml:"type_interval" json:"type_interval"`
	Pulse         Duration `toml:"pulse" yaml:"pulse" json:"pulse"`
	Highlight     Duration `toml:"highlight" yaml:"highlight" json:"highlight"`
	Strict        bool     `toml:"strict" yaml:"strict" json:"strict"`
	Width         string   `toml:"width" yaml:"width" json:"width"`
	TearThreshold int      `toml:"tear_threshold" yaml:"tear_threshold" json:"tear_threshold"`
	Keyboard      bool     `toml:"keyboard" yaml:"keyboard" json:"keyboard"`
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level" json:"level"`
	File  string `toml:"file" yaml:"file" json:"file"`
}

func Default() *Config {
	return &Config{
		Provider: ProviderAuto,
		Timeout:  Duration(20 * time.Second),
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
		Ollama: OllamaConfig{
			URL:   "http://localhost:11434",
			Model: "llama3.2",
		},
		Typewriter: TypewriterConfig{
			TypeInterval:  Duration(80 * time.Millisecond),
			Pulse:         Duration(100 * time.Millisecond),
			Highlight:     Duration(150 * time.Millisecond),
			Width:         carriage.WidthByteRange.String(),
			TearThreshold: 6,
			Keyboard:      true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/retrotype/config.toml or the platform
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "retrotype.toml"
	}
	return filepath.Join(dir, "retrotype", "config.toml")
}

// ApplyEnvOverrides copies recognised environment variables over c.
func (c *Config) ApplyEnvOverrides() {
	c.applyEnv(os.Getenv)
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("RETROTYPE_PROVIDER"); v != "" {
		c.Provider = strings.ToLower(v)
	}
	for _, name := range []string{"RETROTYPE_API_KEY", "API_KEY", "GEMINI_API_KEY"} {
		if v := getenv(name); v != "" {
			c.Gemini.APIKey = v
			break
		}
	}
	if v := getenv("OLLAMA_URL"); v != "" {
		c.Ollama.URL = v
	}
	if v := getenv("RETROTYPE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// ResolvedProvider turns ProviderAuto into a concrete choice: Gemini when a
// key is present, none otherwise.
func (c *Config) ResolvedProvider() string {
	if c.Provider != ProviderAuto && c.Provider != "" {
		return c.Provider
	}
	if c.Gemini.APIKey != "" {
		return ProviderGemini
	}
	return ProviderNone
}

func (c *Config) WidthPolicy() carriage.WidthPolicy {
	p, _ := carriage.ParseWidthPolicy(c.Typewriter.Width)
	return p
}

func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, err
	}
	return lvl, nil
}

// Validate reports every problem at once, each wrapping ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if err := validateSchema(c); err != nil {
		bad("%v", err)
	}
	switch c.Provider {
	case ProviderAuto, ProviderGemini, ProviderOllama, ProviderNone:
	default:
		bad("unknown provider %q", c.Provider)
	}
	if c.Provider == ProviderOllama && c.Ollama.URL == "" {
		bad("ollama provider needs ollama.url")
	}
	if c.Timeout < 0 {
		bad("timeout must not be negative")
	}
	tw := c.Typewriter
	for name, d := range map[string]Duration{"type_interval": tw.TypeInterval, "pulse": tw.Pulse, "highlight": tw.Highlight} {
		if d <= 0 {
			bad("typewriter.%s must be positive", name)
		}
	}
	if _, ok := carriage.ParseWidthPolicy(tw.Width); !ok {
		bad("unknown typewriter.width %q", tw.Width)
	}
	if tw.TearThreshold < 1 {
		bad("typewriter.tear_threshold must be at least 1")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		bad("log.level: %v", err)
	}
	return errors.Join(errs...)
}

// Duration is a time.Duration written as a string like "80ms".
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
