package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/retrotype/inspire"
	"github.com/iw2rmb/retrotype/internal/config"
	"github.com/iw2rmb/retrotype/internal/logging"
)

func inspireCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspire [topic]",
		Short: "Print one inspiration and exit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := *opts
			if len(args) == 1 {
				o.Topic = args[0]
			}
			cfg, err := loadConfig(o)
			if err != nil {
				return err
			}
			level, err := cfg.Log.SlogLevel()
			if err != nil {
				return err
			}
			logger := logging.Console(os.Stderr, level, termenv.EnvNoColor())

			svc := newInspirer(cfg, logger)
			text := svc.Inspire(cmd.Context(), cfg.Topic)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
}

// newGenerator picks the inspiration backend named by cfg. A nil result
// means inspirations fall back to placeholder text.
func newGenerator(cfg *config.Config) inspire.Generator {
	switch cfg.ResolvedProvider() {
	case config.ProviderGemini:
		return &inspire.Gemini{
			APIKey:   cfg.Gemini.APIKey,
			Model:    cfg.Gemini.Model,
			Endpoint: cfg.Gemini.Endpoint,
		}
	case config.ProviderOllama:
		return &inspire.Ollama{
			URL:   cfg.Ollama.URL,
			Model: cfg.Ollama.Model,
		}
	default:
		return nil
	}
}

func newInspirer(cfg *config.Config, logger *slog.Logger) *inspire.Service {
	logger.Debug("inspiration backend", "provider", cfg.ResolvedProvider())
	return inspire.NewService(newGenerator(cfg),
		inspire.WithLogger(logger),
		inspire.WithTimeout(cfg.Timeout.Std()),
	)
}
