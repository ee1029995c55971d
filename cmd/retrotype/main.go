// Command retrotype is a terminal typewriter: every keystroke is kept on
// the page, deletions are struck through, and finished pages are torn off
// onto a sticker wall.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/retrotype"
	"github.com/iw2rmb/retrotype/internal/config"
)

type options struct {
	ConfigPath string
	Debug      bool
	LogFile    string
	Topic      string
	Provider   string
	Inspire    bool
	NoKeyboard bool
}

func main() {
	var opts options
	rootCmd := newRootCmd(&opts)

	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion(retrotype.VersionTag()),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "retrotype [flags]",
		Short: "A typewriter for the terminal",
		Long: `retrotype keeps every keystroke on the page. Backspace strikes a
character through instead of erasing it, and a finished page can be torn off
(ctrl+t, or drag the paper up) and pinned to a wall of stickers.

Press ctrl+g for an AI writing prompt typed onto a fresh page.`,
		Example: `  # Start typing
  retrotype

  # Start with an inspiration about a topic
  retrotype --inspire --topic "lighthouses"

  # Use a local Ollama model and log to a file
  retrotype --provider ollama --log-file /tmp/retrotype.log -d`,
		Version: retrotype.VersionTag(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), *opts, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", config.DefaultPath(), "Path to a TOML, YAML or JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&opts.Topic, "topic", "", "Topic for inspirations")
	rootCmd.PersistentFlags().StringVar(&opts.Provider, "provider", "", "Inspiration backend: auto, gemini, ollama or none")
	rootCmd.Flags().BoolVar(&opts.Inspire, "inspire", false, "Type an inspiration as soon as the page is ready")
	rootCmd.Flags().BoolVar(&opts.NoKeyboard, "no-keyboard", false, "Hide the on-screen keyboard")

	rootCmd.AddCommand(inspireCmd(opts))
	return rootCmd
}

// loadConfig reads the config file and layers the command-line flags on
// top of it.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, opts options) {
	if opts.Topic != "" {
		cfg.Topic = opts.Topic
	}
	if opts.Provider != "" {
		cfg.Provider = opts.Provider
	}
	if opts.Debug {
		cfg.Log.Level = "debug"
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	if opts.NoKeyboard {
		cfg.Typewriter.Keyboard = false
	}
}
