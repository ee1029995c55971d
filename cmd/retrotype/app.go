package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/iw2rmb/retrotype/internal/config"
	"github.com/iw2rmb/retrotype/internal/logging"
	"github.com/iw2rmb/retrotype/typewriter"
)

type app struct {
	tw      typewriter.Model
	inspire bool
}

func (a app) Init() tea.Cmd {
	cmds := []tea.Cmd{a.tw.Init()}
	if a.inspire {
		cmds = append(cmds, func() tea.Msg { return typewriter.InspireMsg{} })
	}
	return tea.Batch(cmds...)
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	var cmd tea.Cmd
	a.tw, cmd = a.tw.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.tw.View() }

func typewriterConfig(cfg *config.Config, insp typewriter.Inspirer, logger *slog.Logger) typewriter.Config {
	return typewriter.Config{
		Strict:        cfg.Typewriter.Strict,
		Logger:        logger,
		Inspirer:      insp,
		Topic:         cfg.Topic,
		TypeInterval:  cfg.Typewriter.TypeInterval.Std(),
		Pulse:         cfg.Typewriter.Pulse.Std(),
		Highlight:     cfg.Typewriter.Highlight.Std(),
		Width:         cfg.WidthPolicy(),
		TearThreshold: cfg.Typewriter.TearThreshold,
		ShowKeyboard:  cfg.Typewriter.Keyboard,
		Style:         typewriter.DefaultStyle(),
		Clipboard:     typewriter.SystemClipboard{},
	}
}

func settingsFrom(cfg *config.Config, insp typewriter.Inspirer) typewriter.SettingsMsg {
	return typewriter.SettingsMsg{
		Topic:         cfg.Topic,
		TypeInterval:  cfg.Typewriter.TypeInterval.Std(),
		Pulse:         cfg.Typewriter.Pulse.Std(),
		Highlight:     cfg.Typewriter.Highlight.Std(),
		Width:         cfg.WidthPolicy(),
		TearThreshold: cfg.Typewriter.TearThreshold,
		ShowKeyboard:  cfg.Typewriter.Keyboard,
		Inspirer:      insp,
	}
}

func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	if cfg.Log.File == "" {
		return logging.Discard(), io.NopCloser(nil), nil
	}
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	return logging.File(cfg.Log.File, level)
}

// run drives the TUI and reloads the config file while it is open.
func run(ctx context.Context, opts options, cfg *config.Config) error {
	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Info("starting", "config", opts.ConfigPath, "provider", cfg.ResolvedProvider())

	tw := typewriter.New(typewriterConfig(cfg, newInspirer(cfg, logger), logger))
	p := tea.NewProgram(app{tw: tw, inspire: opts.Inspire},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	g, gctx := errgroup.WithContext(ctx)
	watchCtx, stopWatch := context.WithCancel(gctx)

	g.Go(func() error {
		defer stopWatch()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})
	g.Go(func() error {
		err := config.Watch(watchCtx, opts.ConfigPath,
			func(c *config.Config) {
				applyFlags(c, opts)
				if err := c.Validate(); err != nil {
					logger.Warn("config reload rejected", "err", err)
					return
				}
				logger.Info("config reloaded", "path", opts.ConfigPath)
				p.Send(settingsFrom(c, newInspirer(c, logger)))
			},
			func(err error) { logger.Warn("config reload failed", "err", err) },
		)
		if err != nil {
			logger.Warn("config watch disabled", "err", err)
		}
		return nil
	})
	return g.Wait()
}
