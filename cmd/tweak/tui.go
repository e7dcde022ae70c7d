package main

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-drift/tweak/cmd/tweak/internal/config"
	"github.com/go-drift/tweak/pkg/errors"
	"github.com/go-drift/tweak/pkg/term"
	"github.com/go-drift/tweak/pkg/value"
)

type tuiFlags struct {
	watch   bool
	logFile string
}

func newTUICmd(root *rootFlags) *cobra.Command {
	flags := &tuiFlags{}

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Edit the controls interactively in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, root, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "Apply tweak.yaml changes while running")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Write logs here instead of discarding them")

	return cmd
}

func runTUI(cmd *cobra.Command, root *rootFlags, flags *tuiFlags) error {
	cfg, path, err := root.resolveConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI; logs go to a file or nowhere.
	logger := zerolog.Nop()
	if flags.logFile != "" {
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		if logger, err = errors.NewLogger(errors.LogOptions{Level: "debug", Writer: f}); err != nil {
			return err
		}
	}
	errors.SetHandler(&errors.LogHandler{Logger: &logger, Verbose: root.verbose})

	m := term.NewModel(term.Options{
		Title:  cfg.Title,
		Number: value.New(cfg.Number.Value),
		Min:    cfg.Number.Min,
		Max:    cfg.Number.Max,
		Step:   cfg.Number.Step,
		Digits: cfg.Number.Digits,
		Color:  value.New(cfg.Color),
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if flags.watch {
		updates, err := config.NewWatcher(path).Watch(ctx)
		if err != nil {
			return err
		}
		go forward(p, updates, filepath.Dir(path), &logger)
	}

	final, err := p.Run()
	if fm, ok := final.(term.Model); ok {
		fm.Close()
	} else {
		m.Close()
	}
	return err
}

// forward turns config reloads into value writes inside the program.
func forward(p *tea.Program, updates <-chan config.Update, dir string, logger *zerolog.Logger) {
	for u := range updates {
		if u.Err != nil {
			logger.Warn().Err(u.Err).Msg("config reload failed")
			continue
		}
		resolved, err := u.Config.Resolve(dir)
		if err != nil {
			logger.Warn().Err(err).Msg("config reload rejected")
			continue
		}
		p.Send(term.NumberMsg{Value: resolved.Number.Value})
		p.Send(term.ColorMsg{Color: resolved.Color})
	}
}
