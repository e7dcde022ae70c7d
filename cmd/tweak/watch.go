package main

import (
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-drift/tweak/cmd/tweak/internal/config"
	"github.com/go-drift/tweak/pkg/errors"
)

type watchFlags struct {
	out        string
	maxUpdates int
}

func newWatchCmd(root *rootFlags) *cobra.Command {
	flags := &watchFlags{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the controls whenever tweak.yaml changes",
		Long: `Watch keeps one set of controls alive and writes every saved tweak.yaml
into their shared values, so each edit shows up in all linked controls at once.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, root, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "PNG output path rewritten on every change")
	cmd.Flags().IntVar(&flags.maxUpdates, "max-updates", 0, "Stop after this many reloads (0 runs until interrupted)")
	_ = cmd.Flags().MarkHidden("max-updates")

	return cmd
}

func runWatch(cmd *cobra.Command, root *rootFlags, flags *watchFlags) error {
	cfg, path, err := root.resolveConfig()
	if err != nil {
		return err
	}
	s := newSession(cfg)
	defer s.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	updates, err := config.NewWatcher(path).Watch(ctx)
	if err != nil {
		return err
	}
	root.logger.Info().Str("path", path).Msg("watching config")

	out := cmd.OutOrStdout()
	seen := 0
	for u := range updates {
		if err := reload(s, u, filepath.Dir(path)); err != nil {
			errors.Report(&errors.ControlError{Op: "watch.reload", Kind: errors.KindConfig, Err: err})
		} else {
			s.writeSummary(out)
			if flags.out != "" {
				if err := s.writePNG(flags.out); err != nil {
					return err
				}
			}
		}
		seen++
		if flags.maxUpdates > 0 && seen >= flags.maxUpdates {
			return nil
		}
	}
	return nil
}

func reload(s *session, u config.Update, dir string) error {
	if u.Err != nil {
		return u.Err
	}
	resolved, err := u.Config.Resolve(dir)
	if err != nil {
		return err
	}
	s.apply(resolved)
	return nil
}
