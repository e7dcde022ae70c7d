package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-drift/tweak/cmd/tweak/internal/config"
	"github.com/go-drift/tweak/pkg/errors"
)

type rootFlags struct {
	verbose    bool
	configPath string
	logger     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "tweak",
		Short:         "Tweak renders and edits numbers and colors with linked controls",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.setupLogging(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to tweak.yaml (default: nearest project root)")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newWatchCmd(flags))
	cmd.AddCommand(newTUICmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setupLogging installs a zerolog-backed error handler writing to w.
func (f *rootFlags) setupLogging(w io.Writer) error {
	level := "info"
	if f.verbose {
		level = "debug"
	}
	logger, err := errors.NewLogger(errors.LogOptions{Level: level, HumanReadable: true, Writer: w})
	if err != nil {
		return err
	}
	f.logger = logger
	errors.SetHandler(&errors.LogHandler{Logger: &f.logger, Verbose: f.verbose})
	return nil
}

// resolveConfig loads the config named by --config, or tweak.yaml from the
// nearest project root, or defaults for the working directory.
func (f *rootFlags) resolveConfig() (*config.Resolved, string, error) {
	if f.configPath != "" {
		cfg, err := config.Load(f.configPath)
		if err != nil {
			return nil, "", err
		}
		dir := filepath.Dir(f.configPath)
		resolved, err := cfg.Resolve(dir)
		return resolved, f.configPath, err
	}

	dir, err := config.FindProjectRoot()
	if err != nil {
		if dir, err = os.Getwd(); err != nil {
			return nil, "", err
		}
	}
	resolved, err := config.Resolve(dir)
	return resolved, filepath.Join(dir, config.FileName), err
}
