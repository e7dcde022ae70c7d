package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/tweak/pkg/format"
)

type renderFlags struct {
	out   string
	value string
	color string
	tree  bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the controls once and write the palette as PNG",
		Long: `Render builds a slider/text control and a color picker from tweak.yaml,
optionally commits --value and --color through their text fields as if typed,
prints what every control shows and writes the palette to --out.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.out, "out", "o", "palette.png", "PNG output path (empty to skip)")
	cmd.Flags().StringVar(&flags.value, "value", "", "Number to commit through the text field")
	cmd.Flags().StringVar(&flags.color, "color", "", "Color to commit through the hex field")
	cmd.Flags().BoolVar(&flags.tree, "tree", false, "Print the control trees as JSON")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, flags *renderFlags) error {
	cfg, path, err := root.resolveConfig()
	if err != nil {
		return err
	}
	root.logger.Debug().Str("config", path).Str("title", cfg.Title).Msg("config resolved")

	s := newSession(cfg)
	defer s.close()

	if flags.value != "" {
		if _, ok := (format.NumberParser{}).Parse(flags.value); !ok {
			return fmt.Errorf("invalid --value %q", flags.value)
		}
		s.commit(s.slider.Element(), "tw-txtv_i", flags.value)
	}
	if flags.color != "" {
		if _, ok := (format.ColorHexParser{}).Parse(flags.color); !ok {
			return fmt.Errorf("invalid --color %q", flags.color)
		}
		s.commit(s.picker.Element(), "tw-coltxtv_i", flags.color)
	}

	out := cmd.OutOrStdout()
	s.writeSummary(out)
	if flags.tree {
		if err := s.writeTree(out); err != nil {
			return err
		}
	}
	if flags.out != "" {
		if err := s.writePNG(flags.out); err != nil {
			return err
		}
		root.logger.Info().Str("path", flags.out).Msg("palette written")
	}
	return nil
}
