package main

import (
	"io"

	"github.com/spf13/cobra"

	"go.eggybyte.com/eggdoc/cli/internal/ui"
	"go.eggybyte.com/eggdoc/doxygenx"
)

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var printOnly, diffOnly bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the doxygen configuration file without running doxygen",
		Long: `Write the doxygen configuration file to <output-dir>/doxygen.config, or to
--config-file when it does not exist yet. An existing --config-file is left untouched.

With --print the configuration is written to standard output instead and no
file is created. With --diff a unified diff from the existing file to the
configuration eggdoc would write is printed; nothing is written either.

Example:
  eggdoc generate --set GENERATE_LATEX=YES
  eggdoc generate --print | grep TAB_SIZE
  eggdoc generate --config-file Doxyfile --diff`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := opts.loadProject(cmd)
			if err != nil {
				return err
			}
			values, err := project.Values()
			if err != nil {
				return err
			}

			_, logger := runContext(cmd.Context(), project.Settings, "generate", newLogger(project.Settings, cmd.ErrOrStderr()))
			s := project.Settings
			gen := doxygenx.NewGenerator(s.BaseDir, s.OutputDir, values, logger)

			switch {
			case printOnly:
				_, err := gen.WriteTo(cmd.OutOrStdout())
				return err
			case diffOnly:
				path, err := gen.ConfigPath(s.ConfigFile)
				if err != nil {
					return err
				}
				diff, err := gen.Diff(path)
				if err != nil {
					return err
				}
				if diff == "" {
					ui.Result(map[string]any{"config": path, "changed": false}, "%s is up to date", path)
					return nil
				}
				_, err = io.WriteString(cmd.OutOrStdout(), diff)
				return err
			}

			path, reused, err := gen.LocateOrBuild(s.ConfigFile)
			if err != nil {
				return err
			}
			data := map[string]any{"config": path, "reused": reused, "overrides": values.SetKeys()}
			if reused {
				ui.Result(data, "Reusing existing configuration file %s", path)
			} else {
				ui.Result(data, "Configuration written to %s", path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "Write the configuration to standard output")
	cmd.Flags().BoolVar(&diffOnly, "diff", false, "Show how the existing configuration file differs from the generated one")
	cmd.MarkFlagsMutuallyExclusive("print", "diff")
	return cmd
}
