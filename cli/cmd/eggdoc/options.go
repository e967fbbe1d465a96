package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"go.eggybyte.com/eggdoc/core/errors"
	"go.eggybyte.com/eggdoc/core/utils"
	"go.eggybyte.com/eggdoc/doxygenx"
)

// optionView is one listed option.
type optionView struct {
	Key         string `json:"key" yaml:"key"`
	Kind        string `json:"kind" yaml:"kind"`
	Default     string `json:"default" yaml:"default"`
	Value       string `json:"value,omitempty" yaml:"value,omitempty"`
	Description string `json:"description" yaml:"description"`
}

func newOptionsCmd(opts *rootOptions) *cobra.Command {
	var (
		format   string
		width    int
		resolved bool
		filter   string
	)

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the doxygen options eggdoc writes",
		Long: `List every doxygen option in the order it is written, with its kind,
default and description.

With --resolved the project settings are loaded and the value each option
would be written with is shown as well.

Example:
  eggdoc options --filter HTML
  eggdoc options --format yaml --resolved`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var values *doxygenx.Values
			if resolved {
				project, err := opts.loadProject(cmd)
				if err != nil {
					return err
				}
				if values, err = project.Values(); err != nil {
					return err
				}
			}

			views := listOptions(values, resolved, filter)
			return writeOptions(cmd.OutOrStdout(), views, format, width)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, yaml or json")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap descriptions at this column (table format)")
	cmd.Flags().BoolVar(&resolved, "resolved", false, "Show the value each option resolves to for this project")
	cmd.Flags().StringVar(&filter, "filter", "", "Only list options whose key contains this text")
	return cmd
}

// listOptions returns the registry as views, optionally resolved against values.
func listOptions(values *doxygenx.Values, resolved bool, filter string) []optionView {
	filter = strings.ToUpper(filter)

	var views []optionView
	for _, opt := range doxygenx.Options() {
		if filter != "" && !strings.Contains(opt.Key, filter) {
			continue
		}
		v := optionView{
			Key:         opt.Key,
			Kind:        opt.Kind.String(),
			Default:     opt.Default,
			Description: strings.TrimPrefix(opt.Description, "# "),
		}
		if resolved {
			// Keys come from the registry, so Resolve cannot fail.
			v.Value, _ = values.Resolve(opt.Key)
		}
		views = append(views, v)
	}
	return views
}

// writeOptions renders views in format.
//
// Parameters:
//   - w: Destination
//   - views: Options to write
//   - format: table, yaml or json
//   - width: Wrap column for table descriptions
//
// Returns:
//   - error: CodeInvalidArgument for an unknown format, or a write error
func writeOptions(w io.Writer, views []optionView, format string, width int) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		wrap := utils.Max(width-4, 20)
		for _, v := range views {
			line := fmt.Sprintf("%s (%s) default=%q", v.Key, v.Kind, v.Default)
			if v.Value != "" {
				line += fmt.Sprintf(" value=%q", v.Value)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, indent.String(wordwrap.String(v.Description, wrap), 4)); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.Build(errors.CodeInvalidArgument).
			WithOp("eggdoc.options").
			WithMsgf("unknown format %q (want table, yaml or json)", format).
			Err()
	}
}
