package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func newExportCmd(app *App) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole planner document as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := app.Planner.Snapshot()

			var data []byte
			var err error
			switch strings.ToLower(format) {
			case formatJSON:
				data, err = json.MarshalIndent(state, "", "  ")
				data = append(data, '\n')
			case formatYAML, "yml":
				data, err = yaml.Marshal(state)
			default:
				return fmt.Errorf("unknown export format %q (want json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("encode export: %w", err)
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d tasks and %d notes to %s\n", len(state.Tasks), len(state.Notes), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatJSON, "json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	return cmd
}
