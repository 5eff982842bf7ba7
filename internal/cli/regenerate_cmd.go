package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/config"
	"github.com/spf13/cobra"
)

func newRegenerateCmd(app *App) *cobra.Command {
	var start string
	var version int
	var yes bool

	cmd := &cobra.Command{
		Use:   "regenerate",
		Short: "Rebuild the six-week schedule, discarding task progress",
		Long: "Rebuild the six-week schedule from a start date. All tasks, including\n" +
			"hand-added ones and completion marks, are replaced. Notes are kept.\n" +
			"A start date or version that differs from the config is written back to\n" +
			"the config file so the next launch keeps it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("start") {
				start = app.Config.StartDate
			}
			if !cmd.Flags().Changed("version") {
				version = app.Config.ScheduleVersion
			}
			if _, err := calendar.ParseDateKey(start); err != nil {
				return err
			}
			if version <= 0 {
				return fmt.Errorf("version must be positive, got %d", version)
			}

			if !yes {
				if !app.interactive() {
					return errors.New("regenerate replaces every task; pass --yes to confirm")
				}
				confirmed := false
				err := huh.NewConfirm().
					Title(fmt.Sprintf("Replace all %d tasks with a fresh schedule from %s?", len(app.Planner.Tasks()), start)).
					Affirmative("Regenerate").
					Negative("Cancel").
					Value(&confirmed).
					Run()
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := app.Planner.Regenerate(cmd.Context(), start, version); err != nil {
				return err
			}
			app.logger().Info("schedule regenerated from cli", "start", start, "version", version)

			if (start != app.Config.StartDate || version != app.Config.ScheduleVersion) && app.ConfigPath != "" {
				if err := config.SaveSchedule(app.ConfigPath, start, version); err != nil {
					return fmt.Errorf("schedule regenerated but config not updated: %w", err)
				}
				app.Config.StartDate, app.Config.ScheduleVersion = start, version
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Regenerated %d tasks for %s (version %d)\n",
				len(app.Planner.Tasks()), app.Planner.WeekRangeLabel(0), version)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date YYYY-MM-DD (default from config)")
	cmd.Flags().IntVar(&version, "version", 0, "Schedule version (default from config)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
