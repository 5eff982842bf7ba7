package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/neuraplan/internal/model"
	"github.com/sandeepkv93/neuraplan/internal/planner"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var in planner.TaskInput
	var domain, priority, date string

	cmd := &cobra.Command{
		Use:   "add [TITLE...]",
		Short: "Add a task (opens a form when run in a terminal without a title)",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Title = strings.TrimSpace(strings.Join(args, " "))
			var err error
			if in.Domain, err = model.ParseDomainID(domain); err != nil {
				return err
			}
			if in.Priority, err = model.ParsePriority(priority); err != nil {
				return err
			}
			if date != "" {
				day, err := parseDayArg(app, date)
				if err != nil {
					return err
				}
				in.Date = day.Key()
			}

			if in.Title == "" {
				if !app.interactive() {
					return errors.New("a title is required when not running in a terminal")
				}
				prompt := app.PromptTask
				if prompt == nil {
					prompt = promptTask
				}
				if err := prompt(&in); err != nil {
					return err
				}
			}

			t, err := app.Planner.AddTask(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q on %s\n", shortID(t.ID), t.Title, t.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD, today or tomorrow (default today)")
	cmd.Flags().StringVar(&domain, "domain", string(model.DomainCoding), "Domain id")
	cmd.Flags().StringVar(&priority, "priority", string(model.PriorityMedium), "low, medium or high")
	cmd.Flags().StringVar(&in.TimeSlot, "slot", "", "Time slot such as 09:00-10:30")
	cmd.Flags().StringVar(&in.Description, "desc", "", "Description")

	return cmd
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Planner.FindTask(args[0])
			if err != nil {
				return err
			}
			if t, err = app.Planner.ToggleDone(cmd.Context(), t.ID); err != nil {
				return err
			}
			state := "Reopened"
			if t.Done {
				state = "Completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %q\n", state, shortID(t.ID), t.Title)
			return nil
		},
	}
}

func newMoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move ID DATE|+N|-N",
		Short: "Move a task to another date, or shift it by N days",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Planner.FindTask(args[0])
			if err != nil {
				return err
			}
			when := args[1]
			if strings.HasPrefix(when, "+") || strings.HasPrefix(when, "-") {
				days, convErr := strconv.Atoi(when)
				if convErr != nil {
					return fmt.Errorf("bad day offset %q", when)
				}
				t, err = app.Planner.ShiftTask(cmd.Context(), t.ID, days)
			} else {
				day, parseErr := parseDayArg(app, when)
				if parseErr != nil {
					return parseErr
				}
				t, err = app.Planner.MoveTask(cmd.Context(), t.ID, day.Key())
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s %q to %s\n", shortID(t.ID), t.Title, t.Date)
			return nil
		},
	}
	// Everything after ID is positional so "-3" reads as an offset.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var title, desc, domain, priority, date, slot string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a task's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Planner.FindTask(args[0])
			if err != nil {
				return err
			}

			var patch model.TaskPatch
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("desc") {
				patch.Description = &desc
			}
			if flags.Changed("domain") {
				id, err := model.ParseDomainID(domain)
				if err != nil {
					return err
				}
				patch.Domain = &id
			}
			if flags.Changed("priority") {
				p, err := model.ParsePriority(priority)
				if err != nil {
					return err
				}
				patch.Priority = &p
			}
			if flags.Changed("date") {
				day, err := parseDayArg(app, date)
				if err != nil {
					return err
				}
				key := day.Key()
				patch.Date = &key
			}
			if flags.Changed("slot") {
				patch.TimeSlot = &slot
			}
			if patch.IsEmpty() {
				return errors.New("nothing to edit: pass at least one of --title, --desc, --domain, --priority, --date or --slot")
			}

			if t, err = app.Planner.EditTask(cmd.Context(), t.ID, patch); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %q\n", shortID(t.ID), t.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&desc, "desc", "", "New description")
	cmd.Flags().StringVar(&domain, "domain", "", "New domain id")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority")
	cmd.Flags().StringVar(&date, "date", "", "New date")
	cmd.Flags().StringVar(&slot, "slot", "", "New time slot (empty clears it)")

	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Planner.FindTask(args[0])
			if err != nil {
				return err
			}
			if err := app.Planner.DeleteTask(cmd.Context(), t.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %q\n", shortID(t.ID), t.Title)
			return nil
		},
	}
}

func newGotoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "goto ID",
		Short: "Make the week containing a task the current week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Planner.FindTask(args[0])
			if err != nil {
				return err
			}
			week, err := app.Planner.FocusTask(cmd.Context(), t.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Week %d · %s: %q on %s\n", week+1, app.Planner.WeekRangeLabel(week), t.Title, t.Date)
			return nil
		},
	}
}
