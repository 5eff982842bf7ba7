package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/model"
	"github.com/sandeepkv93/neuraplan/internal/schedule"
	"github.com/sandeepkv93/neuraplan/internal/store"
	"github.com/sandeepkv93/neuraplan/internal/views"
	"github.com/spf13/cobra"
)

func newOverviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show today's and overall progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverview(cmd, app)
		},
	}
}

func runOverview(cmd *cobra.Command, app *App) error {
	p := app.Planner
	week := p.CurrentWeek()
	fmt.Fprintln(cmd.OutOrStdout(), views.RenderOverview(views.OverviewData{
		Owner:      app.Config.OwnerName,
		Today:      calendar.Today(app.now()),
		Week:       week,
		Weeks:      schedule.Weeks,
		RangeLabel: p.WeekRangeLabel(week),
		Summary:    p.Summary(app.now()),
		Progress:   p.Progress(),
	}))
	return nil
}

func newWeekCmd(app *App) *cobra.Command {
	var list bool
	var width int

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("week [1-%d|next|prev]", schedule.Weeks),
		Short: "Show the current week, or switch to another one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := app.Planner
			week := p.CurrentWeek()
			if len(args) == 1 {
				var err error
				switch strings.ToLower(args[0]) {
				case "next":
					week, err = p.ShiftWeek(cmd.Context(), 1)
				case "prev":
					week, err = p.ShiftWeek(cmd.Context(), -1)
				default:
					n, convErr := strconv.Atoi(args[0])
					if convErr != nil || n < 1 || n > schedule.Weeks {
						return fmt.Errorf("week must be 1-%d, next or prev, got %q", schedule.Weeks, args[0])
					}
					week, err = p.SetWeek(cmd.Context(), n-1)
				}
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			dates := p.WeekDates(week)
			if list {
				var tasks []model.Task
				for _, d := range dates {
					tasks = append(tasks, store.Chronological(p.TasksOn(d.Key()))...)
				}
				fmt.Fprintf(out, "Week %d of %d · %s\n\n%s\n", week+1, schedule.Weeks, p.WeekRangeLabel(week), views.RenderTimeline(tasks, ""))
				return nil
			}

			cols := make([]views.DayColumn, 0, len(dates))
			for _, d := range dates {
				cols = append(cols, views.DayColumn{Day: d, Tasks: store.Chronological(p.TasksOn(d.Key()))})
			}
			fmt.Fprintln(out, views.RenderWeekGrid(views.WeekGridData{
				Week:        week,
				Weeks:       schedule.Weeks,
				RangeLabel:  p.WeekRangeLabel(week),
				Columns:     cols,
				SelectedDay: -1,
				TodayKey:    calendar.Today(app.now()).Key(),
				ColumnWidth: width,
			}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "Print the week as a list instead of a grid")
	cmd.Flags().IntVar(&width, "width", 16, "Grid column width")

	return cmd
}

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day [today|tomorrow|yesterday|YYYY-MM-DD]",
		Short: "Show one day's tasks grouped by domain",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := "today"
			if len(args) == 1 {
				raw = args[0]
			}
			day, err := parseDayArg(app, raw)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderDayDetail(views.DayDetailData{
				Day:   day,
				Tasks: store.Chronological(app.Planner.TasksOn(day.Key())),
			}))
			return nil
		},
	}
}

// parseDayArg accepts a date key or a day relative to today.
func parseDayArg(app *App, raw string) (calendar.Day, error) {
	return calendar.ResolveDay(raw, calendar.Today(app.now()))
}

func newTimelineCmd(app *App) *cobra.Command {
	var domain string
	var pending bool

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "List every task in chronological order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := app.Planner.Timeline()
			if domain != "" {
				id, err := model.ParseDomainID(domain)
				if err != nil {
					return err
				}
				tasks = store.Chronological(app.Planner.TasksIn(id))
			}
			if pending {
				kept := tasks[:0]
				for _, t := range tasks {
					if !t.Done {
						kept = append(kept, t)
					}
				}
				tasks = kept
			}
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderTimeline(tasks, ""))
			return nil
		},
	}

	cmd.Flags().StringVar(&domain, "domain", "", "Only show tasks in this domain")
	cmd.Flags().BoolVar(&pending, "pending", false, "Hide completed tasks")

	return cmd
}

func newDomainsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "Show completion per domain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderDomains(app.Planner.Progress(), 20))
			return nil
		},
	}
}
