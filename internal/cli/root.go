// Package cli exposes the planner as a cobra command tree. Every command
// works on the already opened and reconciled Planner held by App.
package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/sandeepkv93/neuraplan/internal/config"
	"github.com/sandeepkv93/neuraplan/internal/logging"
	"github.com/sandeepkv93/neuraplan/internal/planner"
	"github.com/spf13/cobra"
)

// App holds what the commands need. Optional hooks fall back to the
// interactive implementations when nil.
type App struct {
	Planner    *planner.Planner
	Config     config.Config
	ConfigPath string
	Logger     *slog.Logger
	Now        func() time.Time

	IsInteractive func() bool
	PromptTask    func(*planner.TaskInput) error
	RunTUI        func(ctx context.Context, app *App) error
}

// NewRootCmd creates the top-level "neuraplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "neuraplan",
		Short:         "Six-week study sprint planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return app.runTUI(cmd.Context())
			}
			return runOverview(cmd, app)
		},
	}

	root.AddCommand(
		newOverviewCmd(app),
		newWeekCmd(app),
		newDayCmd(app),
		newTimelineCmd(app),
		newDomainsCmd(app),
		newAddCmd(app),
		newDoneCmd(app),
		newMoveCmd(app),
		newEditCmd(app),
		newRemoveCmd(app),
		newGotoCmd(app),
		newNotesCmd(app),
		newExportCmd(app),
		newRegenerateCmd(app),
		newTUICmd(app),
	)

	return root
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return logging.Discard()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runTUI(ctx context.Context) error {
	if a.RunTUI != nil {
		return a.RunTUI(ctx, a)
	}
	return runProgram(ctx, a)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
