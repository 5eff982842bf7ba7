package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/neuraplan/internal/planner"
	"github.com/sandeepkv93/neuraplan/internal/update"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive planner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runTUI(cmd.Context())
		},
	}
}

// runProgram runs the bubbletea model. Planner changes reach it through a
// buffered channel; the subscriber never blocks a mutation.
func runProgram(ctx context.Context, app *App) error {
	events := make(chan planner.Event, 16)
	unsubscribe := app.Planner.Subscribe(func(ev planner.Event) {
		select {
		case events <- ev:
		default:
		}
	})
	defer unsubscribe()

	m := update.NewModel(app.Planner,
		update.WithEvents(events),
		update.WithOwner(app.Config.OwnerName),
		update.WithContext(ctx),
		update.WithClock(app.now),
	)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
