package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sandeepkv93/neuraplan/internal/views"
	"github.com/spf13/cobra"
)

func newNotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage markdown notes",
	}

	cmd.AddCommand(
		newNotesListCmd(app),
		newNotesShowCmd(app),
		newNotesAddCmd(app),
		newNotesEditCmd(app),
		newNotesRemoveCmd(app),
	)

	return cmd
}

func newNotesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes := app.Planner.Notes()
			out := cmd.OutOrStdout()
			if len(notes) == 0 {
				fmt.Fprintln(out, "No notes found.")
				return nil
			}
			for _, n := range notes {
				fmt.Fprintf(out, "%-8s  %s  %s\n", shortID(n.ID), n.UpdatedAt.Local().Format("Jan 2 15:04"), n.DisplayTitle())
			}
			return nil
		},
	}
}

func newNotesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Render a note as markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Planner.FindNote(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderNote(n))
			return nil
		},
	}
}

// noteContent reads --content, or --file where "-" means stdin.
func noteContent(cmd *cobra.Command, content, file string) (string, error) {
	if file == "" {
		return content, nil
	}
	if content != "" {
		return "", errors.New("use either --content or --file, not both")
	}
	var r io.Reader = cmd.InOrStdin()
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return "", fmt.Errorf("open note file: %w", err)
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read note content: %w", err)
	}
	return string(b), nil
}

func newNotesAddCmd(app *App) *cobra.Command {
	var content, file string

	cmd := &cobra.Command{
		Use:   "add TITLE...",
		Short: "Add a note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := noteContent(cmd, content, file)
			if err != nil {
				return err
			}
			n, err := app.Planner.AddNote(cmd.Context(), strings.Join(args, " "), body)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added note %s %q\n", shortID(n.ID), n.DisplayTitle())
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Markdown body")
	cmd.Flags().StringVar(&file, "file", "", "Read the body from a file, or - for stdin")

	return cmd
}

func newNotesEditCmd(app *App) *cobra.Command {
	var title, content, file string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a note's title or body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Planner.FindNote(args[0])
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("title") && !flags.Changed("content") && !flags.Changed("file") {
				return errors.New("nothing to edit: pass --title, --content or --file")
			}
			if flags.Changed("title") {
				n.Title = title
			}
			if flags.Changed("content") || flags.Changed("file") {
				if n.Content, err = noteContent(cmd, content, file); err != nil {
					return err
				}
			}
			if n, err = app.Planner.UpdateNote(cmd.Context(), n.ID, n.Title, n.Content); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated note %s %q\n", shortID(n.ID), n.DisplayTitle())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&content, "content", "", "New markdown body")
	cmd.Flags().StringVar(&file, "file", "", "Read the new body from a file, or - for stdin")

	return cmd
}

func newNotesRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Planner.FindNote(args[0])
			if err != nil {
				return err
			}
			if err := app.Planner.DeleteNote(cmd.Context(), n.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted note %s %q\n", shortID(n.ID), n.DisplayTitle())
			return nil
		},
	}
}
