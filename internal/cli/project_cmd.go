package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"recordbook/internal/amqp"
	"recordbook/internal/core"
	"recordbook/internal/storage"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectStatusCmd(app),
		newProjectRemoveCmd(app),
		newProjectDueCmd(app),
	)
	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var title, owner, start, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Start tracking a project",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseOptionalDate(start)
			if err != nil {
				return err
			}
			dueDate, err := parseOptionalDate(due)
			if err != nil {
				return err
			}
			p, err := app.Projects.AddProject(title, owner, startDate, dueDate)
			if err != nil {
				return err
			}
			if err := app.commit(cmd.Context(), storage.CollectionProjects, amqp.ActionAdd); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added project %q (%s ~ %s)\n", p.Title, p.StartDate, p.DueDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "project title (required)")
	cmd.Flags().StringVar(&owner, "owner", "", "person in charge (required)")
	cmd.Flags().StringVar(&start, "start", "", "start date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&due, "due", "", "due date YYYY-MM-DD, not before start (required)")
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if search != "" {
				printProjects(cmd.OutOrStdout(), app.Projects.Search(search), false)
				return nil
			}
			printProjects(cmd.OutOrStdout(), app.Projects.List(), true)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by title, owner or status keyword")
	return cmd
}

func newProjectStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <no> <status>",
		Short: "Change a project's status",
		Long: "Change a project's status. Usual values are " +
			strings.Join(core.ProjectStatuses(), ", ") + "; any other text is accepted.",
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.ChangeStatus(idx, args[1]); err != nil {
				return err
			}
			if err := app.commit(cmd.Context(), storage.CollectionProjects, amqp.ActionUpdate); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project #%d is now %s\n", idx+1, args[1])
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <no>",
		Short: "Remove a project by its number in 'project list'",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.RemoveProject(idx); err != nil {
				return err
			}
			if err := app.commit(cmd.Context(), storage.CollectionProjects, amqp.ActionRemove); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed project #%d\n", idx+1)
			return nil
		},
	}
}

func newProjectDueCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "due",
		Short: "Show projects due within the next N days",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			printProjects(cmd.OutOrStdout(), app.Projects.DeadlineClose(days), false)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 3, "days ahead, inclusive (0 = today only)")
	return cmd
}

func printProjects(out io.Writer, projects []*core.Project, numbered bool) {
	if len(projects) == 0 {
		fmt.Fprintln(out, "No projects.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NO\tTITLE\tOWNER\tSTART\tDUE\tSTATUS")
	for i, p := range projects {
		no := "-"
		if numbered {
			no = fmt.Sprint(i + 1)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", no, p.Title, p.Owner, p.StartDate, p.DueDate, p.Status)
	}
	w.Flush()
}
