package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"recordbook/internal/amqp"
	"recordbook/internal/core"
	"recordbook/internal/storage"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"sched"},
		Short:   "Manage named schedules",
	}

	cmd.AddCommand(
		newScheduleAddCmd(app),
		newScheduleListCmd(app),
		newScheduleRemoveCmd(app),
		newScheduleMonthCmd(app),
		newScheduleUpcomingCmd(app),
	)
	return cmd
}

func newScheduleAddCmd(app *App) *cobra.Command {
	var date, memo string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a schedule; names are unique",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseOptionalDate(date)
			if err != nil {
				return err
			}
			sc, err := app.Schedules.AddSchedule(args[0], d, memo)
			if err != nil {
				return err
			}
			if err := app.commit(cmd.Context(), storage.CollectionSchedules, amqp.ActionAdd); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added schedule %q on %s\n", sc.Name, sc.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&memo, "memo", "", "free-form note")
	return cmd
}

func newScheduleListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List schedules in the order they were added",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			printSchedules(cmd.OutOrStdout(), app.Schedules.All(), app.today(), true)
			return nil
		},
	}
}

func newScheduleRemoveCmd(app *App) *cobra.Command {
	var at int

	cmd := &cobra.Command{
		Use:   "rm [name]",
		Short: "Remove a schedule by name, or by list number with --at",
		Args:  maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch {
			case len(args) == 1 && at == 0:
				err = app.Schedules.RemoveSchedule(args[0])
			case len(args) == 0 && at != 0:
				err = app.Schedules.RemoveScheduleAt(at - 1)
			default:
				return fmt.Errorf("%w: give either a name or --at", core.ErrValidation)
			}
			if err != nil {
				return err
			}
			if err := app.commit(cmd.Context(), storage.CollectionSchedules, amqp.ActionRemove); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed schedule")
			return nil
		},
	}

	cmd.Flags().IntVar(&at, "at", 0, "list number from 'schedule list'")
	return cmd
}

func newScheduleMonthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "month <YYYY-MM>",
		Short: "Show schedules in a month, earliest first",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ym, err := core.ParseYearMonth(args[0])
			if err != nil {
				return err
			}
			printSchedules(cmd.OutOrStdout(), app.Schedules.ByMonth(ym.Year, ym.Month), app.today(), false)
			return nil
		},
	}
}

func newScheduleUpcomingCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Show the earliest schedules",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			printSchedules(cmd.OutOrStdout(), app.Schedules.Upcoming(limit), app.today(), false)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "maximum number of schedules")
	return cmd
}

func printSchedules(out io.Writer, schedules []*core.Schedule, today core.Date, numbered bool) {
	if len(schedules) == 0 {
		fmt.Fprintln(out, "No schedules.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NO\tNAME\tDATE\tD-DAY\tMEMO")
	for i, sc := range schedules {
		no := "-"
		if numbered {
			no = fmt.Sprint(i + 1)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", no, sc.Name, sc.Date, sc.RemainingDays(today), sc.Memo)
	}
	w.Flush()
}
