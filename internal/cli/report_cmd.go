package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"recordbook/internal/core"
	applog "recordbook/internal/log"
)

func newReportCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "report [YYYY-MM]",
		Short: "Print the monthly activity report (current month by default)",
		Args:  maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ym := app.today().YearMonth()
			if len(args) == 1 {
				var err error
				if ym, err = core.ParseYearMonth(args[0]); err != nil {
					return err
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), app.Reports.MonthlyReport(ym))
			if !save {
				return nil
			}
			path, err := app.Reports.SaveMonthlySummary(app.ReportDir, ym)
			if err != nil {
				return err
			}
			app.Logger.Info("Report saved", applog.FieldPath, path, applog.FieldMonth, ym.String())
			fmt.Fprintf(cmd.OutOrStdout(), "\nSaved to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "also write report_YYYY_MM.txt to the report directory")
	return cmd
}
