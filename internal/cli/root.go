package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"recordbook/internal/core"
)

// NewRootCmd creates the top-level "recordbook" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "recordbook",
		Short:         "Personal record book for expenses, projects and schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", core.ErrValidation, err)
	})

	root.AddCommand(
		newExpenseCmd(app),
		newProjectCmd(app),
		newScheduleCmd(app),
		newReportCmd(app),
	)
	return root
}

// exactArgs is cobra.ExactArgs with the failure classified as a validation error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", core.ErrValidation, err)
		}
		return nil
	}
}

func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", core.ErrValidation, err)
		}
		return nil
	}
}
