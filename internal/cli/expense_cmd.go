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

func newExpenseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Manage expenses",
	}

	cmd.AddCommand(
		newExpenseAddCmd(app),
		newExpenseListCmd(app),
		newExpenseRemoveCmd(app),
	)
	return cmd
}

func newExpenseAddCmd(app *App) *cobra.Command {
	var title, category, price, date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parsePrice(price)
			if err != nil {
				return err
			}
			d, err := parseOptionalDate(date)
			if err != nil {
				return err
			}
			e, err := app.Expenses.AddExpense(title, category, amount, d)
			if err != nil {
				return err
			}
			if err := app.commit(cmd.Context(), storage.CollectionExpenses, amqp.ActionAdd); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added expense %q (%s원, %s)\n", e.Title, formatPrice(e.Price), e.PurchaseDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "what was bought (required)")
	cmd.Flags().StringVar(&category, "category", "", "category (required)")
	cmd.Flags().StringVar(&price, "price", "", "amount, e.g. 4500 or 4,500 (required)")
	cmd.Flags().StringVar(&date, "date", "", "purchase date YYYY-MM-DD (required)")
	return cmd
}

func newExpenseListCmd(app *App) *cobra.Command {
	var sortBy, title, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var expenses []*core.Expense
			switch {
			case title != "":
				expenses = app.Expenses.SearchByTitle(title)
			case category != "":
				expenses = app.Expenses.SearchByCategory(category)
			case sortBy == "date":
				expenses = app.Expenses.SortedByDate()
			case sortBy == "price":
				expenses = app.Expenses.SortedByPriceDesc()
			case sortBy == "":
				expenses = app.Expenses.List()
			default:
				return fmt.Errorf("%w: unknown sort %q, use date or price", core.ErrValidation, sortBy)
			}
			printExpenses(cmd.OutOrStdout(), expenses, sortBy == "" && title == "" && category == "")
			return nil
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "", "sort by date or price (descending)")
	cmd.Flags().StringVar(&title, "title", "", "filter by title keyword")
	cmd.Flags().StringVar(&category, "category", "", "filter by category keyword")
	return cmd
}

func newExpenseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <no>",
		Short: "Remove an expense by its number in 'expense list'",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			if err := app.Expenses.RemoveExpense(idx); err != nil {
				return err
			}
			if err := app.commit(cmd.Context(), storage.CollectionExpenses, amqp.ActionRemove); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed expense #%d\n", idx+1)
			return nil
		},
	}
}

// printExpenses numbers rows only for the unsorted, unfiltered list: those
// numbers are the positions rm accepts.
func printExpenses(out io.Writer, expenses []*core.Expense, numbered bool) {
	if len(expenses) == 0 {
		fmt.Fprintln(out, "No expenses.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NO\tDATE\tTITLE\tCATEGORY\tPRICE\tSTATUS")
	for i, e := range expenses {
		no := "-"
		if numbered {
			no = fmt.Sprint(i + 1)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", no, e.PurchaseDate, e.Title, e.Category, formatPrice(e.Price), e.Status)
	}
	w.Flush()
}
