package services

import (
	"cmp"
	"slices"

	"recordbook/internal/core"
	applog "recordbook/internal/log"
	"recordbook/internal/store"
)

// ExpenseService validates and applies expense operations against the store.
type ExpenseService struct {
	store  *store.Store
	logger *applog.Logger
}

func NewExpenseService(s *store.Store, opts ...Option) *ExpenseService {
	o := buildOptions(opts)
	return &ExpenseService{store: s, logger: o.logger}
}

// AddExpense validates the input and appends a new expense with the
// registered status. The store is untouched on validation failure.
func (s *ExpenseService) AddExpense(title, category string, price int, date core.Date) (*core.Expense, error) {
	e := &core.Expense{
		Work:         core.Work{Title: title, Status: core.StatusRegistered},
		Price:        price,
		Category:     category,
		PurchaseDate: date,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	s.store.AddExpense(e)
	s.logger.Debug("Expense added", "title", title, "price", price, "category", category)
	return e, nil
}

// RemoveExpense removes the expense at the zero-based position in the current order.
func (s *ExpenseService) RemoveExpense(index int) error {
	if err := s.store.RemoveExpense(index); err != nil {
		return err
	}
	s.logger.Debug("Expense removed", "position", index+1)
	return nil
}

func (s *ExpenseService) List() []*core.Expense {
	return s.store.Expenses()
}

// SortedByDate returns expenses by ascending purchase date. Ties keep their
// insertion order.
func (s *ExpenseService) SortedByDate() []*core.Expense {
	out := s.store.Expenses()
	slices.SortStableFunc(out, func(a, b *core.Expense) int {
		return a.PurchaseDate.Compare(b.PurchaseDate.Time)
	})
	return out
}

// SortedByPriceDesc returns expenses from most to least expensive. Ties keep
// their insertion order.
func (s *ExpenseService) SortedByPriceDesc() []*core.Expense {
	out := s.store.Expenses()
	slices.SortStableFunc(out, func(a, b *core.Expense) int {
		return cmp.Compare(b.Price, a.Price)
	})
	return out
}

func (s *ExpenseService) SearchByTitle(keyword string) []*core.Expense {
	match := matcher(keyword)
	return filter(s.store.Expenses(), func(e *core.Expense) bool { return match(e.Title) })
}

func (s *ExpenseService) SearchByCategory(keyword string) []*core.Expense {
	match := matcher(keyword)
	return filter(s.store.Expenses(), func(e *core.Expense) bool { return match(e.Category) })
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
