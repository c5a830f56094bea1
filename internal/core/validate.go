package core

import "strings"

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (e Expense) Validate() error {
	if blank(e.Title) {
		return ErrEmptyTitle
	}
	if blank(e.Category) {
		return ErrEmptyCategory
	}
	if e.Price < 0 {
		return ErrNegativePrice
	}
	if e.PurchaseDate.IsEmpty() {
		return ErrMissingDate
	}
	return nil
}

func (p Project) Validate() error {
	if blank(p.Title) {
		return ErrEmptyTitle
	}
	if blank(p.Owner) {
		return ErrEmptyOwner
	}
	if p.StartDate.IsEmpty() || p.DueDate.IsEmpty() {
		return ErrMissingPeriod
	}
	if p.DueDate.Before(p.StartDate) {
		return ErrDueBeforeStart
	}
	return nil
}

// Validate checks the schedule's own fields. Key uniqueness is enforced by the
// schedule service, not here.
func (s Schedule) Validate() error {
	if blank(s.Name) {
		return ErrEmptyName
	}
	if s.Date.IsEmpty() {
		return ErrMissingDate
	}
	return nil
}

// ValidateStatus rejects blank status values. Any other value is accepted.
func ValidateStatus(status string) error {
	if blank(status) {
		return ErrEmptyStatus
	}
	return nil
}
