package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-11-03")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, 11, 3), d)
	assert.Equal(t, "2025-11-03", d.String())

	for _, bad := range []string{"", "2025-13-01", "03/11/2025", "abc", " 2025-01-01", "2025-01-01 "} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDateStringEmpty(t *testing.T) {
	assert.Equal(t, "", Date{}.String())
	assert.True(t, Date{}.IsEmpty())
}

func TestDaysUntil(t *testing.T) {
	today := NewDate(2025, 11, 3)
	assert.Equal(t, 0, today.DaysUntil(today))
	assert.Equal(t, 28, today.DaysUntil(NewDate(2025, 12, 1)))
	assert.Equal(t, -3, today.DaysUntil(NewDate(2025, 10, 31)))
	assert.Equal(t, 365, NewDate(2025, 1, 1).DaysUntil(NewDate(2026, 1, 1)))
}

func TestDateOf(t *testing.T) {
	now := time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, NewDate(2025, 3, 9), DateOf(now))
}

func TestYearMonth(t *testing.T) {
	ym, err := ParseYearMonth("2025-12")
	require.NoError(t, err)
	assert.Equal(t, "2025-12", ym.String())
	assert.Equal(t, YearMonth{Year: 2026, Month: time.January}, ym.Next())

	assert.True(t, ym.Contains(NewDate(2025, 12, 1)))
	assert.True(t, ym.Contains(NewDate(2025, 12, 31)))
	assert.False(t, ym.Contains(NewDate(2026, 1, 1)))
	assert.False(t, ym.Contains(NewDate(2025, 11, 30)))
	assert.False(t, ym.Contains(Date{}))

	_, err = ParseYearMonth("2025/12")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestRemainingDays(t *testing.T) {
	s := Schedule{Name: "dentist", Date: NewDate(2025, 11, 10)}
	assert.Equal(t, 7, s.RemainingDays(NewDate(2025, 11, 3)))
	assert.Equal(t, -1, s.RemainingDays(NewDate(2025, 11, 11)))
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		Work:         Work{Title: "Coffee", Status: StatusRegistered},
		Price:        0,
		Category:     "Food",
		PurchaseDate: NewDate(2025, 1, 1),
	}
	require.NoError(t, good.Validate())

	cases := []struct {
		name   string
		mutate func(*Expense)
		want   error
	}{
		{"blank title", func(e *Expense) { e.Title = "  " }, ErrEmptyTitle},
		{"blank category", func(e *Expense) { e.Category = "" }, ErrEmptyCategory},
		{"negative price", func(e *Expense) { e.Price = -1 }, ErrNegativePrice},
		{"missing date", func(e *Expense) { e.PurchaseDate = Date{} }, ErrMissingDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := good
			tc.mutate(&e)
			err := e.Validate()
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestProjectValidate(t *testing.T) {
	start := NewDate(2025, 5, 1)
	p := Project{Work: Work{Title: "Site"}, Owner: "kim", StartDate: start, DueDate: start}
	assert.NoError(t, p.Validate(), "due == start is allowed")

	p.DueDate = start.AddDays(-1)
	assert.ErrorIs(t, p.Validate(), ErrDueBeforeStart)

	p.DueDate = Date{}
	assert.ErrorIs(t, p.Validate(), ErrMissingPeriod)

	p = Project{Work: Work{Title: "Site"}, StartDate: start, DueDate: start}
	assert.ErrorIs(t, p.Validate(), ErrEmptyOwner)
}

func TestStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("write", "/tmp/x.txt", cause)

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrValidation)

	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "/tmp/x.txt", se.Path)
	assert.Contains(t, err.Error(), "/tmp/x.txt")
}

func TestIndexNotFoundIsOneBased(t *testing.T) {
	err := IndexNotFound("expense", 4)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "position 5")
}
