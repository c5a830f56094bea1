package core

import (
	"fmt"
	"strings"
	"time"
)

// Status labels. They are persisted verbatim, so changing them breaks existing files.
const (
	StatusRegistered = "등록"
	StatusInProgress = "진행중"
	StatusDone       = "완료"
	StatusOnHold     = "보류"
)

const (
	dateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

type (
	// Date is a calendar day. The zero value means the date is absent.
	Date struct {
		time.Time
	}

	// YearMonth identifies a calendar month.
	YearMonth struct {
		Year  int
		Month time.Month
	}

	// Work is the titled-with-status shape shared by expenses and projects.
	Work struct {
		Title  string
		Status string
	}

	Expense struct {
		Work
		Price        int
		Category     string
		PurchaseDate Date
	}

	Project struct {
		Work
		Owner     string
		StartDate Date
		DueDate   Date
	}

	// Schedule is keyed by Name inside the store.
	Schedule struct {
		Name string
		Date Date
		Memo string
	}
)

// ProjectStatuses returns the status choices offered to users. The core
// itself accepts any non-blank status.
func ProjectStatuses() []string {
	return []string{StatusInProgress, StatusDone, StatusOnHold}
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, int(m), d)
}

// ParseDate parses an ISO YYYY-MM-DD string. Surrounding whitespace is an
// error; callers reading user input trim first.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// IsEmpty returns true if the date is absent
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

// String renders the ISO form, or "" for an absent date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }
func (d Date) After(o Date) bool  { return d.Time.After(o.Time) }
func (d Date) Equal(o Date) bool  { return d.Time.Equal(o.Time) }

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

// DaysUntil returns the whole number of days from d to o, negative when o is earlier.
func (d Date) DaysUntil(o Date) int {
	return int((o.Unix() - d.Unix()) / secondsPerDay)
}

func (d Date) YearMonth() YearMonth {
	return YearMonth{Year: d.Year(), Month: d.Month()}
}

// ParseYearMonth parses YYYY-MM.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: invalid month %q, expected YYYY-MM", ErrValidation, s)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// FirstDay returns the first day of the month.
func (ym YearMonth) FirstDay() Date {
	return NewDate(ym.Year, int(ym.Month), 1)
}

// Next returns the following month.
func (ym YearMonth) Next() YearMonth {
	t := ym.FirstDay().AddDate(0, 1, 0)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Contains reports whether d falls in [first day, first day of next month).
// Absent dates are never contained.
func (ym YearMonth) Contains(d Date) bool {
	if d.IsEmpty() {
		return false
	}
	start := ym.FirstDay()
	end := ym.Next().FirstDay()
	return !d.Before(start) && d.Before(end)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// RemainingDays is the number of days from today until the schedule date.
// Past schedules yield a negative count.
func (s Schedule) RemainingDays(today Date) int {
	return today.DaysUntil(s.Date)
}
