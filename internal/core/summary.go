package core

// UpcomingEntry is a schedule paired with its distance from today.
type UpcomingEntry struct {
	Schedule      Schedule
	RemainingDays int
}

// MonthlySummary is the derived activity report for one month.
type MonthlySummary struct {
	Month        YearMonth
	TotalExpense int
	InProgress   int
	Done         int
	Upcoming     []UpcomingEntry
}
