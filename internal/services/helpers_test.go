package services

import (
	"testing"
	"time"

	"recordbook/internal/core"
	"recordbook/internal/store"
)

var fixedNow = time.Date(2025, 11, 3, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func date(t *testing.T, s string) core.Date {
	t.Helper()
	d, err := core.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

type fixture struct {
	store     *store.Store
	expenses  *ExpenseService
	projects  *ProjectService
	schedules *ScheduleService
	reports   *ReportService
}

func newFixture() fixture {
	s := store.New()
	return fixture{
		store:     s,
		expenses:  NewExpenseService(s),
		projects:  NewProjectService(s, WithClock(fixedClock)),
		schedules: NewScheduleService(s),
		reports:   NewReportService(s, WithClock(fixedClock)),
	}
}

func expenseTitles(in []*core.Expense) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		out = append(out, e.Title)
	}
	return out
}

func projectTitles(in []*core.Project) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		out = append(out, p.Title)
	}
	return out
}

func scheduleNames(in []*core.Schedule) []string {
	out := make([]string, 0, len(in))
	for _, sc := range in {
		out = append(out, sc.Name)
	}
	return out
}
