package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"recordbook/internal/core"
	applog "recordbook/internal/log"
	"recordbook/internal/store"
)

// upcomingInReport is how many schedules the monthly summary lists.
const upcomingInReport = 5

// ReportService aggregates across all three collections. It holds no state of
// its own.
type ReportService struct {
	store  *store.Store
	now    func() time.Time
	logger *applog.Logger
}

func NewReportService(s *store.Store, opts ...Option) *ReportService {
	o := buildOptions(opts)
	return &ReportService{store: s, now: o.now, logger: o.logger}
}

// BuildMonthlySummary computes the month's spend, the project status counts and
// the earliest schedules. Today only feeds the remaining-days figures.
func (s *ReportService) BuildMonthlySummary(ym core.YearMonth) core.MonthlySummary {
	sum := core.MonthlySummary{Month: ym}

	for _, e := range s.store.Expenses() {
		if ym.Contains(e.PurchaseDate) {
			sum.TotalExpense += e.Price
		}
	}

	// Only the two exact labels count; any other status is left out.
	for _, p := range s.store.Projects() {
		switch p.Status {
		case core.StatusInProgress:
			sum.InProgress++
		case core.StatusDone:
			sum.Done++
		}
	}

	today := core.DateOf(s.now())
	upcoming := sortByDate(s.store.Schedules())
	for _, sc := range upcoming[:min(upcomingInReport, len(upcoming))] {
		sum.Upcoming = append(sum.Upcoming, core.UpcomingEntry{
			Schedule:      *sc,
			RemainingDays: sc.RemainingDays(today),
		})
	}
	return sum
}

// FormatMonthlySummary renders the summary as the multi-section text block.
// The schedule section is omitted when there are no schedules.
func FormatMonthlySummary(sum core.MonthlySummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 월간 활동 리포트 (%s)\n\n", sum.Month)
	fmt.Fprintf(&sb, "💰 총 소비액: %d원\n", sum.TotalExpense)

	sb.WriteString("\n📂 프로젝트 현황:\n")
	fmt.Fprintf(&sb, " - %s: %d개\n", core.StatusInProgress, sum.InProgress)
	fmt.Fprintf(&sb, " - %s: %d개\n", core.StatusDone, sum.Done)

	if len(sum.Upcoming) > 0 {
		sb.WriteString("\n🗓️ 다가오는 일정:\n")
		for _, u := range sum.Upcoming {
			fmt.Fprintf(&sb, " - %s: %s (%d일 남음)\n", u.Schedule.Name, u.Schedule.Date, u.RemainingDays)
		}
	}
	return sb.String()
}

// MonthlyReport builds and formats the summary for ym.
func (s *ReportService) MonthlyReport(ym core.YearMonth) string {
	return FormatMonthlySummary(s.BuildMonthlySummary(ym))
}

// SaveMonthlySummary writes the report for ym to dir/report_YYYY_MM.txt and
// returns the file path.
func (s *ReportService) SaveMonthlySummary(dir string, ym core.YearMonth) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("report_%04d_%02d.txt", ym.Year, int(ym.Month)))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", core.NewStorageError("create directory", dir, err)
	}
	if err := os.WriteFile(path, []byte(s.MonthlyReport(ym)), 0o644); err != nil {
		return "", core.NewStorageError("write report", path, err)
	}
	s.logger.Debug("Report written", applog.FieldPath, path, applog.FieldMonth, ym.String())
	return path, nil
}
