package services

import (
	"slices"
	"time"

	"recordbook/internal/core"
	applog "recordbook/internal/log"
	"recordbook/internal/store"
)

type ScheduleService struct {
	store  *store.Store
	logger *applog.Logger
}

func NewScheduleService(s *store.Store, opts ...Option) *ScheduleService {
	o := buildOptions(opts)
	return &ScheduleService{store: s, logger: o.logger}
}

// AddSchedule stores a new schedule keyed by name. An existing name is
// rejected rather than overwritten.
func (s *ScheduleService) AddSchedule(name string, date core.Date, memo string) (*core.Schedule, error) {
	sc := &core.Schedule{Name: name, Date: date, Memo: memo}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if s.store.HasSchedule(name) {
		return nil, core.ErrDuplicateName
	}
	s.store.PutSchedule(name, sc)
	s.logger.Debug("Schedule added", "name", name, "date", date.String())
	return sc, nil
}

func (s *ScheduleService) RemoveSchedule(name string) error {
	return s.store.RemoveSchedule(name)
}

// RemoveScheduleAt removes by zero-based position in insertion order.
func (s *ScheduleService) RemoveScheduleAt(index int) error {
	return s.store.RemoveScheduleAt(index)
}

// All returns schedules in insertion order.
func (s *ScheduleService) All() []*core.Schedule {
	return s.store.Schedules()
}

// ByMonth returns the schedules dated in the given month, earliest first.
func (s *ScheduleService) ByMonth(year int, month time.Month) []*core.Schedule {
	ym := core.YearMonth{Year: year, Month: month}
	return sortByDate(filter(s.store.Schedules(), func(sc *core.Schedule) bool {
		return ym.Contains(sc.Date)
	}))
}

// Upcoming returns at most limit schedules in date order. Past dates are
// included.
func (s *ScheduleService) Upcoming(limit int) []*core.Schedule {
	out := sortByDate(s.store.Schedules())
	return out[:min(max(limit, 0), len(out))]
}

func sortByDate(in []*core.Schedule) []*core.Schedule {
	slices.SortStableFunc(in, func(a, b *core.Schedule) int {
		return a.Date.Compare(b.Date.Time)
	})
	return in
}
