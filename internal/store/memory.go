// Package store holds the in-memory collections. It is the only code that
// mutates them directly; services and persistence go through its methods.
package store

import (
	"fmt"
	"sync"

	"recordbook/internal/core"
)

type Store struct {
	mu        sync.Mutex
	expenses  []*core.Expense
	projects  []*core.Project
	schedules map[string]*core.Schedule
	keys      []string // schedule insertion order
}

func New() *Store {
	return &Store{schedules: make(map[string]*core.Schedule)}
}

// ------------------- expenses -------------------

// Expenses returns the current expenses in insertion order. The slice is a
// copy; the elements are the live records.
func (s *Store) Expenses() []*core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*core.Expense(nil), s.expenses...)
}

func (s *Store) ExpenseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.expenses)
}

func (s *Store) AddExpense(e *core.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, e)
}

func (s *Store) Expense(idx int) (*core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx < 0 || idx >= len(s.expenses) {
		return nil, core.IndexNotFound("expense", idx)
	}
	return s.expenses[idx], nil
}

func (s *Store) RemoveExpense(idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx < 0 || idx >= len(s.expenses) {
		return core.IndexNotFound("expense", idx)
	}
	s.expenses = removeAt(s.expenses, idx)
	return nil
}

func (s *Store) ClearExpenses() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = nil
}

// ------------------- projects -------------------

func (s *Store) Projects() []*core.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*core.Project(nil), s.projects...)
}

func (s *Store) ProjectCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.projects)
}

func (s *Store) AddProject(p *core.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, p)
}

func (s *Store) Project(idx int) (*core.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx < 0 || idx >= len(s.projects) {
		return nil, core.IndexNotFound("project", idx)
	}
	return s.projects[idx], nil
}

func (s *Store) RemoveProject(idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx < 0 || idx >= len(s.projects) {
		return core.IndexNotFound("project", idx)
	}
	s.projects = removeAt(s.projects, idx)
	return nil
}

func (s *Store) ClearProjects() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = nil
}

// ------------------- schedules -------------------

// Schedules returns the schedules in key insertion order.
func (s *Store) Schedules() []*core.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*core.Schedule, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.schedules[k])
	}
	return out
}

func (s *Store) ScheduleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

func (s *Store) HasSchedule(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.schedules[key]
	return ok
}

func (s *Store) Schedule(key string) (*core.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.schedules[key]
	if !ok {
		return nil, fmt.Errorf("%w: no schedule named %q", core.ErrNotFound, key)
	}
	return sc, nil
}

// PutSchedule stores sc under key. An existing key is overwritten in place and
// keeps its position; uniqueness is the caller's concern.
func (s *Store) PutSchedule(key string, sc *core.Schedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.schedules[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.schedules[key] = sc
}

func (s *Store) RemoveSchedule(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.schedules[key]; !ok {
		return fmt.Errorf("%w: no schedule named %q", core.ErrNotFound, key)
	}
	s.deleteKey(key)
	return nil
}

// ScheduleAt resolves idx against the current insertion order.
func (s *Store) ScheduleAt(idx int) (*core.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx < 0 || idx >= len(s.keys) {
		return nil, core.IndexNotFound("schedule", idx)
	}
	return s.schedules[s.keys[idx]], nil
}

func (s *Store) RemoveScheduleAt(idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx < 0 || idx >= len(s.keys) {
		return core.IndexNotFound("schedule", idx)
	}
	s.deleteKey(s.keys[idx])
	return nil
}

func (s *Store) ClearSchedules() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules = make(map[string]*core.Schedule)
	s.keys = nil
}

// deleteKey must be called with mu held.
func (s *Store) deleteKey(key string) {
	delete(s.schedules, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = removeAt(s.keys, i)
			return
		}
	}
}

func removeAt[T any](in []T, idx int) []T {
	return append(in[:idx], in[idx+1:]...)
}
