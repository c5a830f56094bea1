package services

import (
	"slices"
	"time"

	"recordbook/internal/core"
	applog "recordbook/internal/log"
	"recordbook/internal/store"
)

// ProjectService validates and applies project operations against the store.
type ProjectService struct {
	store  *store.Store
	now    func() time.Time
	logger *applog.Logger
}

func NewProjectService(s *store.Store, opts ...Option) *ProjectService {
	o := buildOptions(opts)
	return &ProjectService{store: s, now: o.now, logger: o.logger}
}

// AddProject validates the input and appends a new in-progress project.
// A due date equal to the start date is allowed.
func (s *ProjectService) AddProject(title, owner string, start, due core.Date) (*core.Project, error) {
	p := &core.Project{
		Work:      core.Work{Title: title, Status: core.StatusInProgress},
		Owner:     owner,
		StartDate: start,
		DueDate:   due,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s.store.AddProject(p)
	s.logger.Debug("Project added", "title", title, "owner", owner, "due", due.String())
	return p, nil
}

// ChangeStatus overwrites the status of the project at index. Any non-blank
// value is accepted; no transition rules apply.
func (s *ProjectService) ChangeStatus(index int, status string) error {
	p, err := s.store.Project(index)
	if err != nil {
		return err
	}
	if err := core.ValidateStatus(status); err != nil {
		return err
	}
	s.logger.Debug("Project status changed", "title", p.Title, "from", p.Status, "to", status)
	p.Status = status
	return nil
}

func (s *ProjectService) RemoveProject(index int) error {
	if err := s.store.RemoveProject(index); err != nil {
		return err
	}
	s.logger.Debug("Project removed", "position", index+1)
	return nil
}

func (s *ProjectService) List() []*core.Project {
	return s.store.Projects()
}

// Search matches the keyword against title, owner or status.
func (s *ProjectService) Search(keyword string) []*core.Project {
	match := matcher(keyword)
	return filter(s.store.Projects(), func(p *core.Project) bool {
		return match(p.Title) || match(p.Owner) || match(p.Status)
	})
}

// DeadlineClose returns projects due between today and today+days inclusive,
// earliest first. Negative days are treated as zero.
func (s *ProjectService) DeadlineClose(days int) []*core.Project {
	today := core.DateOf(s.now())
	limit := today.AddDays(max(days, 0))
	out := filter(s.store.Projects(), func(p *core.Project) bool {
		return !p.DueDate.Before(today) && !p.DueDate.After(limit)
	})
	slices.SortStableFunc(out, func(a, b *core.Project) int {
		return a.DueDate.Compare(b.DueDate.Time)
	})
	return out
}
