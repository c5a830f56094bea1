package cli

import (
	"context"
	"time"

	"recordbook/internal/amqp"
	"recordbook/internal/core"
	applog "recordbook/internal/log"
	"recordbook/internal/services"
	"recordbook/internal/storage"
	"recordbook/internal/store"
)

// App holds the services and lifecycle hooks the commands use.
type App struct {
	Store     *store.Store
	Expenses  *services.ExpenseService
	Projects  *services.ProjectService
	Schedules *services.ScheduleService
	Reports   *services.ReportService

	Persister storage.Persister
	Notifier  amqp.Notifier
	ReportDir string
	Logger    *applog.Logger

	now func() time.Time
}

// Deps are the collaborators NewApp wires together. Notifier, Logger and
// Now are optional.
type Deps struct {
	Store     *store.Store
	Persister storage.Persister
	Notifier  amqp.Notifier
	ReportDir string
	Logger    *applog.Logger
	Now       func() time.Time
}

// NewApp builds every service around the one store.
func NewApp(d Deps) *App {
	if d.Notifier == nil {
		d.Notifier = amqp.NopNotifier{}
	}
	if d.Logger == nil {
		d.Logger = applog.Discard()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	clock := services.WithClock(d.Now)
	logs := services.WithLogger(d.Logger)
	return &App{
		Store:     d.Store,
		Expenses:  services.NewExpenseService(d.Store, logs),
		Projects:  services.NewProjectService(d.Store, clock, logs),
		Schedules: services.NewScheduleService(d.Store, logs),
		Reports:   services.NewReportService(d.Store, clock, logs),
		Persister: d.Persister,
		Notifier:  d.Notifier,
		ReportDir: d.ReportDir,
		Logger:    d.Logger.WithComponent(applog.ComponentCLI),
		now:       d.Now,
	}
}

// LoadAll populates the store before any command runs.
func (a *App) LoadAll(ctx context.Context) error {
	return a.Persister.LoadAll(ctx)
}

// commit saves everything after a successful mutation and announces it.
func (a *App) commit(ctx context.Context, collection, action string) error {
	if err := a.Persister.SaveAll(ctx); err != nil {
		return err
	}
	a.Notifier.Notify(ctx, collection, action, a.count(collection))
	return nil
}

func (a *App) count(collection string) int {
	switch collection {
	case storage.CollectionExpenses:
		return a.Store.ExpenseCount()
	case storage.CollectionProjects:
		return a.Store.ProjectCount()
	case storage.CollectionSchedules:
		return a.Store.ScheduleCount()
	}
	return 0
}

func (a *App) today() core.Date {
	return core.DateOf(a.now())
}
