package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"recordbook/internal/core"
	applog "recordbook/internal/log"
	"recordbook/internal/store"
)

// File names inside the data directory.
const (
	ExpensesFile  = "expenses.txt"
	ProjectsFile  = "projects.txt"
	SchedulesFile = "schedules.txt"
)

// FileStore persists each collection to its own line-oriented text file.
// There is no temp-file-and-rename step: a crash mid-write can leave a
// truncated file.
type FileStore struct {
	dir    string
	store  *store.Store
	logger *applog.Logger
}

func NewFileStore(dir string, s *store.Store, logger *applog.Logger) *FileStore {
	if logger == nil {
		logger = applog.Discard()
	}
	return &FileStore{
		dir:    dir,
		store:  s,
		logger: logger.WithComponent(applog.ComponentStorage),
	}
}

// Dir returns the data directory.
func (f *FileStore) Dir() string { return f.dir }

func (f *FileStore) path(name string) string {
	return filepath.Join(f.dir, name)
}

func (f *FileStore) ensureDir() error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return core.NewStorageError("create directory", f.dir, err)
	}
	return nil
}

// LoadAll clears each collection and refills it from its file. A missing file
// leaves the collection empty. Malformed lines are dropped, never reported.
func (f *FileStore) LoadAll(ctx context.Context) error {
	if err := f.ensureDir(); err != nil {
		return err
	}

	f.store.ClearExpenses()
	if err := f.load(ctx, CollectionExpenses, ExpensesFile, expenseFields, func(rec []string) error {
		e, err := decodeExpense(rec)
		if err != nil {
			return err
		}
		f.store.AddExpense(e)
		return nil
	}); err != nil {
		return err
	}

	f.store.ClearProjects()
	if err := f.load(ctx, CollectionProjects, ProjectsFile, projectFields, func(rec []string) error {
		p, err := decodeProject(rec)
		if err != nil {
			return err
		}
		f.store.AddProject(p)
		return nil
	}); err != nil {
		return err
	}

	f.store.ClearSchedules()
	return f.load(ctx, CollectionSchedules, SchedulesFile, scheduleFields, func(rec []string) error {
		s, err := decodeSchedule(rec)
		if err != nil {
			return err
		}
		f.store.PutSchedule(s.Name, s)
		return nil
	})
}

func (f *FileStore) load(ctx context.Context, collection, name string, minFields int, add func([]string) error) error {
	path := f.path(name)
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.DebugContext(ctx, "No data file, starting empty",
			applog.FieldCollection, collection, applog.FieldPath, path)
		return nil
	}
	if err != nil {
		return core.NewStorageError("open", path, err)
	}
	defer file.Close()

	st, err := readRecords(file, minFields, add)
	if err != nil {
		return core.NewStorageError("read", path, err)
	}

	fields := applog.NewFields().
		WithOperation(applog.OpLoad).
		WithCollection(collection, st.kept).
		WithPath(path)
	fields[applog.FieldDropped] = st.dropped
	if st.dropped > 0 {
		f.logger.WarnContext(ctx, "Skipped malformed lines", fields.ToSlice()...)
	} else {
		f.logger.DebugContext(ctx, "Collection loaded", fields.ToSlice()...)
	}
	return nil
}

// SaveAll rewrites the three files. Each file is written independently: a
// failure on one leaves the others saved. The first failure is returned.
func (f *FileStore) SaveAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := f.ensureDir(); err != nil {
		return err
	}

	expenses := f.store.Expenses()
	projects := f.store.Projects()
	schedules := f.store.Schedules()

	var g errgroup.Group
	g.Go(func() error {
		return f.save(ctx, CollectionExpenses, ExpensesFile, encodeAll(expenses, encodeExpense))
	})
	g.Go(func() error {
		return f.save(ctx, CollectionProjects, ProjectsFile, encodeAll(projects, encodeProject))
	})
	g.Go(func() error {
		return f.save(ctx, CollectionSchedules, SchedulesFile, encodeAll(schedules, encodeSchedule))
	})
	return g.Wait()
}

func (f *FileStore) save(ctx context.Context, collection, name string, recs [][]string) error {
	path := f.path(name)
	file, err := os.Create(path)
	if err != nil {
		return core.NewStorageError("create", path, err)
	}

	if err := writeRecords(file, recs); err != nil {
		file.Close()
		return core.NewStorageError("write", path, err)
	}
	if err := file.Close(); err != nil {
		return core.NewStorageError("close", path, err)
	}

	f.logger.DebugContext(ctx, "Collection saved",
		applog.FieldCollection, collection,
		applog.FieldCount, len(recs),
		applog.FieldPath, path)
	return nil
}

// Close is a no-op; files are opened per call.
func (f *FileStore) Close() error { return nil }

func encodeAll[T any](in []T, enc func(T) []string) [][]string {
	out := make([][]string, 0, len(in))
	for _, v := range in {
		out = append(out, enc(v))
	}
	return out
}
