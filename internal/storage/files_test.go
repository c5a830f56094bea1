package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recordbook/internal/core"
	"recordbook/internal/store"
)

func seededStore() *store.Store {
	s := store.New()
	s.AddExpense(&core.Expense{Work: core.Work{Title: "Coffee", Status: core.StatusRegistered}, Price: 4500, Category: "Food", PurchaseDate: core.NewDate(2025, 11, 3)})
	s.AddExpense(&core.Expense{Work: core.Work{Title: "Bus", Status: core.StatusRegistered}, Price: 1000, Category: "Transport", PurchaseDate: core.NewDate(2025, 11, 1)})
	s.AddProject(&core.Project{Work: core.Work{Title: "Website", Status: core.StatusDone}, Owner: "kim", StartDate: core.NewDate(2025, 10, 1), DueDate: core.NewDate(2025, 12, 1)})
	s.PutSchedule("dentist", &core.Schedule{Name: "dentist", Date: core.NewDate(2025, 11, 10), Memo: "bring card"})
	s.PutSchedule("party", &core.Schedule{Name: "party", Date: core.NewDate(2025, 12, 24)})
	return s
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func assertSameCollections(t *testing.T, want, got *store.Store) {
	t.Helper()
	require.Equal(t, len(want.Expenses()), len(got.Expenses()))
	for i, e := range want.Expenses() {
		assert.Equal(t, *e, *got.Expenses()[i])
	}
	require.Equal(t, len(want.Projects()), len(got.Projects()))
	for i, p := range want.Projects() {
		assert.Equal(t, *p, *got.Projects()[i])
	}
	require.Equal(t, len(want.Schedules()), len(got.Schedules()))
	for i, s := range want.Schedules() {
		assert.Equal(t, *s, *got.Schedules()[i])
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")
	src := seededStore()

	require.NoError(t, NewFileStore(dir, src, nil).SaveAll(ctx))

	dst := store.New()
	dst.AddExpense(&core.Expense{Work: core.Work{Title: "stale"}})
	require.NoError(t, NewFileStore(dir, dst, nil).LoadAll(ctx))

	assertSameCollections(t, src, dst)
}

func TestFileStoreWritesPlainLines(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewFileStore(dir, seededStore(), nil).SaveAll(context.Background()))

	data, err := os.ReadFile(filepath.Join(dir, ExpensesFile))
	require.NoError(t, err)
	assert.Equal(t, "Coffee|등록|4500|Food|2025-11-03\nBus|등록|1000|Transport|2025-11-01\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, ProjectsFile))
	require.NoError(t, err)
	assert.Equal(t, "Website|완료|kim|2025-10-01|2025-12-01\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, SchedulesFile))
	require.NoError(t, err)
	assert.Equal(t, "dentist|2025-11-10|bring card\nparty|2025-12-24|\n", string(data))
}

func TestFileStoreSeparatorInValues(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	src := store.New()
	src.AddExpense(&core.Expense{Work: core.Work{Title: `a|b "quoted"`, Status: core.StatusRegistered}, Price: 1, Category: "x|y", PurchaseDate: core.NewDate(2025, 1, 1)})
	src.PutSchedule("line", &core.Schedule{Name: "line", Date: core.NewDate(2025, 1, 2), Memo: "first\nsecond"})

	require.NoError(t, NewFileStore(dir, src, nil).SaveAll(ctx))
	data, err := os.ReadFile(filepath.Join(dir, SchedulesFile))
	require.NoError(t, err)
	assert.Equal(t, "line|2025-01-02|first\\nsecond\n", string(data))

	dst := store.New()
	require.NoError(t, NewFileStore(dir, dst, nil).LoadAll(ctx))

	assertSameCollections(t, src, dst)
}

func TestFileStoreDropsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ExpensesFile, "Coffee|등록|4500|Food|2025-11-03\nTea|등록|cheap|Food|2025-11-04\n")
	writeFile(t, dir, ProjectsFile, "\n   \nshort|진행중|kim\nOk|진행중|kim|2025-11-01|2025-11-30\nBad|진행중|kim|2025-11-01|not-a-date\n")
	writeFile(t, dir, SchedulesFile, "a|2025-13-45|x\nb|2025-11-10\nc|2025-11-11|memo|extra\nd| 2025-11-12|padded\n")

	s := store.New()
	require.NoError(t, NewFileStore(dir, s, nil).LoadAll(context.Background()))

	require.Equal(t, 1, s.ExpenseCount())
	assert.Equal(t, "Coffee", s.Expenses()[0].Title)

	require.Equal(t, 1, s.ProjectCount())
	assert.Equal(t, "Ok", s.Projects()[0].Title)

	require.Equal(t, 1, s.ScheduleCount(), "extra trailing fields are ignored")
	assert.Equal(t, "memo", s.Schedules()[0].Memo)
}

func TestFileStoreLeadingQuoteLineKeepsFollowingLines(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ExpensesFile, "\"Quoted title|등록|100|Food|2025-01-01\nCoffee|등록|4500|Food|2025-11-03\nTea|등록|3000|Food|2025-11-04\n")
	writeFile(t, dir, SchedulesFile, "\"quoted|2025-11-01|x\ndentist|2025-11-10|bring card\nparty|2025-12-24|\n")

	s := store.New()
	require.NoError(t, NewFileStore(dir, s, nil).LoadAll(context.Background()))

	titles := make([]string, 0, s.ExpenseCount())
	for _, e := range s.Expenses() {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{`"Quoted title`, "Coffee", "Tea"}, titles)
	assert.Equal(t, 3, s.ScheduleCount())
	assert.True(t, s.HasSchedule("party"))
}

func TestFileStoreMissingFilesLoadEmpty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := seededStore()

	require.NoError(t, NewFileStore(dir, s, nil).LoadAll(context.Background()))
	assert.Zero(t, s.ExpenseCount())
	assert.Zero(t, s.ProjectCount())
	assert.Zero(t, s.ScheduleCount())

	info, err := os.Stat(dir)
	require.NoError(t, err, "data directory is created on load")
	assert.True(t, info.IsDir())
}

func TestFileStoreDirectoryFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	dir := filepath.Join(blocker, "data")

	fs := NewFileStore(dir, seededStore(), nil)
	for _, err := range []error{fs.LoadAll(context.Background()), fs.SaveAll(context.Background())} {
		require.ErrorIs(t, err, core.ErrStorage)
		var se *core.StorageError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, dir, se.Path)
	}
}

func TestFileStoreSaveFailureIsPerFile(t *testing.T) {
	dir := t.TempDir()
	// A directory where the expenses file should be makes that write fail.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ExpensesFile), 0o755))

	err := NewFileStore(dir, seededStore(), nil).SaveAll(context.Background())
	require.ErrorIs(t, err, core.ErrStorage)
	var se *core.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, filepath.Join(dir, ExpensesFile), se.Path)

	_, err = os.Stat(filepath.Join(dir, ProjectsFile))
	assert.NoError(t, err, "other files are still written")
	_, err = os.Stat(filepath.Join(dir, SchedulesFile))
	assert.NoError(t, err)
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := seededStore()
	fs := NewFileStore(dir, s, nil)
	require.NoError(t, fs.SaveAll(ctx))

	require.NoError(t, s.RemoveExpense(0))
	s.ClearSchedules()
	require.NoError(t, fs.SaveAll(ctx))

	reloaded := store.New()
	require.NoError(t, NewFileStore(dir, reloaded, nil).LoadAll(ctx))
	assert.Equal(t, 1, reloaded.ExpenseCount())
	assert.Zero(t, reloaded.ScheduleCount())

	data, err := os.ReadFile(filepath.Join(dir, SchedulesFile))
	require.NoError(t, err)
	assert.Empty(t, data)
}
