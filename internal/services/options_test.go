package services

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applog "recordbook/internal/log"
	"recordbook/internal/store"
)

func TestWithLoggerTagsServiceEvents(t *testing.T) {
	var logs bytes.Buffer
	logger := applog.New(applog.Config{Level: slog.LevelDebug, Output: &logs})
	s := store.New()

	expenses := NewExpenseService(s, WithLogger(logger))
	_, err := expenses.AddExpense("Coffee", "Food", 4500, date(t, "2025-11-03"))
	require.NoError(t, err)
	require.NoError(t, expenses.RemoveExpense(0))

	projects := NewProjectService(s, WithClock(fixedClock), WithLogger(logger))
	_, err = projects.AddProject("Website", "kim", date(t, "2025-11-01"), date(t, "2025-11-30"))
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, `msg="Expense added"`)
	assert.Contains(t, out, `msg="Expense removed"`)
	assert.Contains(t, out, `msg="Project added"`)
	assert.Equal(t, 3, bytes.Count(logs.Bytes(), []byte("component=services")))
}

func TestWithLoggerNilKeepsDiscard(t *testing.T) {
	o := buildOptions([]Option{WithLogger(nil)})
	require.NotNil(t, o.logger)
	assert.Equal(t, applog.ComponentServices, o.logger.Component())
}
