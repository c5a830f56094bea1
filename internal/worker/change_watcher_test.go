package worker

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recordbook/internal/amqp"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func newTestWatcher(out *bytes.Buffer) *ChangeWatcher {
	w := NewChangeWatcher(out, nil)
	w.loc = time.UTC
	return w
}

func TestHandleChangeWritesLine(t *testing.T) {
	var out bytes.Buffer
	w := newTestWatcher(&out)

	msg := &amqp.ChangeMessage{
		ID:         "1",
		Collection: "expenses",
		Action:     amqp.ActionAdd,
		Count:      3,
		Timestamp:  time.Date(2025, 11, 3, 9, 5, 0, 0, time.UTC),
	}
	require.NoError(t, w.HandleChange(context.Background(), msg))
	assert.Equal(t, "2025-11-03 09:05:00  expenses   add     3\n", out.String())
}

func TestHandleChangeSkipsIncomplete(t *testing.T) {
	var out bytes.Buffer
	w := newTestWatcher(&out)

	err := w.HandleChange(context.Background(), &amqp.ChangeMessage{ID: "2", Action: amqp.ActionRemove})
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestHandleChangeWriteFailure(t *testing.T) {
	w := NewChangeWatcher(failingWriter{}, nil)
	err := w.HandleChange(context.Background(), amqp.NewChangeMessage("projects", amqp.ActionUpdate, 1))
	assert.Error(t, err)
}
