package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelDebug, Component: ComponentStorage, Output: &buf})

	logger.Info("Collection loaded", FieldCollection, "expenses", FieldCount, 3)
	out := buf.String()
	assert.Contains(t, out, "component=storage")
	assert.Contains(t, out, "collection=expenses")
	assert.Contains(t, out, "count=3")

	buf.Reset()
	logger.WithComponent(ComponentAMQP).Warn("skip")
	assert.Contains(t, buf.String(), "component=amqp")
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Component: ComponentApp, Output: &buf})
	logger.Info("hidden")
	logger.Debug("hidden")
	assert.Empty(t, buf.String())
	logger.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestContextRoundTrip(t *testing.T) {
	logger := Discard().WithComponent(ComponentCLI)
	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
	assert.Equal(t, "unknown", FromContext(context.Background()).Component())
}

func TestLogFields(t *testing.T) {
	f := NewFields().
		WithComponent(ComponentStorage).
		WithOperation(OpSave).
		WithCollection("projects", 2).
		WithPath("/tmp/p.txt").
		WithError(errors.New("boom"))

	assert.Equal(t, "save", f[FieldOperation])
	assert.Equal(t, 2, f[FieldCount])
	assert.Equal(t, "boom", f[FieldError])
	assert.Len(t, f.ToSlice(), len(f)*2)

	assert.NotContains(t, NewFields().WithError(nil), FieldError)
}
