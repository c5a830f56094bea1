// Package worker consumes the change events published after each save.
package worker

import (
	"context"
	"fmt"
	"io"
	"time"

	"recordbook/internal/amqp"
	applog "recordbook/internal/log"
)

// ChangeWatcher prints one line per change event.
type ChangeWatcher struct {
	out    io.Writer
	logger *applog.Logger
	loc    *time.Location
}

func NewChangeWatcher(out io.Writer, logger *applog.Logger) *ChangeWatcher {
	if logger == nil {
		logger = applog.Discard()
	}
	return &ChangeWatcher{
		out:    out,
		logger: logger.WithComponent(applog.ComponentWorker),
		loc:    time.Local,
	}
}

// HandleChange writes the event. Messages missing a collection or action are
// logged and skipped so they are not redelivered.
func (w *ChangeWatcher) HandleChange(ctx context.Context, msg *amqp.ChangeMessage) error {
	if msg.Collection == "" || msg.Action == "" {
		w.logger.WarnContext(ctx, "Skipping incomplete change message", "id", msg.ID)
		return nil
	}

	w.logger.DebugContext(ctx, "Processing change message",
		"id", msg.ID,
		applog.FieldCollection, msg.Collection,
		"action", msg.Action)

	_, err := fmt.Fprintf(w.out, "%s  %-9s  %-6s  %d\n",
		msg.Timestamp.In(w.loc).Format(time.DateTime), msg.Collection, msg.Action, msg.Count)
	if err != nil {
		return fmt.Errorf("write change line: %w", err)
	}
	return nil
}
