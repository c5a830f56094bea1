package amqp

import (
	"context"

	applog "recordbook/internal/log"
)

// Notifier announces saved changes. Implementations never fail the caller:
// the data is already persisted locally when Notify runs.
type Notifier interface {
	Notify(ctx context.Context, collection, action string, count int)
}

// NopNotifier is used when no broker is configured.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, string, string, int) {}

type publisher interface {
	PublishChange(ctx context.Context, msg *ChangeMessage) error
}

// PublishingNotifier sends a ChangeMessage for every change.
type PublishingNotifier struct {
	client publisher
	logger *applog.Logger
}

func NewPublishingNotifier(client *Client, logger *applog.Logger) *PublishingNotifier {
	return newPublishingNotifier(client, logger)
}

func newPublishingNotifier(p publisher, logger *applog.Logger) *PublishingNotifier {
	if logger == nil {
		logger = applog.Discard()
	}
	return &PublishingNotifier{client: p, logger: logger.WithComponent(applog.ComponentAMQP)}
}

func (n *PublishingNotifier) Notify(ctx context.Context, collection, action string, count int) {
	msg := NewChangeMessage(collection, action, count)
	err := n.client.PublishChange(ctx, msg)
	switch {
	case err == nil:
		n.logger.DebugContext(ctx, "Published change message",
			"id", msg.ID, applog.FieldCollection, collection, "action", action)
	case isConnectionError(err):
		n.logger.WarnContext(ctx, "Broker unreachable, change message dropped",
			applog.FieldCollection, collection, applog.FieldError, err)
	default:
		n.logger.ErrorContext(ctx, "Failed to publish change message",
			applog.FieldCollection, collection, applog.FieldError, err)
	}
}
