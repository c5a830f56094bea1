package backend

import (
	"context"
	"fmt"

	"recordbook/internal/amqp"
	applog "recordbook/internal/log"
	"recordbook/internal/storage"
	"recordbook/internal/store"
)

const defaultDataDirectory = "data"

// Factory builds backends over a shared store.
type Factory struct {
	logger *applog.Logger
}

func NewFactory(logger *applog.Logger) *Factory {
	if logger == nil {
		logger = applog.Discard()
	}
	return &Factory{logger: logger.WithComponent(applog.ComponentBackend)}
}

// Create builds the persister for config.Type and, when an AMQP URL is set,
// a publishing notifier. A broker that cannot be reached is logged and
// replaced by a no-op notifier.
func (f *Factory) Create(ctx context.Context, config Config, s *store.Store) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var (
		persister storage.Persister
		err       error
	)
	switch config.Type {
	case SQLiteBackend:
		persister, err = storage.NewSQLiteStore(config.SQLiteDBPath, s, f.logger)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite backend: %w", err)
		}
		f.logger.InfoContext(ctx, "Initialized SQLite backend", applog.FieldPath, config.SQLiteDBPath)
	default:
		dir := config.DataDirectory
		if dir == "" {
			dir = defaultDataDirectory
		}
		persister = storage.NewFileStore(dir, s, f.logger)
		f.logger.DebugContext(ctx, "Initialized text backend", applog.FieldPath, dir)
	}

	result := &Result{
		Persister: persister,
		Notifier:  amqp.NopNotifier{},
		Cleanup:   persister.Close,
	}

	if config.AMQPURL == "" {
		return result, nil
	}
	client, err := amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
	if err != nil {
		f.logger.WarnContext(ctx, "Failed to initialize AMQP client, continuing without change events", applog.FieldError, err)
		return result, nil
	}
	f.logger.InfoContext(ctx, "Initialized AMQP client",
		"exchange", config.AMQPExchange,
		"queue", config.AMQPQueue)

	result.Notifier = amqp.NewPublishingNotifier(client, f.logger)
	result.Cleanup = func() error {
		var errs []error
		if err := persister.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
		if err := client.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
		if len(errs) > 0 {
			return fmt.Errorf("close backend: %v", errs)
		}
		return nil
	}
	return result, nil
}
