package services

import (
	"strings"
	"time"

	applog "recordbook/internal/log"
)

// Option configures a service.
type Option func(*options)

type options struct {
	now    func() time.Time
	logger *applog.Logger
}

// WithClock overrides the source of "today". Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithLogger sets the logger for service events. Defaults to discarding them.
func WithLogger(logger *applog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now, logger: applog.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = o.logger.WithComponent(applog.ComponentServices)
	return o
}

// matcher returns a case-insensitive substring predicate. A blank keyword
// matches everything.
func matcher(keyword string) func(string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	return func(s string) bool {
		return strings.Contains(strings.ToLower(s), kw)
	}
}
