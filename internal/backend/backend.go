// Package backend selects and builds the persistence backend and the optional
// change notifier from configuration.
package backend

import (
	"recordbook/internal/amqp"
	"recordbook/internal/storage"
)

// Type represents the type of backend
type Type string

const (
	TextBackend   Type = "text"
	SQLiteBackend Type = "sqlite"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case TextBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types
func Types() []Type {
	return []Type{TextBackend, SQLiteBackend}
}

// Config holds configuration for backend creation
type Config struct {
	Type Type

	// Text backend
	DataDirectory string

	// SQLite backend
	SQLiteDBPath string

	// Change events, optional for both backends
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

// CleanupFunc releases backend resources
type CleanupFunc func() error

// Result is what the factory builds
type Result struct {
	Persister storage.Persister
	Notifier  amqp.Notifier
	Cleanup   CleanupFunc
}
