// Package storage persists the store's three collections. FileStore keeps
// them in delimited text files; SQLiteStore keeps them in a SQLite database.
package storage

import "context"

// Persister loads the whole store at startup and writes it back after changes.
type Persister interface {
	// LoadAll replaces the store's collections with the persisted ones.
	LoadAll(ctx context.Context) error
	// SaveAll overwrites the persisted collections with the store's contents.
	SaveAll(ctx context.Context) error
	Close() error
}

// Collection names used in logs and change events.
const (
	CollectionExpenses  = "expenses"
	CollectionProjects  = "projects"
	CollectionSchedules = "schedules"
)
