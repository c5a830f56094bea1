package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"recordbook/internal/core"
)

// schemaTable records the applied migration version.
const schemaTable = "recordbook_schema"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrateSchema brings the record tables at dbPath up to date and returns the
// schema version. Every failure is a StorageError for dbPath.
func migrateSchema(dbPath string) (uint, error) {
	fail := func(op string, err error) (uint, error) {
		return 0, core.NewStorageError(op, dbPath, err)
	}

	// The migrator closes its connection, so it gets its own.
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fail("open for migration", err)
	}
	defer conn.Close()

	driver, err := sqlite.WithInstance(conn, &sqlite.Config{MigrationsTable: schemaTable})
	if err != nil {
		return fail("prepare migration", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fail("load migrations", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fail("prepare migration", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fail("migrate", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fail("read schema version", err)
	}
	if dirty {
		return fail("migrate", fmt.Errorf("schema version %d is dirty", version))
	}
	return version, nil
}
