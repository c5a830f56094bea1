package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"recordbook/internal/core"
	applog "recordbook/internal/log"
	"recordbook/internal/store"
)

// SQLiteStore keeps the collections in a SQLite database. Row order is kept
// in a position column so a reload restores insertion order.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	store  *store.Store
	logger *applog.Logger
}

func NewSQLiteStore(dbPath string, s *store.Store, logger *applog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = applog.Discard()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, core.NewStorageError("create directory", filepath.Dir(dbPath), err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, core.NewStorageError("open database", dbPath, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, core.NewStorageError("ping database", dbPath, err)
	}
	version, err := migrateSchema(dbPath)
	if err != nil {
		db.Close()
		return nil, err
	}

	logger = logger.WithComponent(applog.ComponentSQLite)
	logger.Debug("Schema ready",
		applog.FieldOperation, applog.OpMigrate,
		applog.FieldPath, dbPath,
		"version", version)

	return &SQLiteStore{
		db:     db,
		path:   dbPath,
		store:  s,
		logger: logger,
	}, nil
}

func (r *SQLiteStore) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// LoadAll replaces the store's collections with the database contents. Rows
// whose dates do not parse are dropped, matching the text backend.
func (r *SQLiteStore) LoadAll(ctx context.Context) error {
	r.store.ClearExpenses()
	r.store.ClearProjects()
	r.store.ClearSchedules()

	dropped := 0
	err := r.query(ctx, `SELECT title, status, price, category, purchase_date FROM expenses ORDER BY position`,
		func(rows *sql.Rows) error {
			var title, status, category, date string
			var price int
			if err := rows.Scan(&title, &status, &price, &category, &date); err != nil {
				return err
			}
			d, err := core.ParseDate(date)
			if err != nil {
				dropped++
				return nil
			}
			r.store.AddExpense(&core.Expense{
				Work:         core.Work{Title: title, Status: status},
				Price:        price,
				Category:     category,
				PurchaseDate: d,
			})
			return nil
		})
	if err != nil {
		return err
	}

	err = r.query(ctx, `SELECT title, status, owner, start_date, due_date FROM projects ORDER BY position`,
		func(rows *sql.Rows) error {
			rec := make([]string, projectFields)
			if err := rows.Scan(&rec[0], &rec[1], &rec[2], &rec[3], &rec[4]); err != nil {
				return err
			}
			p, err := decodeProject(rec)
			if err != nil {
				dropped++
				return nil
			}
			r.store.AddProject(p)
			return nil
		})
	if err != nil {
		return err
	}

	err = r.query(ctx, `SELECT name, date, memo FROM schedules ORDER BY position`,
		func(rows *sql.Rows) error {
			rec := make([]string, scheduleFields)
			if err := rows.Scan(&rec[0], &rec[1], &rec[2]); err != nil {
				return err
			}
			sc, err := decodeSchedule(rec)
			if err != nil {
				dropped++
				return nil
			}
			r.store.PutSchedule(sc.Name, sc)
			return nil
		})
	if err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "Loaded from SQLite",
		applog.FieldPath, r.path,
		CollectionExpenses, r.store.ExpenseCount(),
		CollectionProjects, r.store.ProjectCount(),
		CollectionSchedules, r.store.ScheduleCount(),
		applog.FieldDropped, dropped)
	return nil
}

func (r *SQLiteStore) query(ctx context.Context, q string, scan func(*sql.Rows) error) error {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return core.NewStorageError("query", r.path, err)
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return core.NewStorageError("scan", r.path, err)
		}
	}
	if err := rows.Err(); err != nil {
		return core.NewStorageError("query", r.path, err)
	}
	return nil
}

// SaveAll replaces all three tables in a single transaction.
func (r *SQLiteStore) SaveAll(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.NewStorageError("begin", r.path, err)
	}
	defer tx.Rollback()

	for _, table := range []string{CollectionExpenses, CollectionProjects, CollectionSchedules} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return core.NewStorageError("clear "+table, r.path, err)
		}
	}

	for i, e := range r.store.Expenses() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO expenses (position, title, status, price, category, purchase_date) VALUES (?, ?, ?, ?, ?, ?)`,
			i, e.Title, e.Status, e.Price, e.Category, e.PurchaseDate.String()); err != nil {
			return core.NewStorageError("insert expense", r.path, err)
		}
	}
	for i, p := range r.store.Projects() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO projects (position, title, status, owner, start_date, due_date) VALUES (?, ?, ?, ?, ?, ?)`,
			i, p.Title, p.Status, p.Owner, p.StartDate.String(), p.DueDate.String()); err != nil {
			return core.NewStorageError("insert project", r.path, err)
		}
	}
	for i, s := range r.store.Schedules() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO schedules (position, name, date, memo) VALUES (?, ?, ?, ?)`,
			i, s.Name, s.Date.String(), s.Memo); err != nil {
			return core.NewStorageError("insert schedule", r.path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return core.NewStorageError("commit", r.path, err)
	}
	r.logger.DebugContext(ctx, "Saved to SQLite", applog.FieldPath, r.path)
	return nil
}
