package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"wedding/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the durable record store for guest contributions. It
// holds a single long-lived connection; every mutation commits on its own.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (or creates) the database at dbPath, forces UTF-8
// text encoding and ensures the schema exists. Safe to call on every startup.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Guest names and addresses are Khmer script; the file must never decode
	// them with a platform-dependent encoding.
	if _, err := db.Exec(`PRAGMA encoding = 'UTF-8'`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set utf-8 encoding: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert persists a new guest and returns the assigned id. The guests table
// uses AUTOINCREMENT, so ids are monotonic and never reused after deletion.
func (r *SQLiteRepository) Insert(ctx context.Context, g core.Guest) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO guests (name, khr, usd, address) VALUES (?, ?, ?, ?)`,
		g.Name, g.KHR, g.USD, g.Address)
	if err != nil {
		return 0, fmt.Errorf("insert guest: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted id: %w", err)
	}

	slog.InfoContext(ctx, "Guest saved to SQLite",
		"id", id,
		"name", g.Name,
		"khr", g.KHR,
		"usd", g.USD)

	return id, nil
}

// GetByID returns a single guest, or core.ErrNotFound if the id is absent.
func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (core.Guest, error) {
	var g core.Guest
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, khr, usd, COALESCE(address, ''), COALESCE(note, '')
		 FROM guests WHERE id = ?`, id).
		Scan(&g.ID, &g.Name, &g.KHR, &g.USD, &g.Address, &g.Note)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Guest{}, core.ErrNotFound
	}
	if err != nil {
		return core.Guest{}, fmt.Errorf("get guest %d: %w", id, err)
	}
	return g, nil
}

// Update replaces the mutable fields of an existing guest. The id itself
// never changes. Updating a missing id fails with core.ErrNotFound.
func (r *SQLiteRepository) Update(ctx context.Context, g core.Guest) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE guests SET name = ?, khr = ?, usd = ?, address = ? WHERE id = ?`,
		g.Name, g.KHR, g.USD, g.Address, g.ID)
	if err != nil {
		return fmt.Errorf("update guest %d: %w", g.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update guest %d: rows affected: %w", g.ID, err)
	}
	if affected == 0 {
		return core.ErrNotFound
	}

	slog.InfoContext(ctx, "Guest updated", "id", g.ID, "name", g.Name)
	return nil
}

// Delete removes a guest. A missing id is a successful no-op, so deletion is
// idempotent.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete guest %d: %w", id, err)
	}
	slog.InfoContext(ctx, "Guest deleted", "id", id)
	return nil
}

// ListAll returns every guest, most recently created first.
func (r *SQLiteRepository) ListAll(ctx context.Context) ([]core.Guest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, khr, usd, COALESCE(address, ''), COALESCE(note, '')
		 FROM guests ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	defer rows.Close()

	var guests []core.Guest
	for rows.Next() {
		var g core.Guest
		if err := rows.Scan(&g.ID, &g.Name, &g.KHR, &g.USD, &g.Address, &g.Note); err != nil {
			return nil, fmt.Errorf("scan guest row: %w", err)
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate guest rows: %w", err)
	}

	return guests, nil
}

// Summary aggregates the whole table. COALESCE resolves the empty-table NULL
// sums to zero inside the store, so callers never special-case "no data".
func (r *SQLiteRepository) Summary(ctx context.Context) (core.Summary, error) {
	var s core.Summary
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(id), COALESCE(SUM(khr), 0), COALESCE(SUM(usd), 0) FROM guests`).
		Scan(&s.Guests, &s.TotalKHR, &s.TotalUSD)
	if err != nil {
		return core.Summary{}, fmt.Errorf("summarize guests: %w", err)
	}
	return s, nil
}
