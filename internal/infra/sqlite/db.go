// Package sqlite provides SQLite-based persistent storage for Kintsugi.
// Uses WAL mode for concurrent reads and crash-safe writes.
//
// The engagement engine treats storage as a key-value substrate: one JSON
// blob per well-known key. SQLite gives us durability and atomic writes
// without leaking schema into the core.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)

	"github.com/kintsugi-journal/kintsugi/internal/domain"
)

// Well-known store keys. Missing keys mean "default empty state".
const (
	KeyEngagementState    = "engagement_state"
	KeyProfile            = "profile"
	KeyCustomAffirmations = "custom_affirmations"
	KeyThemeChanges       = "theme_changes"
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/kintsugi.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "kintsugi.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Key-value store: engagement blob, profile, custom affirmations,
		// theme counter. Values are opaque strings (usually JSON).
		`CREATE TABLE IF NOT EXISTS store (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Notification queue for the presentation layer.
		`CREATE TABLE IF NOT EXISTS notifications (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			type       TEXT NOT NULL,
			title      TEXT NOT NULL,
			body       TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			shown      BOOLEAN DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notif_created ON notifications(created_at)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── Key-Value Store ────────────────────────────────────────────────────────

// SetValue stores a key-value pair, replacing any previous value.
func (d *DB) SetValue(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO store (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	return err
}

// GetValue retrieves a value by key. Returns "" if the key is absent —
// absent keys are default state, never an error.
func (d *DB) GetValue(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM store WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// DeleteValue removes a key. Deleting an absent key is a no-op.
func (d *DB) DeleteValue(key string) error {
	_, err := d.db.Exec(`DELETE FROM store WHERE key = ?`, key)
	return err
}

// ─── Notifications ──────────────────────────────────────────────────────────

// InsertNotification queues a new notification.
func (d *DB) InsertNotification(n domain.Notification) (int64, error) {
	result, err := d.db.Exec(
		`INSERT INTO notifications (type, title, body, created_at, shown)
		 VALUES (?, ?, ?, ?, ?)`,
		string(n.Type), n.Title, n.Body, n.CreatedAt.Unix(), n.Shown,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// NotificationCountSince returns how many notifications were created at or
// after the given instant.
func (d *DB) NotificationCountSince(since time.Time) (int, error) {
	var count int
	err := d.db.QueryRow(
		`SELECT COUNT(*) FROM notifications WHERE created_at >= ?`, since.Unix(),
	).Scan(&count)
	return count, err
}

// ListPendingNotifications returns unshown notifications, newest first.
func (d *DB) ListPendingNotifications(limit int) ([]domain.Notification, error) {
	rows, err := d.db.Query(
		`SELECT id, type, title, body, created_at, shown
		 FROM notifications WHERE shown = 0 ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifs []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var createdAt int64
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Body, &createdAt, &n.Shown); err != nil {
			return nil, err
		}
		n.CreatedAt = time.Unix(createdAt, 0)
		notifs = append(notifs, n)
	}
	return notifs, rows.Err()
}

// MarkNotificationShown marks a notification as shown.
func (d *DB) MarkNotificationShown(id int64) error {
	_, err := d.db.Exec(`UPDATE notifications SET shown = 1 WHERE id = ?`, id)
	return err
}
