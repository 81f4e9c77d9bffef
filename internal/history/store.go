// Package history records configuration changes in a SQLite database
// so `dk history` can answer who changed what, and when.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/drivekit-tools/cli/internal/domain"
	"github.com/drivekit-tools/cli/internal/history/migrations"
)

// Store wraps a SQLite database connection for change records.
// It implements the domain.ChangeStore interface.
type Store struct {
	db   *sql.DB
	path string
}

// New creates a Store with the given database path and runs migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB creates a Store from an existing database connection.
// Useful for testing with in-memory databases.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// setDBPermissions sets restrictive file permissions on the database
// and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Insert records one configuration change.
func (s *Store) Insert(change domain.Change) error {
	if change.ID == uuid.Nil {
		change.ID = uuid.New()
	}
	if change.Timestamp.IsZero() {
		change.Timestamp = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO config_changes
		 (id, section, entry, old_value, had_old, new_value, source_id, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		change.ID.String(),
		change.Section,
		change.Entry,
		change.OldValue,
		boolToInt(change.HadOld),
		change.NewValue,
		int(change.Source),
		change.Timestamp.Format(time.RFC3339Nano),
	)
	return err
}

// List returns changes matching the filter, newest first.
func (s *Store) List(filter domain.ChangeFilter) ([]domain.Change, error) {
	base := `
		SELECT id, section, entry, old_value, had_old, new_value, source_id, timestamp
		FROM config_changes
	`

	var (
		clauses []string
		args    []any
	)

	if filter.Section != "" {
		clauses = append(clauses, "section = ?")
		args = append(args, filter.Section)
	}
	if filter.Entry != "" {
		clauses = append(clauses, "entry = ?")
		args = append(args, filter.Entry)
	}

	query := base
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY timestamp DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query changes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var changes []domain.Change
	for rows.Next() {
		change, err := scanChange(rows)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}

	return changes, rows.Err()
}

func scanChange(rows *sql.Rows) (domain.Change, error) {
	var (
		change           domain.Change
		id, ts           string
		hadOld, sourceID int
	)

	err := rows.Scan(&id, &change.Section, &change.Entry, &change.OldValue,
		&hadOld, &change.NewValue, &sourceID, &ts)
	if err != nil {
		return domain.Change{}, fmt.Errorf("scan change: %w", err)
	}

	change.ID, err = uuid.Parse(id)
	if err != nil {
		return domain.Change{}, fmt.Errorf("parse change id: %w", err)
	}

	change.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return domain.Change{}, fmt.Errorf("parse change timestamp: %w", err)
	}

	change.HadOld = hadOld != 0
	change.Source = domain.Source(sourceID)
	return change, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ domain.ChangeStore = (*Store)(nil)
