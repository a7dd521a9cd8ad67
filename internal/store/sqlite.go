package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	_ "modernc.org/sqlite"
)

// DefaultListLimit caps ListFootprints when no positive limit is given.
const DefaultListLimit = 50

const schema = `
CREATE TABLE IF NOT EXISTS footprints (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	transport  REAL NOT NULL,
	energy     REAL NOT NULL,
	diet       REAL NOT NULL,
	other      REAL NOT NULL,
	total      REAL NOT NULL,
	input_json TEXT,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_footprints_user ON footprints(user_id, created_at);

CREATE TABLE IF NOT EXISTS points_ledger (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id    TEXT NOT NULL,
	points     INTEGER NOT NULL,
	reason     TEXT NOT NULL,
	reference  TEXT,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_ledger_user ON points_ledger(user_id);
`

// SQLiteStore implements Store on a SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger zerolog.Logger
	now    func() time.Time
}

// NewSQLiteStore opens (or creates) the database at path and applies the schema.
func NewSQLiteStore(path string, logger zerolog.Logger) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Debug().Str("path", path).Msg("footprint store opened")

	return &SQLiteStore{
		db:     db,
		path:   path,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Ping checks that the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// RecordCalculation implements Store.
// An empty rec.ID is replaced by a new UUID and a zero CreatedAt by the
// current time.
func (s *SQLiteStore) RecordCalculation(ctx context.Context, rec Record, points int64) (int64, error) {
	if rec.UserID == "" {
		return 0, fmt.Errorf("%w: user id is required", ErrInvalidRecord)
	}
	if points < 0 {
		return 0, fmt.Errorf("%w: points must not be negative", ErrInvalidRecord)
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	b := rec.Breakdown
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO footprints (id, user_id, transport, energy, diet, other, total, input_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, b.Transport, b.Energy, b.Diet, b.Other, b.Total,
		string(rec.Input), rec.CreatedAt.UnixNano(),
	); err != nil {
		return 0, fmt.Errorf("save footprint: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO points_ledger (user_id, points, reason, reference, created_at) VALUES (?, ?, ?, ?, ?)`,
		rec.UserID, points, ReasonCalculation, rec.ID, rec.CreatedAt.UnixNano(),
	); err != nil {
		return 0, fmt.Errorf("credit points: %w", err)
	}

	balance, err := balance(ctx, tx, rec.UserID)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	s.logger.Debug().
		Str("user_id", rec.UserID).
		Str("footprint_id", rec.ID).
		Int64("points", points).
		Int64("balance", balance).
		Msg("footprint recorded")

	return balance, nil
}

// ListFootprints implements Store.
func (s *SQLiteStore) ListFootprints(ctx context.Context, userID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, transport, energy, diet, other, total, input_json, created_at
		 FROM footprints WHERE user_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list footprints: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec       Record
			input     sql.NullString
			createdAt int64
		)
		if err := rows.Scan(&rec.ID, &rec.UserID,
			&rec.Breakdown.Transport, &rec.Breakdown.Energy, &rec.Breakdown.Diet,
			&rec.Breakdown.Other, &rec.Breakdown.Total, &input, &createdAt); err != nil {
			return nil, fmt.Errorf("scan footprint: %w", err)
		}
		if input.Valid && input.String != "" {
			rec.Input = []byte(input.String)
		}
		rec.CreatedAt = time.Unix(0, createdAt).UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list footprints: %w", err)
	}
	return records, nil
}

// Balance implements Store.
func (s *SQLiteStore) Balance(ctx context.Context, userID string) (int64, error) {
	return balance(ctx, s.db, userID)
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func balance(ctx context.Context, q queryer, userID string) (int64, error) {
	var total int64
	err := q.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(points), 0) FROM points_ledger WHERE user_id = ?`, userID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("read balance: %w", err)
	}
	return total, nil
}
