package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hirequality/internal/domain/hires"
)

type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens the database file at path, creating its directory, and
// applies the embedded migrations when migrate is set.
func OpenSQLite(ctx context.Context, path string, migrate bool) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// modernc serialises writers; a single connection avoids SQLITE_BUSY.
	conn.SetMaxOpenConns(1)
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if migrate {
		if err := MigrateSQLite(path); err != nil {
			conn.Close()
			return nil, err
		}
	}
	return &SQLiteStore{db: conn}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ListHires(ctx context.Context, filter hires.Filter) ([]hires.HireRecord, error) {
	query := `
    SELECT id, hire_date, COALESCE(first_performance_rating, ''), COALESCE(probation_outcome, '')
    FROM hires
    WHERE 1 = 1
  `
	var args []any
	if filter.From != nil {
		query += " AND hire_date >= ?"
		args = append(args, filter.From.Format(dateLayout))
	}
	if filter.To != nil {
		query += " AND hire_date <= ?"
		args = append(args, filter.To.Format(dateLayout))
	}
	query += " ORDER BY hire_date, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []hires.HireRecord{}
	for rows.Next() {
		var r hires.HireRecord
		if err := rows.Scan(&r.ID, &r.HireDate, &r.FirstPerformanceRating, &r.ProbationOutcome); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) GetHire(ctx context.Context, id string) (hires.HireRecord, error) {
	var r hires.HireRecord
	err := s.db.QueryRowContext(ctx, `
    SELECT id, hire_date, COALESCE(first_performance_rating, ''), COALESCE(probation_outcome, '')
    FROM hires
    WHERE id = ?
  `, id).Scan(&r.ID, &r.HireDate, &r.FirstPerformanceRating, &r.ProbationOutcome)
	if errors.Is(err, sql.ErrNoRows) {
		return hires.HireRecord{}, hires.ErrNotFound
	}
	if err != nil {
		return hires.HireRecord{}, err
	}
	return r, nil
}

func (s *SQLiteStore) CreateHire(ctx context.Context, record hires.HireRecord) (hires.HireRecord, error) {
	record, date, err := prepareInsert(record)
	if err != nil {
		return hires.HireRecord{}, err
	}
	_, err = s.db.ExecContext(ctx, `
    INSERT INTO hires (id, hire_date, first_performance_rating, probation_outcome)
    VALUES (?, ?, ?, ?)
  `, record.ID, date, nullIfEmpty(record.FirstPerformanceRating), nullIfEmpty(record.ProbationOutcome))
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return hires.HireRecord{}, hires.ErrDuplicateID
	}
	if err != nil {
		return hires.HireRecord{}, err
	}
	return record, nil
}

func (s *SQLiteStore) CountHires(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM hires").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
