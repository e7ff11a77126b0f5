package db

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"hirequality/internal/domain/hires"
)

const (
	uniqueViolation = "23505"
	dateLayout      = "2006-01-02"
)

type PostgresStore struct {
	DB *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{DB: pool}
}

func (s *PostgresStore) ListHires(ctx context.Context, filter hires.Filter) ([]hires.HireRecord, error) {
	query := `
    SELECT id, to_char(hire_date, 'YYYY-MM-DD'), COALESCE(first_performance_rating, ''), COALESCE(probation_outcome, '')
    FROM hires
    WHERE 1 = 1
  `
	var args []any
	if filter.From != nil {
		args = append(args, filter.From.Format(dateLayout))
		query += " AND hire_date >= $" + strconv.Itoa(len(args)) + "::date"
	}
	if filter.To != nil {
		args = append(args, filter.To.Format(dateLayout))
		query += " AND hire_date <= $" + strconv.Itoa(len(args)) + "::date"
	}
	query += " ORDER BY hire_date, id"

	rows, err := s.DB.Query(ctx, query, args...)
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

func (s *PostgresStore) GetHire(ctx context.Context, id string) (hires.HireRecord, error) {
	var r hires.HireRecord
	err := s.DB.QueryRow(ctx, `
    SELECT id, to_char(hire_date, 'YYYY-MM-DD'), COALESCE(first_performance_rating, ''), COALESCE(probation_outcome, '')
    FROM hires
    WHERE id = $1
  `, id).Scan(&r.ID, &r.HireDate, &r.FirstPerformanceRating, &r.ProbationOutcome)
	if errors.Is(err, pgx.ErrNoRows) {
		return hires.HireRecord{}, hires.ErrNotFound
	}
	if err != nil {
		return hires.HireRecord{}, err
	}
	return r, nil
}

func (s *PostgresStore) CreateHire(ctx context.Context, record hires.HireRecord) (hires.HireRecord, error) {
	record, date, err := prepareInsert(record)
	if err != nil {
		return hires.HireRecord{}, err
	}
	_, err = s.DB.Exec(ctx, `
    INSERT INTO hires (id, hire_date, first_performance_rating, probation_outcome)
    VALUES ($1, $2::date, $3, $4)
  `, record.ID, date, nullIfEmpty(record.FirstPerformanceRating), nullIfEmpty(record.ProbationOutcome))
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return hires.HireRecord{}, hires.ErrDuplicateID
	}
	if err != nil {
		return hires.HireRecord{}, err
	}
	return record, nil
}

func (s *PostgresStore) CountHires(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM hires").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.DB.Ping(ctx)
}

// prepareInsert assigns a missing id and normalises the hire date. Persisted
// records always carry a valid date.
func prepareInsert(record hires.HireRecord) (hires.HireRecord, string, error) {
	date, ok := hires.ParseHireDate(record.HireDate)
	if !ok {
		return hires.HireRecord{}, "", fmt.Errorf("%w: hire date %q", hires.ErrInvalidRecord, record.HireDate)
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.HireDate = date.Format(dateLayout)
	return record, record.HireDate, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
