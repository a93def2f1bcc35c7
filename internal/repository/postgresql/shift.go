package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/shift"
	"github.com/nomina-ops/nomina-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepository{db: db}
}

// One row per assigned day; an unassigned day has no row. The natural key
// (company_key, employee_name, year, month, day) is the table's unique
// constraint; the surrogate id never leaves this package.
const shiftColumns = `company_key, employee_name, year, month, day, code`

func scanAssignment(row pgx.Row) (shift.Assignment, error) {
	var a shift.Assignment
	err := row.Scan(&a.CompanyKey, &a.EmployeeName, &a.Year, &a.Month, &a.Day, &a.Code)
	return a, err
}

func collectAssignments(rows pgx.Rows) ([]shift.Assignment, error) {
	defer rows.Close()

	var out []shift.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shift assignments: %w", err)
	}
	return out, nil
}

func (r *shiftRepository) GetByKey(ctx context.Context, key shift.Key) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shift_assignments
		WHERE company_key = $1 AND employee_name = $2 AND year = $3 AND month = $4 AND day = $5
	`

	a, err := scanAssignment(q.QueryRow(ctx, query, key.CompanyKey, key.EmployeeName, key.Year, key.Month, key.Day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Assignment{}, shift.ErrAssignmentNotFound
		}
		return shift.Assignment{}, fmt.Errorf("failed to get shift assignment: %w", err)
	}
	return a, nil
}

func (r *shiftRepository) ListByCompanyEmployeeMonth(ctx context.Context, companyKey, employeeName string, year, month int) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shift_assignments
		WHERE company_key = $1 AND employee_name = $2 AND year = $3 AND month = $4
		ORDER BY day
	`

	rows, err := q.Query(ctx, query, companyKey, employeeName, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	return collectAssignments(rows)
}

func (r *shiftRepository) ListByCompanyMonth(ctx context.Context, companyKey string, year, month int) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shift_assignments
		WHERE company_key = $1 AND year = $2 AND month = $3
		ORDER BY employee_name, day
	`

	rows, err := q.Query(ctx, query, companyKey, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	return collectAssignments(rows)
}

func (r *shiftRepository) ListByMonth(ctx context.Context, year, month int) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shift_assignments
		WHERE year = $1 AND month = $2
		ORDER BY company_key, employee_name, day
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	return collectAssignments(rows)
}

func (r *shiftRepository) ListByCompanyDay(ctx context.Context, companyKey string, year, month, day int) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shift_assignments
		WHERE company_key = $1 AND year = $2 AND month = $3 AND day = $4
		ORDER BY employee_name
	`

	rows, err := q.Query(ctx, query, companyKey, year, month, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	return collectAssignments(rows)
}

func (r *shiftRepository) ListAll(ctx context.Context) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shift_assignments
		ORDER BY year, month, day
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	return collectAssignments(rows)
}

func (r *shiftRepository) Upsert(ctx context.Context, a shift.Assignment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (company_key, employee_name, year, month, day, code)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (company_key, employee_name, year, month, day) DO UPDATE SET
			code = EXCLUDED.code,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, a.CompanyKey, a.EmployeeName, a.Year, a.Month, a.Day, a.Code); err != nil {
		return fmt.Errorf("failed to upsert shift assignment: %w", err)
	}
	return nil
}

func (r *shiftRepository) Delete(ctx context.Context, key shift.Key) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM shift_assignments
		WHERE company_key = $1 AND employee_name = $2 AND year = $3 AND month = $4 AND day = $5
	`

	tag, err := q.Exec(ctx, query, key.CompanyKey, key.EmployeeName, key.Year, key.Month, key.Day)
	if err != nil {
		return fmt.Errorf("failed to delete shift assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrAssignmentNotFound
	}
	return nil
}
