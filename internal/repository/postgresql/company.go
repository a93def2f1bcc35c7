package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/company"
	"github.com/nomina-ops/nomina-backend-go/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.Repository {
	return &companyRepository{db: db}
}

func (r *companyRepository) ListCompanies(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT key, name, created_at, updated_at
		FROM companies
		ORDER BY key
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var out []company.Company
	for rows.Next() {
		var c company.Company
		if err := rows.Scan(&c.Key, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read companies: %w", err)
	}
	return out, nil
}

func (r *companyRepository) GetCompany(ctx context.Context, key string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT key, name, created_at, updated_at
		FROM companies
		WHERE key = $1
	`

	var c company.Company
	err := q.QueryRow(ctx, query, key).Scan(&c.Key, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}
	return c, nil
}

func (r *companyRepository) GetProfile(ctx context.Context, companyKey, employeeName string) (company.EmployeeProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT company_key, employee_name, tier, hours_per_worked_day, default_extra_amount, created_at, updated_at
		FROM employee_profiles
		WHERE company_key = $1 AND employee_name = $2
	`

	var p company.EmployeeProfile
	err := q.QueryRow(ctx, query, companyKey, employeeName).Scan(
		&p.CompanyKey, &p.EmployeeName, &p.Tier, &p.HoursPerWorkedDay, &p.DefaultExtraAmount,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.EmployeeProfile{}, company.ErrProfileNotFound
		}
		return company.EmployeeProfile{}, fmt.Errorf("failed to get employee profile: %w", err)
	}
	return p, nil
}

func (r *companyRepository) ListProfilesByCompany(ctx context.Context, companyKey string) ([]company.EmployeeProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT company_key, employee_name, tier, hours_per_worked_day, default_extra_amount, created_at, updated_at
		FROM employee_profiles
		WHERE company_key = $1
		ORDER BY employee_name
	`

	rows, err := q.Query(ctx, query, companyKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee profiles: %w", err)
	}
	defer rows.Close()

	var out []company.EmployeeProfile
	for rows.Next() {
		var p company.EmployeeProfile
		if err := rows.Scan(
			&p.CompanyKey, &p.EmployeeName, &p.Tier, &p.HoursPerWorkedDay, &p.DefaultExtraAmount,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee profile: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee profiles: %w", err)
	}
	return out, nil
}

func (r *companyRepository) UpsertProfile(ctx context.Context, profile company.EmployeeProfile) (company.EmployeeProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_profiles (company_key, employee_name, tier, hours_per_worked_day, default_extra_amount)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (company_key, employee_name) DO UPDATE SET
			tier = EXCLUDED.tier,
			hours_per_worked_day = EXCLUDED.hours_per_worked_day,
			default_extra_amount = EXCLUDED.default_extra_amount,
			updated_at = NOW()
		RETURNING company_key, employee_name, tier, hours_per_worked_day, default_extra_amount, created_at, updated_at
	`

	var p company.EmployeeProfile
	err := q.QueryRow(ctx, query,
		profile.CompanyKey, profile.EmployeeName, profile.Tier, profile.HoursPerWorkedDay, profile.DefaultExtraAmount,
	).Scan(
		&p.CompanyKey, &p.EmployeeName, &p.Tier, &p.HoursPerWorkedDay, &p.DefaultExtraAmount,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return company.EmployeeProfile{}, fmt.Errorf("failed to upsert employee profile: %w", err)
	}
	return p, nil
}

func (r *companyRepository) GetRateOverride(ctx context.Context, companyKey string) (company.RateOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT company_key, full_time_rate, part_time_rate, base_hourly_rate, created_at, updated_at
		FROM insurance_rate_overrides
		WHERE company_key = $1
	`

	var o company.RateOverride
	err := q.QueryRow(ctx, query, companyKey).Scan(
		&o.CompanyKey, &o.FullTimeRate, &o.PartTimeRate, &o.BaseHourlyRate,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.RateOverride{}, company.ErrOverrideNotFound
		}
		return company.RateOverride{}, fmt.Errorf("failed to get insurance rate override: %w", err)
	}
	return o, nil
}

func (r *companyRepository) UpsertRateOverride(ctx context.Context, override company.RateOverride) (company.RateOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO insurance_rate_overrides (company_key, full_time_rate, part_time_rate, base_hourly_rate)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_key) DO UPDATE SET
			full_time_rate = EXCLUDED.full_time_rate,
			part_time_rate = EXCLUDED.part_time_rate,
			base_hourly_rate = EXCLUDED.base_hourly_rate,
			updated_at = NOW()
		RETURNING company_key, full_time_rate, part_time_rate, base_hourly_rate, created_at, updated_at
	`

	var o company.RateOverride
	err := q.QueryRow(ctx, query,
		override.CompanyKey, override.FullTimeRate, override.PartTimeRate, override.BaseHourlyRate,
	).Scan(
		&o.CompanyKey, &o.FullTimeRate, &o.PartTimeRate, &o.BaseHourlyRate,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return company.RateOverride{}, fmt.Errorf("failed to upsert insurance rate override: %w", err)
	}
	return o, nil
}
