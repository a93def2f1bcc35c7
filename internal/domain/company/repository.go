package company

import "context"

// Repository defines data access for companies, employee profiles and
// insurance rate overrides.
type Repository interface {
	ListCompanies(ctx context.Context) ([]Company, error)
	GetCompany(ctx context.Context, key string) (Company, error)

	// GetProfile returns ErrProfileNotFound when the employee has no
	// profile; callers fall back to defaults, absence is not a failure.
	GetProfile(ctx context.Context, companyKey, employeeName string) (EmployeeProfile, error)
	ListProfilesByCompany(ctx context.Context, companyKey string) ([]EmployeeProfile, error)
	UpsertProfile(ctx context.Context, profile EmployeeProfile) (EmployeeProfile, error)

	// GetRateOverride returns ErrOverrideNotFound when the company has no
	// override row; resolution degrades to system defaults.
	GetRateOverride(ctx context.Context, companyKey string) (RateOverride, error)
	UpsertRateOverride(ctx context.Context, override RateOverride) (RateOverride, error)
}
