package company

import (
	"context"
	"testing"

	domain "github.com/nomina-ops/nomina-backend-go/internal/domain/company"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCompanyRepo struct {
	companies []domain.Company
	profiles  map[string]domain.EmployeeProfile
	overrides map[string]domain.RateOverride
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{
		profiles:  make(map[string]domain.EmployeeProfile),
		overrides: make(map[string]domain.RateOverride),
	}
}

func profileKey(companyKey, employeeName string) string {
	return companyKey + "/" + employeeName
}

func (r *memCompanyRepo) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return r.companies, nil
}

func (r *memCompanyRepo) GetCompany(ctx context.Context, key string) (domain.Company, error) {
	for _, c := range r.companies {
		if c.Key == key {
			return c, nil
		}
	}
	return domain.Company{}, domain.ErrCompanyNotFound
}

func (r *memCompanyRepo) GetProfile(ctx context.Context, companyKey, employeeName string) (domain.EmployeeProfile, error) {
	p, ok := r.profiles[profileKey(companyKey, employeeName)]
	if !ok {
		return domain.EmployeeProfile{}, domain.ErrProfileNotFound
	}
	return p, nil
}

func (r *memCompanyRepo) ListProfilesByCompany(ctx context.Context, companyKey string) ([]domain.EmployeeProfile, error) {
	var out []domain.EmployeeProfile
	for _, p := range r.profiles {
		if p.CompanyKey == companyKey {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memCompanyRepo) UpsertProfile(ctx context.Context, profile domain.EmployeeProfile) (domain.EmployeeProfile, error) {
	r.profiles[profileKey(profile.CompanyKey, profile.EmployeeName)] = profile
	return profile, nil
}

func (r *memCompanyRepo) GetRateOverride(ctx context.Context, companyKey string) (domain.RateOverride, error) {
	o, ok := r.overrides[companyKey]
	if !ok {
		return domain.RateOverride{}, domain.ErrOverrideNotFound
	}
	return o, nil
}

func (r *memCompanyRepo) UpsertRateOverride(ctx context.Context, override domain.RateOverride) (domain.RateOverride, error) {
	r.overrides[override.CompanyKey] = override
	return override, nil
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestUpsertProfileCreatesWithDefaults(t *testing.T) {
	repo := newMemCompanyRepo()
	svc := NewCompanyService(repo)

	got, err := svc.UpsertProfile(context.Background(), "BranchA", "Maria", &domain.UpsertEmployeeProfileRequest{
		Tier: strPtr("MT"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.InsuranceTierPartTime, got.Tier)
	assert.Equal(t, 8, got.HoursPerWorkedDay)
	assert.True(t, got.DefaultExtraAmount.IsZero())
}

func TestUpsertProfileMergesStoredValues(t *testing.T) {
	repo := newMemCompanyRepo()
	repo.profiles[profileKey("BranchA", "Maria")] = domain.EmployeeProfile{
		CompanyKey:         "BranchA",
		EmployeeName:       "Maria",
		Tier:               domain.InsuranceTierPartTime,
		HoursPerWorkedDay:  6,
		DefaultExtraAmount: decimal.RequireFromString("150"),
	}
	svc := NewCompanyService(repo)

	got, err := svc.UpsertProfile(context.Background(), "BranchA", "Maria", &domain.UpsertEmployeeProfileRequest{
		HoursPerWorkedDay: intPtr(12),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.InsuranceTierPartTime, got.Tier)
	assert.Equal(t, 12, got.HoursPerWorkedDay)
	assert.True(t, got.DefaultExtraAmount.Equal(decimal.RequireFromString("150")))
}

func TestUpsertProfileRejectsInvalidTier(t *testing.T) {
	svc := NewCompanyService(newMemCompanyRepo())

	_, err := svc.UpsertProfile(context.Background(), "BranchA", "Maria", &domain.UpsertEmployeeProfileRequest{
		Tier: strPtr("XX"),
	})
	assert.Error(t, err)
}

func TestUpsertRateOverrideMergesFields(t *testing.T) {
	repo := newMemCompanyRepo()
	svc := NewCompanyService(repo)

	_, err := svc.UpsertRateOverride(context.Background(), "BranchA", &domain.UpsertRateOverrideRequest{
		FullTimeRate: decPtr("12000"),
	})
	require.NoError(t, err)

	got, err := svc.UpsertRateOverride(context.Background(), "BranchA", &domain.UpsertRateOverrideRequest{
		BaseHourlyRate: decPtr("1600"),
	})
	require.NoError(t, err)

	require.NotNil(t, got.FullTimeRate)
	assert.True(t, got.FullTimeRate.Equal(decimal.RequireFromString("12000")))
	require.NotNil(t, got.BaseHourlyRate)
	assert.True(t, got.BaseHourlyRate.Equal(decimal.RequireFromString("1600")))
	assert.Nil(t, got.PartTimeRate)
}

func TestUpsertRateOverrideRejectsNegative(t *testing.T) {
	svc := NewCompanyService(newMemCompanyRepo())

	_, err := svc.UpsertRateOverride(context.Background(), "BranchA", &domain.UpsertRateOverrideRequest{
		PartTimeRate: decPtr("-1"),
	})
	assert.Error(t, err)
}
