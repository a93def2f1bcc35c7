package company

import (
	"context"
	"errors"

	domain "github.com/nomina-ops/nomina-backend-go/internal/domain/company"
)

type CompanyServiceImpl struct {
	repo domain.Repository
}

func NewCompanyService(repo domain.Repository) *CompanyServiceImpl {
	return &CompanyServiceImpl{repo: repo}
}

func (s *CompanyServiceImpl) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return s.repo.ListCompanies(ctx)
}

func (s *CompanyServiceImpl) GetProfile(ctx context.Context, companyKey, employeeName string) (domain.EmployeeProfile, error) {
	return s.repo.GetProfile(ctx, companyKey, employeeName)
}

func (s *CompanyServiceImpl) ListProfiles(ctx context.Context, companyKey string) ([]domain.EmployeeProfile, error) {
	return s.repo.ListProfilesByCompany(ctx, companyKey)
}

// UpsertProfile merges the request into the stored profile. Fields absent
// from the request keep their stored value; a brand-new profile starts from
// the payroll defaults (full-time tier, 8 hours per worked day).
func (s *CompanyServiceImpl) UpsertProfile(ctx context.Context, companyKey, employeeName string, req *domain.UpsertEmployeeProfileRequest) (domain.EmployeeProfile, error) {
	if err := req.Validate(); err != nil {
		return domain.EmployeeProfile{}, err
	}

	profile, err := s.repo.GetProfile(ctx, companyKey, employeeName)
	if errors.Is(err, domain.ErrProfileNotFound) {
		profile = domain.EmployeeProfile{
			CompanyKey:        companyKey,
			EmployeeName:      employeeName,
			Tier:              domain.InsuranceTierFullTime,
			HoursPerWorkedDay: 8,
		}
	} else if err != nil {
		return domain.EmployeeProfile{}, err
	}

	if req.Tier != nil {
		profile.Tier = domain.InsuranceTier(*req.Tier)
	}
	if req.HoursPerWorkedDay != nil {
		profile.HoursPerWorkedDay = *req.HoursPerWorkedDay
	}
	if req.DefaultExtraAmount != nil {
		profile.DefaultExtraAmount = *req.DefaultExtraAmount
	}

	return s.repo.UpsertProfile(ctx, profile)
}

func (s *CompanyServiceImpl) GetRateOverride(ctx context.Context, companyKey string) (domain.RateOverride, error) {
	return s.repo.GetRateOverride(ctx, companyKey)
}

// UpsertRateOverride merges the request into the stored override row.
// Setting a field that was previously nil narrows the fallback; there is no
// way to clear a field back to nil through this path.
func (s *CompanyServiceImpl) UpsertRateOverride(ctx context.Context, companyKey string, req *domain.UpsertRateOverrideRequest) (domain.RateOverride, error) {
	if err := req.Validate(); err != nil {
		return domain.RateOverride{}, err
	}

	override, err := s.repo.GetRateOverride(ctx, companyKey)
	if errors.Is(err, domain.ErrOverrideNotFound) {
		override = domain.RateOverride{CompanyKey: companyKey}
	} else if err != nil {
		return domain.RateOverride{}, err
	}

	if req.FullTimeRate != nil {
		override.FullTimeRate = req.FullTimeRate
	}
	if req.PartTimeRate != nil {
		override.PartTimeRate = req.PartTimeRate
	}
	if req.BaseHourlyRate != nil {
		override.BaseHourlyRate = req.BaseHourlyRate
	}

	return s.repo.UpsertRateOverride(ctx, override)
}
