package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nomina-ops/nomina-backend-go/internal/domain/company"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/payroll"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/shift"
	"github.com/nomina-ops/nomina-backend-go/internal/service/deduction"
	"github.com/nomina-ops/nomina-backend-go/internal/service/period"
)

type PayrollServiceImpl struct {
	shiftRepo   shift.Repository
	companyRepo company.Repository
	deductions  *deduction.Ledger
	periods     *period.Calculator
	rates       *RateResolver
	now         func() time.Time
}

func NewPayrollService(
	shiftRepo shift.Repository,
	companyRepo company.Repository,
	deductions *deduction.Ledger,
	periods *period.Calculator,
	rates *RateResolver,
) payroll.Service {
	return &PayrollServiceImpl{
		shiftRepo:   shiftRepo,
		companyRepo: companyRepo,
		deductions:  deductions,
		periods:     periods,
		rates:       rates,
		now:         time.Now,
	}
}

func (s *PayrollServiceImpl) ComputeForPeriod(ctx context.Context, p payroll.Period, companyKey string) (map[string][]payroll.Line, error) {
	// Normalize the period so the day-range bounds are always the derived
	// ones, whatever the caller filled in.
	p, err := s.periods.FromParts(p.Year, p.Month, p.Half)
	if err != nil {
		return nil, err
	}

	var shifts []shift.Assignment
	if companyKey == "" {
		shifts, err = s.shiftRepo.ListByMonth(ctx, p.Year, p.Month)
	} else {
		shifts, err = s.shiftRepo.ListByCompanyMonth(ctx, companyKey, p.Year, p.Month)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch shifts for period: %w", err)
	}

	profiles, err := s.loadProfiles(ctx, shifts)
	if err != nil {
		return nil, err
	}

	summaries := Aggregate(p, shifts, profiles)

	result := make(map[string][]payroll.Line, len(summaries))
	for key, companySummaries := range summaries {
		rates, err := s.resolveRates(ctx, key)
		if err != nil {
			return nil, err
		}

		lines := make([]payroll.Line, 0, len(companySummaries))
		for _, summary := range companySummaries {
			deductions := s.deductions.Read(key, summary.EmployeeName)
			lines = append(lines, Reconcile(summary, deductions, rates))
		}
		result[key] = lines
	}
	return result, nil
}

// loadProfiles fetches the employee profiles of every company present in
// the shift set. A missing profile is not an error; the aggregator falls
// back to defaults.
func (s *PayrollServiceImpl) loadProfiles(ctx context.Context, shifts []shift.Assignment) (map[ProfileKey]company.EmployeeProfile, error) {
	companies := make(map[string]struct{})
	for _, rec := range shifts {
		companies[rec.CompanyKey] = struct{}{}
	}

	profiles := make(map[ProfileKey]company.EmployeeProfile)
	for key := range companies {
		companyProfiles, err := s.companyRepo.ListProfilesByCompany(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("fetch profiles for %s: %w", key, err)
		}
		for _, p := range companyProfiles {
			profiles[ProfileKey{p.CompanyKey, p.EmployeeName}] = p
		}
	}
	return profiles, nil
}

func (s *PayrollServiceImpl) resolveRates(ctx context.Context, companyKey string) (company.Rates, error) {
	override, err := s.companyRepo.GetRateOverride(ctx, companyKey)
	if err != nil {
		if errors.Is(err, company.ErrOverrideNotFound) {
			return s.rates.Resolve(nil), nil
		}
		return company.Rates{}, fmt.Errorf("fetch rate override for %s: %w", companyKey, err)
	}
	return s.rates.Resolve(&override), nil
}

func (s *PayrollServiceImpl) ListAvailablePeriods(ctx context.Context) ([]payroll.Period, error) {
	records, err := s.shiftRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch recorded shifts: %w", err)
	}
	return s.periods.Available(records, s.now()), nil
}
