package company

import (
	"github.com/nomina-ops/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CompanyResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

func NewCompanyResponse(c Company) CompanyResponse {
	return CompanyResponse{Key: c.Key, Name: c.Name}
}

type EmployeeProfileResponse struct {
	CompanyKey         string          `json:"company_key"`
	EmployeeName       string          `json:"employee_name"`
	Tier               string          `json:"tier"`
	HoursPerWorkedDay  int             `json:"hours_per_worked_day"`
	DefaultExtraAmount decimal.Decimal `json:"default_extra_amount"`
}

func NewEmployeeProfileResponse(p EmployeeProfile) EmployeeProfileResponse {
	return EmployeeProfileResponse{
		CompanyKey:         p.CompanyKey,
		EmployeeName:       p.EmployeeName,
		Tier:               string(p.Tier),
		HoursPerWorkedDay:  p.HoursPerWorkedDay,
		DefaultExtraAmount: p.DefaultExtraAmount,
	}
}

type UpsertEmployeeProfileRequest struct {
	Tier               *string          `json:"tier,omitempty"`
	HoursPerWorkedDay  *int             `json:"hours_per_worked_day,omitempty"`
	DefaultExtraAmount *decimal.Decimal `json:"default_extra_amount,omitempty"`
}

func (r *UpsertEmployeeProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Tier != nil && !validator.IsInSlice(*r.Tier, InsuranceTierValues) {
		errs = append(errs, validator.ValidationError{Field: "tier", Message: "must be 'TC' or 'MT'"})
	}
	if r.HoursPerWorkedDay != nil && *r.HoursPerWorkedDay < 1 {
		errs = append(errs, validator.ValidationError{Field: "hours_per_worked_day", Message: "must be at least 1"})
	}
	if r.DefaultExtraAmount != nil && r.DefaultExtraAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "default_extra_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RateOverrideResponse struct {
	CompanyKey     string           `json:"company_key"`
	FullTimeRate   *decimal.Decimal `json:"full_time_rate,omitempty"`
	PartTimeRate   *decimal.Decimal `json:"part_time_rate,omitempty"`
	BaseHourlyRate *decimal.Decimal `json:"base_hourly_rate,omitempty"`
}

func NewRateOverrideResponse(o RateOverride) RateOverrideResponse {
	return RateOverrideResponse{
		CompanyKey:     o.CompanyKey,
		FullTimeRate:   o.FullTimeRate,
		PartTimeRate:   o.PartTimeRate,
		BaseHourlyRate: o.BaseHourlyRate,
	}
}

type UpsertRateOverrideRequest struct {
	FullTimeRate   *decimal.Decimal `json:"full_time_rate,omitempty"`
	PartTimeRate   *decimal.Decimal `json:"part_time_rate,omitempty"`
	BaseHourlyRate *decimal.Decimal `json:"base_hourly_rate,omitempty"`
}

func (r *UpsertRateOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullTimeRate != nil && r.FullTimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "full_time_rate", Message: "must be non-negative"})
	}
	if r.PartTimeRate != nil && r.PartTimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "part_time_rate", Message: "must be non-negative"})
	}
	if r.BaseHourlyRate != nil && r.BaseHourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_hourly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
