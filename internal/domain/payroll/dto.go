package payroll

import (
	"github.com/nomina-ops/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PeriodResponse struct {
	Year     int    `json:"year"`
	Month    int    `json:"month"` // 0-based
	Half     string `json:"half"`
	StartDay int    `json:"start_day"`
	EndDay   int    `json:"end_day"`
}

func NewPeriodResponse(p Period) PeriodResponse {
	return PeriodResponse{
		Year:     p.Year,
		Month:    p.Month,
		Half:     string(p.Half),
		StartDay: p.StartDay,
		EndDay:   p.EndDay,
	}
}

type LineResponse struct {
	EmployeeName       string          `json:"employee_name"`
	Tier               string          `json:"tier"`
	WorkedDays         int             `json:"worked_days"`
	HoursPerWorkedDay  int             `json:"hours_per_worked_day"`
	TotalHours         int             `json:"total_hours"`
	RegularRate        decimal.Decimal `json:"regular_rate"`
	OvertimeRate       decimal.Decimal `json:"overtime_rate"`
	OvertimeHours      int             `json:"overtime_hours"`
	ExtraIncome        decimal.Decimal `json:"extra_income"`
	GrossIncome        decimal.Decimal `json:"gross_income"`
	InsuranceDeduction decimal.Decimal `json:"insurance_deduction"`
	PurchasesDeduction decimal.Decimal `json:"purchases_deduction"`
	AdvanceDeduction   decimal.Decimal `json:"advance_deduction"`
	OtherDeduction     decimal.Decimal `json:"other_deduction"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	NetPay             decimal.Decimal `json:"net_pay"`
}

func NewLineResponse(l Line) LineResponse {
	return LineResponse{
		EmployeeName:       l.EmployeeName,
		Tier:               string(l.Tier),
		WorkedDays:         l.WorkedDays,
		HoursPerWorkedDay:  l.HoursPerWorkedDay,
		TotalHours:         l.TotalHours,
		RegularRate:        l.RegularRate,
		OvertimeRate:       l.OvertimeRate,
		OvertimeHours:      l.OvertimeHours,
		ExtraIncome:        l.ExtraIncome,
		GrossIncome:        l.GrossIncome,
		InsuranceDeduction: l.InsuranceDeduction,
		PurchasesDeduction: l.PurchasesDeduction,
		AdvanceDeduction:   l.AdvanceDeduction,
		OtherDeduction:     l.OtherDeduction,
		TotalDeductions:    l.TotalDeductions,
		NetPay:             l.NetPay,
	}
}

type ComputeRequest struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"` // 0-based
	Half       string `json:"half"`
	CompanyKey string `json:"company_key"` // empty means all companies
}

func (r *ComputeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is required"})
	}
	if r.Month < 0 || r.Month > 11 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 0 and 11"})
	}
	if !validator.IsInSlice(r.Half, HalfValues) {
		errs = append(errs, validator.ValidationError{Field: "half", Message: "must be 'first' or 'second'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
