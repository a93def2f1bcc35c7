package company

import (
	"time"

	"github.com/shopspring/decimal"
)

// InsuranceTier is the statutory contribution tier of an employee.
type InsuranceTier string

const (
	InsuranceTierFullTime InsuranceTier = "TC"
	InsuranceTierPartTime InsuranceTier = "MT"
)

var InsuranceTierValues = []string{
	string(InsuranceTierFullTime),
	string(InsuranceTierPartTime),
}

type Company struct {
	Key       string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeProfile holds the per-company payroll settings of one employee.
type EmployeeProfile struct {
	CompanyKey         string
	EmployeeName       string
	Tier               InsuranceTier
	HoursPerWorkedDay  int
	DefaultExtraAmount decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RateOverride is a per-company override of the statutory insurance rates
// and the base hourly rate. Any nil field falls back to the system default
// for that field; partial configuration is expected.
type RateOverride struct {
	CompanyKey     string
	FullTimeRate   *decimal.Decimal
	PartTimeRate   *decimal.Decimal
	BaseHourlyRate *decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Rates is a fully resolved set of insurance rates for one company.
type Rates struct {
	FullTimeRate   decimal.Decimal
	PartTimeRate   decimal.Decimal
	BaseHourlyRate decimal.Decimal
}
