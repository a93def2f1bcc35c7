package payroll

import (
	"time"

	"github.com/nomina-ops/nomina-backend-go/internal/domain/company"
	"github.com/shopspring/decimal"
)

// Half selects one of the two halves of a biweekly (quincena) pay window.
type Half string

const (
	HalfFirst  Half = "first"  // days 1-15
	HalfSecond Half = "second" // days 16 to end of month
)

var HalfValues = []string{string(HalfFirst), string(HalfSecond)}

// Period is a half-month pay window. Month is 0-based. A period is uniquely
// identified by (Year, Month, Half); StartDay/EndDay are derived from the
// calendar and never persisted.
type Period struct {
	Year     int
	Month    int
	Half     Half
	StartDay int
	EndDay   int
}

// Start returns the first day of the period as a time.Time.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month+1), p.StartDay, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether the day-of-month falls inside the period.
func (p Period) Contains(day int) bool {
	return day >= p.StartDay && day <= p.EndDay
}

// Line is the computed payroll result for one employee, one company, one
// period. It is recomputed on every read and never persisted by this
// package; all monetary fields are exact decimals.
type Line struct {
	EmployeeName       string
	Tier               company.InsuranceTier
	WorkedDays         int
	HoursPerWorkedDay  int
	TotalHours         int
	RegularRate        decimal.Decimal
	OvertimeRate       decimal.Decimal
	OvertimeHours      int
	ExtraIncome        decimal.Decimal
	GrossIncome        decimal.Decimal
	InsuranceDeduction decimal.Decimal
	PurchasesDeduction decimal.Decimal
	AdvanceDeduction   decimal.Decimal
	OtherDeduction     decimal.Decimal
	TotalDeductions    decimal.Decimal
	NetPay             decimal.Decimal
}

// Deductions are the editable per-employee amounts merged into a Line at
// computation time. Zero values are the absence of an edit.
type Deductions struct {
	Purchases   decimal.Decimal
	Advance     decimal.Decimal
	Other       decimal.Decimal
	ExtraAmount decimal.Decimal
}
