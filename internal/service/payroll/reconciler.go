package payroll

import (
	"github.com/nomina-ops/nomina-backend-go/internal/domain/company"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Reconcile combines an aggregated summary, the employee's editable
// deductions and the resolved insurance rates into the final payroll line.
//
// It is a pure function of its inputs: the grid, the exporter and the
// report tab all recompute the same line and must never disagree, so
// identical arguments must yield identical output. Decimal arithmetic keeps
// every monetary identity exact; rounding happens only at presentation.
func Reconcile(summary Summary, deductions payroll.Deductions, rates company.Rates) payroll.Line {
	totalHours := decimal.NewFromInt(int64(summary.TotalHours))
	overtimeHours := decimal.NewFromInt(0)

	// The override wins only when strictly positive; a zero or unset
	// override does not suppress a configured default.
	extraIncome := summary.DefaultExtraAmount
	if deductions.ExtraAmount.IsPositive() {
		extraIncome = deductions.ExtraAmount
	}

	regularRate := rates.BaseHourlyRate
	overtimeRate := decimal.Zero

	grossIncome := regularRate.Mul(totalHours).
		Add(overtimeRate.Mul(overtimeHours)).
		Add(extraIncome)

	insurance := rates.FullTimeRate
	if summary.Tier == company.InsuranceTierPartTime {
		insurance = rates.PartTimeRate
	}

	totalDeductions := insurance.
		Add(deductions.Purchases).
		Add(deductions.Advance).
		Add(deductions.Other)

	// Net pay may be negative; it is a reportable outcome, not an error,
	// so no clamping.
	netPay := grossIncome.Sub(totalDeductions)

	return payroll.Line{
		EmployeeName:       summary.EmployeeName,
		Tier:               summary.Tier,
		WorkedDays:         summary.WorkedDays,
		HoursPerWorkedDay:  summary.HoursPerWorkedDay,
		TotalHours:         summary.TotalHours,
		RegularRate:        regularRate,
		OvertimeRate:       overtimeRate,
		OvertimeHours:      0,
		ExtraIncome:        extraIncome,
		GrossIncome:        grossIncome,
		InsuranceDeduction: insurance,
		PurchasesDeduction: deductions.Purchases,
		AdvanceDeduction:   deductions.Advance,
		OtherDeduction:     deductions.Other,
		TotalDeductions:    totalDeductions,
		NetPay:             netPay,
	}
}
