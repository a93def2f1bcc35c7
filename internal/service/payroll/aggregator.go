package payroll

import (
	"sort"

	"github.com/nomina-ops/nomina-backend-go/internal/domain/company"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/payroll"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
)

// DefaultHoursPerWorkedDay applies when an employee has no profile or the
// configured value is unusable.
const DefaultHoursPerWorkedDay = 8

// Summary is the aggregation stage's per-employee output: worked time plus
// the profile settings the reconciler needs. Monetary fields are filled in
// by the reconciler.
type Summary struct {
	CompanyKey         string
	EmployeeName       string
	Tier               company.InsuranceTier
	WorkedDays         int
	HoursPerWorkedDay  int
	TotalHours         int
	DefaultExtraAmount decimal.Decimal
}

// ProfileKey addresses an employee profile in the lookup map handed to
// Aggregate.
type ProfileKey struct {
	CompanyKey   string
	EmployeeName string
}

// Aggregate filters the shifts down to the period's day range, groups them
// by company then employee and counts worked days. Only D and N count as
// worked; L is a persisted record but not a worked day. Employees with zero
// worked days in the range are dropped entirely.
//
// The day-range filter is applied here even when the caller already queried
// by year and month: the month alone does not select the half.
//
// Output is sorted by employee name per company, so repeated calls with the
// same input produce the same ordering.
func Aggregate(period payroll.Period, shifts []shift.Assignment, profiles map[ProfileKey]company.EmployeeProfile) map[string][]Summary {
	type empKey struct {
		companyKey   string
		employeeName string
	}

	days := make(map[empKey]map[int]shift.ShiftCode)
	for _, rec := range shifts {
		if rec.Year != period.Year || rec.Month != period.Month {
			continue
		}
		if !period.Contains(rec.Day) {
			continue
		}
		k := empKey{rec.CompanyKey, rec.EmployeeName}
		if days[k] == nil {
			days[k] = make(map[int]shift.ShiftCode)
		}
		days[k][rec.Day] = rec.Code
	}

	result := make(map[string][]Summary)
	for k, dayCodes := range days {
		worked := 0
		for _, code := range dayCodes {
			if code.IsWorked() {
				worked++
			}
		}
		if worked == 0 {
			continue
		}

		summary := Summary{
			CompanyKey:        k.companyKey,
			EmployeeName:      k.employeeName,
			Tier:              company.InsuranceTierFullTime,
			WorkedDays:        worked,
			HoursPerWorkedDay: DefaultHoursPerWorkedDay,
		}
		if profile, ok := profiles[ProfileKey{k.companyKey, k.employeeName}]; ok {
			if profile.Tier != "" {
				summary.Tier = profile.Tier
			}
			// A non-positive configured value is clamped back to the
			// default rather than surfaced as a failure.
			if profile.HoursPerWorkedDay > 0 {
				summary.HoursPerWorkedDay = profile.HoursPerWorkedDay
			}
			summary.DefaultExtraAmount = profile.DefaultExtraAmount
		}
		summary.TotalHours = summary.WorkedDays * summary.HoursPerWorkedDay

		result[k.companyKey] = append(result[k.companyKey], summary)
	}

	for companyKey := range result {
		lines := result[companyKey]
		sort.Slice(lines, func(i, j int) bool {
			return lines[i].EmployeeName < lines[j].EmployeeName
		})
		result[companyKey] = lines
	}
	return result
}
