package payroll

import (
	"testing"

	"github.com/nomina-ops/nomina-backend-go/internal/domain/company"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/payroll"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstHalfJan2024() payroll.Period {
	return payroll.Period{Year: 2024, Month: 0, Half: payroll.HalfFirst, StartDay: 1, EndDay: 15}
}

func asg(companyKey, employee string, day int, code shift.ShiftCode) shift.Assignment {
	return shift.Assignment{CompanyKey: companyKey, EmployeeName: employee, Year: 2024, Month: 0, Day: day, Code: code}
}

func TestAggregate_WorkedDayCounting(t *testing.T) {
	shifts := []shift.Assignment{
		asg("BranchA", "Maria", 1, shift.ShiftCodeDay),
		asg("BranchA", "Maria", 2, shift.ShiftCodeNight),
		asg("BranchA", "Maria", 3, shift.ShiftCodeRest),
		asg("BranchA", "Maria", 4, shift.ShiftCodeNone),
	}

	result := Aggregate(firstHalfJan2024(), shifts, nil)

	require.Len(t, result["BranchA"], 1)
	line := result["BranchA"][0]
	// Only D and N count; L and empty do not.
	assert.Equal(t, 2, line.WorkedDays)
	assert.Equal(t, DefaultHoursPerWorkedDay, line.HoursPerWorkedDay)
	assert.Equal(t, 16, line.TotalHours)
	assert.Equal(t, company.InsuranceTierFullTime, line.Tier)
}

func TestAggregate_HalfRangeFilterApplies(t *testing.T) {
	// Records outside days 1-15 belong to the other half even though the
	// month already matches.
	shifts := []shift.Assignment{
		asg("BranchA", "Maria", 15, shift.ShiftCodeDay),
		asg("BranchA", "Maria", 16, shift.ShiftCodeDay),
		asg("BranchA", "Maria", 31, shift.ShiftCodeNight),
	}

	result := Aggregate(firstHalfJan2024(), shifts, nil)
	require.Len(t, result["BranchA"], 1)
	assert.Equal(t, 1, result["BranchA"][0].WorkedDays)

	second := payroll.Period{Year: 2024, Month: 0, Half: payroll.HalfSecond, StartDay: 16, EndDay: 31}
	result = Aggregate(second, shifts, nil)
	require.Len(t, result["BranchA"], 1)
	assert.Equal(t, 2, result["BranchA"][0].WorkedDays)
}

func TestAggregate_OtherMonthExcluded(t *testing.T) {
	shifts := []shift.Assignment{
		asg("BranchA", "Maria", 3, shift.ShiftCodeDay),
		{CompanyKey: "BranchA", EmployeeName: "Maria", Year: 2024, Month: 1, Day: 3, Code: shift.ShiftCodeDay},
		{CompanyKey: "BranchA", EmployeeName: "Maria", Year: 2023, Month: 0, Day: 3, Code: shift.ShiftCodeDay},
	}

	result := Aggregate(firstHalfJan2024(), shifts, nil)
	require.Len(t, result["BranchA"], 1)
	assert.Equal(t, 1, result["BranchA"][0].WorkedDays)
}

func TestAggregate_ZeroWorkedDaysDropped(t *testing.T) {
	// All-L schedules produce no payroll line at all.
	shifts := []shift.Assignment{
		asg("BranchA", "Maria", 3, shift.ShiftCodeRest),
		asg("BranchA", "Maria", 4, shift.ShiftCodeRest),
		asg("BranchA", "Jose", 5, shift.ShiftCodeDay),
	}

	result := Aggregate(firstHalfJan2024(), shifts, nil)

	require.Len(t, result["BranchA"], 1)
	assert.Equal(t, "Jose", result["BranchA"][0].EmployeeName)
}

func TestAggregate_GroupsByCompanyThenEmployee(t *testing.T) {
	shifts := []shift.Assignment{
		asg("BranchA", "Maria", 3, shift.ShiftCodeDay),
		asg("BranchA", "Jose", 4, shift.ShiftCodeDay),
		asg("BranchB", "Maria", 3, shift.ShiftCodeNight),
	}

	result := Aggregate(firstHalfJan2024(), shifts, nil)

	require.Len(t, result, 2)
	require.Len(t, result["BranchA"], 2)
	require.Len(t, result["BranchB"], 1)
	// Sorted by employee name for stable output.
	assert.Equal(t, "Jose", result["BranchA"][0].EmployeeName)
	assert.Equal(t, "Maria", result["BranchA"][1].EmployeeName)
}

func TestAggregate_ProfileSettingsApplied(t *testing.T) {
	shifts := []shift.Assignment{
		asg("BranchA", "Maria", 3, shift.ShiftCodeDay),
		asg("BranchA", "Maria", 4, shift.ShiftCodeDay),
	}
	profiles := map[ProfileKey]company.EmployeeProfile{
		{CompanyKey: "BranchA", EmployeeName: "Maria"}: {
			CompanyKey:         "BranchA",
			EmployeeName:       "Maria",
			Tier:               company.InsuranceTierPartTime,
			HoursPerWorkedDay:  6,
			DefaultExtraAmount: decimal.NewFromInt(300),
		},
	}

	result := Aggregate(firstHalfJan2024(), shifts, profiles)

	require.Len(t, result["BranchA"], 1)
	line := result["BranchA"][0]
	assert.Equal(t, company.InsuranceTierPartTime, line.Tier)
	assert.Equal(t, 6, line.HoursPerWorkedDay)
	assert.Equal(t, 12, line.TotalHours)
	assert.True(t, line.DefaultExtraAmount.Equal(decimal.NewFromInt(300)))
}

func TestAggregate_NegativeConfiguredHoursClampedToDefault(t *testing.T) {
	shifts := []shift.Assignment{
		asg("BranchA", "Maria", 3, shift.ShiftCodeDay),
	}
	profiles := map[ProfileKey]company.EmployeeProfile{
		{CompanyKey: "BranchA", EmployeeName: "Maria"}: {
			CompanyKey:        "BranchA",
			EmployeeName:      "Maria",
			HoursPerWorkedDay: -4,
		},
	}

	result := Aggregate(firstHalfJan2024(), shifts, profiles)

	require.Len(t, result["BranchA"], 1)
	assert.Equal(t, DefaultHoursPerWorkedDay, result["BranchA"][0].HoursPerWorkedDay)
}

func TestAggregate_StableAcrossCalls(t *testing.T) {
	shifts := []shift.Assignment{
		asg("BranchA", "Maria", 3, shift.ShiftCodeDay),
		asg("BranchA", "Ana", 4, shift.ShiftCodeDay),
		asg("BranchA", "Jose", 5, shift.ShiftCodeNight),
	}

	first := Aggregate(firstHalfJan2024(), shifts, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Aggregate(firstHalfJan2024(), shifts, nil))
	}
}
