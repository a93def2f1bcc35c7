package period

import (
	"testing"
	"time"

	"github.com/nomina-ops/nomina-backend-go/internal/domain/payroll"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent_HalfSelection(t *testing.T) {
	calc := NewCalculator()

	first := calc.Current(time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, payroll.HalfFirst, first.Half)
	assert.Equal(t, 1, first.StartDay)
	assert.Equal(t, 15, first.EndDay)

	second := calc.Current(time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, payroll.HalfSecond, second.Half)
	assert.Equal(t, 16, second.StartDay)
	assert.Equal(t, 31, second.EndDay)
	assert.Equal(t, 0, second.Month)
}

func TestFromParts_MonthLengths(t *testing.T) {
	calc := NewCalculator()

	cases := []struct {
		name    string
		year    int
		month   int
		half    payroll.Half
		wantEnd int
	}{
		{"leap february second half", 2024, 1, payroll.HalfSecond, 29},
		{"non-leap february second half", 2023, 1, payroll.HalfSecond, 28},
		{"30-day month first half", 2024, 3, payroll.HalfFirst, 15},
		{"30-day month second half", 2024, 3, payroll.HalfSecond, 30},
		{"31-day month second half", 2024, 11, payroll.HalfSecond, 31},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := calc.FromParts(c.year, c.month, c.half)
			require.NoError(t, err)
			assert.Equal(t, c.wantEnd, p.EndDay)
		})
	}
}

func TestFromParts_Invalid(t *testing.T) {
	calc := NewCalculator()

	_, err := calc.FromParts(2024, 12, payroll.HalfFirst)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)

	_, err = calc.FromParts(2024, 0, payroll.Half("third"))
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestAvailable_DerivesAndSorts(t *testing.T) {
	calc := NewCalculator()
	now := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	records := []shift.Assignment{
		{CompanyKey: "BranchA", EmployeeName: "Maria", Year: 2024, Month: 0, Day: 3, Code: shift.ShiftCodeDay},
		{CompanyKey: "BranchA", EmployeeName: "Maria", Year: 2024, Month: 0, Day: 20, Code: shift.ShiftCodeNight},
		{CompanyKey: "BranchB", EmployeeName: "Jose", Year: 2023, Month: 11, Day: 28, Code: shift.ShiftCodeRest},
		// Duplicate period, must not appear twice
		{CompanyKey: "BranchA", EmployeeName: "Jose", Year: 2024, Month: 0, Day: 4, Code: shift.ShiftCodeDay},
		// Empty codes contribute nothing
		{CompanyKey: "BranchA", EmployeeName: "Ana", Year: 2022, Month: 5, Day: 1, Code: shift.ShiftCodeNone},
	}

	periods := calc.Available(records, now)

	require.Len(t, periods, 4)
	// Most recent first: current period (2024-03 first) leads even though
	// it has no records.
	assert.Equal(t, payroll.Period{Year: 2024, Month: 2, Half: payroll.HalfFirst, StartDay: 1, EndDay: 15}, periods[0])
	assert.Equal(t, payroll.Period{Year: 2024, Month: 0, Half: payroll.HalfSecond, StartDay: 16, EndDay: 31}, periods[1])
	assert.Equal(t, payroll.Period{Year: 2024, Month: 0, Half: payroll.HalfFirst, StartDay: 1, EndDay: 15}, periods[2])
	assert.Equal(t, payroll.Period{Year: 2023, Month: 11, Half: payroll.HalfSecond, StartDay: 16, EndDay: 31}, periods[3])
}

func TestAvailable_EmptyRecordsStillIncludesCurrent(t *testing.T) {
	calc := NewCalculator()
	now := time.Date(2023, time.February, 20, 0, 0, 0, 0, time.UTC)

	periods := calc.Available(nil, now)

	require.Len(t, periods, 1)
	assert.Equal(t, 2023, periods[0].Year)
	assert.Equal(t, 1, periods[0].Month)
	assert.Equal(t, payroll.HalfSecond, periods[0].Half)
	assert.Equal(t, 28, periods[0].EndDay)
}
