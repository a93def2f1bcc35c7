package period

import (
	"sort"
	"time"

	"github.com/nomina-ops/nomina-backend-go/internal/domain/payroll"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/shift"
)

// Calculator derives biweekly pay windows from calendar dates and from
// recorded shifts. All methods are pure; the calculator holds no state.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Current returns the period containing the reference date: days 1-15 are
// the first half, day 16 onward the second.
func (c *Calculator) Current(ref time.Time) payroll.Period {
	year := ref.Year()
	month := int(ref.Month()) - 1
	half := payroll.HalfFirst
	if ref.Day() > 15 {
		half = payroll.HalfSecond
	}
	return c.build(year, month, half)
}

// FromParts builds the period identified by (year, 0-based month, half),
// deriving the start and end days from the calendar month length.
func (c *Calculator) FromParts(year, month int, half payroll.Half) (payroll.Period, error) {
	if year < 1 || month < 0 || month > 11 {
		return payroll.Period{}, payroll.ErrInvalidPeriod
	}
	if half != payroll.HalfFirst && half != payroll.HalfSecond {
		return payroll.Period{}, payroll.ErrInvalidPeriod
	}
	return c.build(year, month, half), nil
}

func (c *Calculator) build(year, month int, half payroll.Half) payroll.Period {
	p := payroll.Period{Year: year, Month: month, Half: half}
	if half == payroll.HalfFirst {
		p.StartDay = 1
		p.EndDay = 15
	} else {
		p.StartDay = 16
		p.EndDay = lastDayOfMonth(year, month)
	}
	return p
}

// lastDayOfMonth handles variable month lengths, including leap-year
// February: day 0 of the next month is the last day of this one.
func lastDayOfMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// Available derives the distinct periods present in the recorded shifts and
// always includes the period containing now, even when it has no records.
// Ordering is most recent first; the schedule selector relies on it.
func (c *Calculator) Available(records []shift.Assignment, now time.Time) []payroll.Period {
	type key struct {
		year  int
		month int
		half  payroll.Half
	}

	seen := make(map[key]payroll.Period)
	add := func(p payroll.Period) {
		seen[key{p.Year, p.Month, p.Half}] = p
	}

	for _, rec := range records {
		if rec.Code == shift.ShiftCodeNone {
			continue
		}
		half := payroll.HalfFirst
		if rec.Day > 15 {
			half = payroll.HalfSecond
		}
		add(c.build(rec.Year, rec.Month, half))
	}
	add(c.Current(now))

	periods := make([]payroll.Period, 0, len(seen))
	for _, p := range seen {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Start().After(periods[j].Start())
	})
	return periods
}
