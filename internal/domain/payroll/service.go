package payroll

import "context"

// Service is the payroll computation engine consumed by the schedule grid,
// the exporter and the report tab. Computation is derived state: the same
// period and inputs always produce the same lines, so independent surfaces
// never disagree.
type Service interface {
	// ComputeForPeriod returns the reconciled payroll lines for the period,
	// grouped by company key. An empty companyKey computes for all
	// companies. Employees with zero worked days in the period are absent
	// from the result.
	ComputeForPeriod(ctx context.Context, period Period, companyKey string) (map[string][]Line, error)

	// ListAvailablePeriods derives the distinct periods present in recorded
	// shifts, always including the current period, most recent first.
	ListAvailablePeriods(ctx context.Context) ([]Period, error)
}
