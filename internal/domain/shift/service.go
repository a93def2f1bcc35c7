package shift

import "context"

// Service is the shift ledger exposed to the schedule grid and to payroll.
type Service interface {
	// GetOrCreate returns the persisted assignment for the key, or a
	// synthesized empty one that is not persisted until a non-empty write.
	GetOrCreate(ctx context.Context, key Key) (Assignment, error)

	// SetShift assigns, changes or clears a day. An exclusive code already
	// held by another employee on the same company/day is rejected with
	// *ConflictError; an empty code deletes the record.
	SetShift(ctx context.Context, req SetShiftRequest) error

	ListForCompanyEmployeeMonth(ctx context.Context, companyKey, employeeName string, year, month int) ([]Assignment, error)
	ListForCompanyMonth(ctx context.Context, companyKey string, year, month int) ([]Assignment, error)
	ListForMonth(ctx context.Context, year, month int) ([]Assignment, error)
}
