package shift

import "context"

// Repository defines data access for shift assignments. Records exist only
// for non-empty codes; deleting is the persisted form of "unassigned".
type Repository interface {
	GetByKey(ctx context.Context, key Key) (Assignment, error)
	ListByCompanyEmployeeMonth(ctx context.Context, companyKey, employeeName string, year, month int) ([]Assignment, error)
	ListByCompanyMonth(ctx context.Context, companyKey string, year, month int) ([]Assignment, error)
	ListByMonth(ctx context.Context, year, month int) ([]Assignment, error)
	ListByCompanyDay(ctx context.Context, companyKey string, year, month, day int) ([]Assignment, error)

	// ListAll returns every recorded assignment; used only to derive the
	// set of available historical periods.
	ListAll(ctx context.Context) ([]Assignment, error)

	Upsert(ctx context.Context, a Assignment) error
	Delete(ctx context.Context, key Key) error
}
