package company

import "context"

type Service interface {
	ListCompanies(ctx context.Context) ([]Company, error)

	GetProfile(ctx context.Context, companyKey, employeeName string) (EmployeeProfile, error)
	ListProfiles(ctx context.Context, companyKey string) ([]EmployeeProfile, error)
	UpsertProfile(ctx context.Context, companyKey, employeeName string, req *UpsertEmployeeProfileRequest) (EmployeeProfile, error)

	GetRateOverride(ctx context.Context, companyKey string) (RateOverride, error)
	UpsertRateOverride(ctx context.Context, companyKey string, req *UpsertRateOverrideRequest) (RateOverride, error)
}
