package payroll

import (
	"github.com/nomina-ops/nomina-backend-go/internal/domain/company"
)

// RateResolver resolves a company's insurance rates against the system
// defaults. Resolution never fails: no override at all is the common case
// and yields the full defaults, and a partial override falls back field by
// field rather than to zero.
type RateResolver struct {
	defaults company.Rates
}

func NewRateResolver(defaults company.Rates) *RateResolver {
	return &RateResolver{defaults: defaults}
}

// Resolve applies the override on top of the defaults. A nil override or a
// nil field keeps the default for that field.
func (r *RateResolver) Resolve(override *company.RateOverride) company.Rates {
	rates := r.defaults
	if override == nil {
		return rates
	}
	if override.FullTimeRate != nil {
		rates.FullTimeRate = *override.FullTimeRate
	}
	if override.PartTimeRate != nil {
		rates.PartTimeRate = *override.PartTimeRate
	}
	if override.BaseHourlyRate != nil {
		rates.BaseHourlyRate = *override.BaseHourlyRate
	}
	return rates
}
