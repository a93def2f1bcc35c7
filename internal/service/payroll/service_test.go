package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/nomina-ops/nomina-backend-go/internal/domain/company"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/payroll"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/shift"
	"github.com/nomina-ops/nomina-backend-go/internal/service/deduction"
	"github.com/nomina-ops/nomina-backend-go/internal/service/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memShiftRepo struct {
	records []shift.Assignment
}

func (m *memShiftRepo) GetByKey(_ context.Context, key shift.Key) (shift.Assignment, error) {
	for _, a := range m.records {
		if a.Key() == key {
			return a, nil
		}
	}
	return shift.Assignment{}, shift.ErrAssignmentNotFound
}

func (m *memShiftRepo) ListByCompanyEmployeeMonth(_ context.Context, companyKey, employeeName string, year, month int) ([]shift.Assignment, error) {
	var out []shift.Assignment
	for _, a := range m.records {
		if a.CompanyKey == companyKey && a.EmployeeName == employeeName && a.Year == year && a.Month == month {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memShiftRepo) ListByCompanyMonth(_ context.Context, companyKey string, year, month int) ([]shift.Assignment, error) {
	var out []shift.Assignment
	for _, a := range m.records {
		if a.CompanyKey == companyKey && a.Year == year && a.Month == month {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memShiftRepo) ListByMonth(_ context.Context, year, month int) ([]shift.Assignment, error) {
	var out []shift.Assignment
	for _, a := range m.records {
		if a.Year == year && a.Month == month {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memShiftRepo) ListByCompanyDay(_ context.Context, companyKey string, year, month, day int) ([]shift.Assignment, error) {
	var out []shift.Assignment
	for _, a := range m.records {
		if a.CompanyKey == companyKey && a.Year == year && a.Month == month && a.Day == day {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memShiftRepo) ListAll(_ context.Context) ([]shift.Assignment, error) {
	return m.records, nil
}

func (m *memShiftRepo) Upsert(_ context.Context, a shift.Assignment) error {
	m.records = append(m.records, a)
	return nil
}

func (m *memShiftRepo) Delete(_ context.Context, _ shift.Key) error {
	return nil
}

type memCompanyRepo struct {
	profiles  []company.EmployeeProfile
	overrides map[string]company.RateOverride
}

func (m *memCompanyRepo) ListCompanies(_ context.Context) ([]company.Company, error) {
	return nil, nil
}

func (m *memCompanyRepo) GetCompany(_ context.Context, _ string) (company.Company, error) {
	return company.Company{}, company.ErrCompanyNotFound
}

func (m *memCompanyRepo) GetProfile(_ context.Context, companyKey, employeeName string) (company.EmployeeProfile, error) {
	for _, p := range m.profiles {
		if p.CompanyKey == companyKey && p.EmployeeName == employeeName {
			return p, nil
		}
	}
	return company.EmployeeProfile{}, company.ErrProfileNotFound
}

func (m *memCompanyRepo) ListProfilesByCompany(_ context.Context, companyKey string) ([]company.EmployeeProfile, error) {
	var out []company.EmployeeProfile
	for _, p := range m.profiles {
		if p.CompanyKey == companyKey {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memCompanyRepo) UpsertProfile(_ context.Context, p company.EmployeeProfile) (company.EmployeeProfile, error) {
	m.profiles = append(m.profiles, p)
	return p, nil
}

func (m *memCompanyRepo) GetRateOverride(_ context.Context, companyKey string) (company.RateOverride, error) {
	if o, ok := m.overrides[companyKey]; ok {
		return o, nil
	}
	return company.RateOverride{}, company.ErrOverrideNotFound
}

func (m *memCompanyRepo) UpsertRateOverride(_ context.Context, o company.RateOverride) (company.RateOverride, error) {
	if m.overrides == nil {
		m.overrides = make(map[string]company.RateOverride)
	}
	m.overrides[o.CompanyKey] = o
	return o, nil
}

type serviceFixture struct {
	svc       payroll.Service
	shiftRepo *memShiftRepo
	ledger    *deduction.Ledger
	clock     *fakeClock
}

type fakeTimer struct {
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

type fakeClock struct {
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(_ time.Duration, f func()) deduction.Timer {
	t := &fakeTimer{f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) firePending() {
	for i := 0; i < len(c.timers); i++ {
		t := c.timers[i]
		if !t.stopped {
			t.stopped = true
			t.f()
		}
	}
}

func newServiceFixture(shiftRepo *memShiftRepo, companyRepo *memCompanyRepo) *serviceFixture {
	clock := &fakeClock{}
	ledger := deduction.NewLedger(clock, time.Second)
	svc := NewPayrollService(shiftRepo, companyRepo, ledger, period.NewCalculator(), NewRateResolver(testRates()))
	return &serviceFixture{svc: svc, shiftRepo: shiftRepo, ledger: ledger, clock: clock}
}

func TestComputeForPeriod_EndToEnd(t *testing.T) {
	ctx := context.Background()
	shiftRepo := &memShiftRepo{records: []shift.Assignment{
		asg("BranchA", "Maria", 3, shift.ShiftCodeDay),
		asg("BranchA", "Maria", 4, shift.ShiftCodeDay),
		asg("BranchA", "Maria", 5, shift.ShiftCodeNight),
		asg("BranchA", "Maria", 10, shift.ShiftCodeRest),
	}}
	fx := newServiceFixture(shiftRepo, &memCompanyRepo{})

	result, err := fx.svc.ComputeForPeriod(ctx, firstHalfJan2024(), "BranchA")
	require.NoError(t, err)

	require.Len(t, result["BranchA"], 1)
	line := result["BranchA"][0]
	assert.Equal(t, "Maria", line.EmployeeName)
	assert.Equal(t, 3, line.WorkedDays)
	assert.Equal(t, 24, line.TotalHours)
	assert.True(t, line.GrossIncome.Equal(dec("36710.88")))
	assert.True(t, line.TotalDeductions.Equal(dec("11017.39")))
	assert.True(t, line.NetPay.Equal(dec("25693.49")))
}

func TestComputeForPeriod_MergesSettledDeductions(t *testing.T) {
	ctx := context.Background()
	shiftRepo := &memShiftRepo{records: []shift.Assignment{
		asg("BranchA", "Maria", 3, shift.ShiftCodeDay),
	}}
	fx := newServiceFixture(shiftRepo, &memCompanyRepo{})

	fx.ledger.RecordEdit("BranchA", "Maria", deduction.FieldPurchases, "500")

	// Unsettled edits are invisible to payroll.
	result, err := fx.svc.ComputeForPeriod(ctx, firstHalfJan2024(), "BranchA")
	require.NoError(t, err)
	assert.True(t, result["BranchA"][0].PurchasesDeduction.IsZero())

	fx.clock.firePending()
	result, err = fx.svc.ComputeForPeriod(ctx, firstHalfJan2024(), "BranchA")
	require.NoError(t, err)
	assert.True(t, result["BranchA"][0].PurchasesDeduction.Equal(decimal.NewFromInt(500)))
}

func TestComputeForPeriod_UsesCompanyRateOverride(t *testing.T) {
	ctx := context.Background()
	shiftRepo := &memShiftRepo{records: []shift.Assignment{
		asg("BranchA", "Maria", 3, shift.ShiftCodeDay),
		asg("BranchB", "Jose", 3, shift.ShiftCodeDay),
	}}
	base := decimal.NewFromInt(2000)
	companyRepo := &memCompanyRepo{overrides: map[string]company.RateOverride{
		"BranchA": {CompanyKey: "BranchA", BaseHourlyRate: &base},
	}}
	fx := newServiceFixture(shiftRepo, companyRepo)

	result, err := fx.svc.ComputeForPeriod(ctx, firstHalfJan2024(), "")
	require.NoError(t, err)

	require.Len(t, result, 2)
	// BranchA gets the overridden base rate, BranchB the defaults.
	assert.True(t, result["BranchA"][0].RegularRate.Equal(decimal.NewFromInt(2000)))
	assert.True(t, result["BranchB"][0].RegularRate.Equal(dec("1529.62")))
}

func TestComputeForPeriod_InvalidPeriod(t *testing.T) {
	fx := newServiceFixture(&memShiftRepo{}, &memCompanyRepo{})

	_, err := fx.svc.ComputeForPeriod(context.Background(), payroll.Period{Year: 2024, Month: 13, Half: payroll.HalfFirst}, "")
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestListAvailablePeriods_IncludesCurrent(t *testing.T) {
	ctx := context.Background()
	shiftRepo := &memShiftRepo{records: []shift.Assignment{
		asg("BranchA", "Maria", 20, shift.ShiftCodeDay),
	}}
	fx := newServiceFixture(shiftRepo, &memCompanyRepo{})
	fx.svc.(*PayrollServiceImpl).now = func() time.Time {
		return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	}

	periods, err := fx.svc.ListAvailablePeriods(ctx)
	require.NoError(t, err)

	require.Len(t, periods, 2)
	assert.Equal(t, 5, periods[0].Month) // current period first
	assert.Equal(t, payroll.HalfSecond, periods[1].Half)
}
