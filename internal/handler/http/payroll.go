package http

import (
	"net/http"
	"strconv"

	"github.com/nomina-ops/nomina-backend-go/internal/domain/payroll"
	"github.com/nomina-ops/nomina-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ComputeForPeriod(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ComputeForPeriod serves the payroll table, the exporter and the report
// tab. All three recompute through the same service, so they can never
// show different figures for the same period.
func (h *payrollHandlerImpl) ComputeForPeriod(w http.ResponseWriter, r *http.Request) {
	req := payroll.ComputeRequest{
		Half:       r.URL.Query().Get("half"),
		CompanyKey: r.URL.Query().Get("company"),
	}

	var err error
	req.Year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year query parameter is required", nil)
		return
	}
	req.Month, err = strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month query parameter is required", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	period := payroll.Period{Year: req.Year, Month: req.Month, Half: payroll.Half(req.Half)}
	lines, err := h.payrollService.ComputeForPeriod(r.Context(), period, req.CompanyKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make(map[string][]payroll.LineResponse, len(lines))
	for companyKey, companyLines := range lines {
		out := make([]payroll.LineResponse, 0, len(companyLines))
		for _, line := range companyLines {
			out = append(out, payroll.NewLineResponse(line))
		}
		result[companyKey] = out
	}
	response.Success(w, result)
}

// ListPeriods returns the selectable pay windows, most recent first.
func (h *payrollHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.payrollService.ListAvailablePeriods(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, payroll.NewPeriodResponse(p))
	}
	response.Success(w, result)
}
