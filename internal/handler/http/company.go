package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/company"
	"github.com/nomina-ops/nomina-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	ListCompanies(w http.ResponseWriter, r *http.Request)
	ListProfiles(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpsertProfile(w http.ResponseWriter, r *http.Request)
	GetRateOverride(w http.ResponseWriter, r *http.Request)
	UpsertRateOverride(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	companyService company.Service
}

func NewCompanyHandler(companyService company.Service) CompanyHandler {
	return &companyHandlerImpl{companyService: companyService}
}

func (h *companyHandlerImpl) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyService.ListCompanies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		resp = append(resp, company.NewCompanyResponse(c))
	}
	response.Success(w, resp)
}

func (h *companyHandlerImpl) ListProfiles(w http.ResponseWriter, r *http.Request) {
	companyKey := chi.URLParam(r, "company")

	profiles, err := h.companyService.ListProfiles(r.Context(), companyKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]company.EmployeeProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		resp = append(resp, company.NewEmployeeProfileResponse(p))
	}
	response.Success(w, resp)
}

func (h *companyHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	companyKey := chi.URLParam(r, "company")
	employeeName := chi.URLParam(r, "employee")

	profile, err := h.companyService.GetProfile(r.Context(), companyKey, employeeName)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, company.NewEmployeeProfileResponse(profile))
}

func (h *companyHandlerImpl) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	companyKey := chi.URLParam(r, "company")
	employeeName := chi.URLParam(r, "employee")

	var req company.UpsertEmployeeProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	profile, err := h.companyService.UpsertProfile(r.Context(), companyKey, employeeName, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, company.NewEmployeeProfileResponse(profile))
}

// GetRateOverride answers with an empty override when the company has no
// row yet; all fields falling back to defaults is a valid configuration.
func (h *companyHandlerImpl) GetRateOverride(w http.ResponseWriter, r *http.Request) {
	companyKey := chi.URLParam(r, "company")

	override, err := h.companyService.GetRateOverride(r.Context(), companyKey)
	if errors.Is(err, company.ErrOverrideNotFound) {
		override = company.RateOverride{CompanyKey: companyKey}
	} else if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, company.NewRateOverrideResponse(override))
}

func (h *companyHandlerImpl) UpsertRateOverride(w http.ResponseWriter, r *http.Request) {
	companyKey := chi.URLParam(r, "company")

	var req company.UpsertRateOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	override, err := h.companyService.UpsertRateOverride(r.Context(), companyKey, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, company.NewRateOverrideResponse(override))
}
