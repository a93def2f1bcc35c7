package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nomina-ops/nomina-backend-go/internal/handler/http/response"
	"github.com/nomina-ops/nomina-backend-go/internal/pkg/validator"
	"github.com/nomina-ops/nomina-backend-go/internal/service/deduction"
	"github.com/shopspring/decimal"
)

type DeductionHandler interface {
	RecordEdit(w http.ResponseWriter, r *http.Request)
	Read(w http.ResponseWriter, r *http.Request)
}

type deductionHandlerImpl struct {
	ledger *deduction.Ledger
}

func NewDeductionHandler(ledger *deduction.Ledger) DeductionHandler {
	return &deductionHandlerImpl{ledger: ledger}
}

type recordEditRequest struct {
	Field string `json:"field"`
	Value string `json:"value"` // raw text as typed
}

func (r *recordEditRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Field, deduction.FieldValues) {
		errs = append(errs, validator.ValidationError{Field: "field", Message: "must be one of purchases, advance, other, extra_amount"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type deductionsResponse struct {
	Purchases   decimal.Decimal   `json:"purchases"`
	Advance     decimal.Decimal   `json:"advance"`
	Other       decimal.Decimal   `json:"other"`
	ExtraAmount decimal.Decimal   `json:"extra_amount"`
	Display     map[string]string `json:"display"`
}

// RecordEdit stores the raw text and restarts the field's settle timer.
// The committed value only changes once the input goes quiet.
func (h *deductionHandlerImpl) RecordEdit(w http.ResponseWriter, r *http.Request) {
	companyKey := chi.URLParam(r, "company")
	employeeName := chi.URLParam(r, "employee")

	var req recordEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	h.ledger.RecordEdit(companyKey, employeeName, deduction.Field(req.Field), req.Value)
	response.Success(w, nil)
}

// Read returns the committed values plus, per field, what the input widget
// should currently display.
func (h *deductionHandlerImpl) Read(w http.ResponseWriter, r *http.Request) {
	companyKey := chi.URLParam(r, "company")
	employeeName := chi.URLParam(r, "employee")

	committed := h.ledger.Read(companyKey, employeeName)

	display := make(map[string]string, len(deduction.FieldValues))
	for _, field := range deduction.FieldValues {
		display[field] = h.ledger.ReadDisplayValue(companyKey, employeeName, deduction.Field(field))
	}

	response.Success(w, deductionsResponse{
		Purchases:   committed.Purchases,
		Advance:     committed.Advance,
		Other:       committed.Other,
		ExtraAmount: committed.ExtraAmount,
		Display:     display,
	})
}
