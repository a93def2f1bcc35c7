package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/nomina-ops/nomina-backend-go/internal/domain/shift"
	"github.com/nomina-ops/nomina-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	SetShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.Service
}

func NewShiftHandler(shiftService shift.Service) ShiftHandler {
	return &shiftHandlerImpl{shiftService: shiftService}
}

// SetShift assigns, changes or clears one day. A conflicting exclusive
// code answers 409 naming the employee who holds it; the grid keeps its
// prior value.
func (h *shiftHandlerImpl) SetShift(w http.ResponseWriter, r *http.Request) {
	var req shift.SetShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.shiftService.SetShift(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

// ListShifts serves the schedule grid: a month of assignments, optionally
// narrowed to one company or one employee.
func (h *shiftHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year query parameter is required", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month query parameter is required", nil)
		return
	}

	companyKey := r.URL.Query().Get("company")
	employeeName := r.URL.Query().Get("employee")

	var (
		assignments []shift.Assignment
	)
	switch {
	case companyKey != "" && employeeName != "":
		assignments, err = h.shiftService.ListForCompanyEmployeeMonth(r.Context(), companyKey, employeeName, year, month)
	case companyKey != "":
		assignments, err = h.shiftService.ListForCompanyMonth(r.Context(), companyKey, year, month)
	default:
		assignments, err = h.shiftService.ListForMonth(r.Context(), year, month)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]shift.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		result = append(result, shift.NewAssignmentResponse(a))
	}
	response.Success(w, result)
}
