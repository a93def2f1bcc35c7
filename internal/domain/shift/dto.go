package shift

import (
	"github.com/nomina-ops/nomina-backend-go/internal/pkg/validator"
)

type SetShiftRequest struct {
	CompanyKey   string `json:"company_key"`
	EmployeeName string `json:"employee_name"`
	Year         int    `json:"year"`
	Month        int    `json:"month"` // 0-based
	Day          int    `json:"day"`
	Code         string `json:"code"` // "N", "D", "L" or "" to clear
}

func (r *SetShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyKey) {
		errs = append(errs, validator.ValidationError{Field: "company_key", Message: "is required"})
	}
	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{Field: "employee_name", Message: "is required"})
	}
	if r.Year < 1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is required"})
	}
	if r.Month < 0 || r.Month > 11 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 0 and 11"})
	}
	if r.Day < 1 || r.Day > 31 {
		errs = append(errs, validator.ValidationError{Field: "day", Message: "must be between 1 and 31"})
	}
	if r.Code != "" && !validator.IsInSlice(r.Code, ShiftCodeValues) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be 'N', 'D', 'L' or empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	CompanyKey   string `json:"company_key"`
	EmployeeName string `json:"employee_name"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	Day          int    `json:"day"`
	Code         string `json:"code"`
}

func NewAssignmentResponse(a Assignment) AssignmentResponse {
	return AssignmentResponse{
		CompanyKey:   a.CompanyKey,
		EmployeeName: a.EmployeeName,
		Year:         a.Year,
		Month:        a.Month,
		Day:          a.Day,
		Code:         string(a.Code),
	}
}
