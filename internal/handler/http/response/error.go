package response

import (
	"errors"
	"net/http"

	"github.com/nomina-ops/nomina-backend-go/internal/domain/auth"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/company"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/payroll"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/shift"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/user"
	"github.com/nomina-ops/nomina-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A rejected shift assignment is a user-facing rejection, not a server
	// fault; the grid keeps the prior committed value and shows who holds
	// the code.
	var conflict *shift.ConflictError
	if errors.As(err, &conflict) {
		Conflict(w, conflict.Error(), map[string]string{
			"held_by": conflict.HeldBy,
			"code":    string(conflict.Code),
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Shift domain errors
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, shift.ErrInvalidShiftCode):
		BadRequest(w, "Invalid shift code", nil)

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrProfileNotFound):
		NotFound(w, "Employee profile not found")
	case errors.Is(err, company.ErrOverrideNotFound):
		NotFound(w, "Insurance rate override not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
