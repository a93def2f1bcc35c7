package shift

import (
	"errors"
	"fmt"
)

var (
	ErrAssignmentNotFound = errors.New("shift assignment not found")
	ErrInvalidShiftCode   = errors.New("invalid shift code")
)

// ConflictError is returned when an exclusive code is already held by a
// different employee at the same company on the same day. The attempted
// write is rejected before any mutation.
type ConflictError struct {
	CompanyKey  string
	Year        int
	Month       int
	Day         int
	Code        ShiftCode
	HeldBy      string
	RequestedBy string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("shift %q on %d-%02d-%02d at %s is already assigned to %s",
		e.Code, e.Year, e.Month+1, e.Day, e.CompanyKey, e.HeldBy)
}
