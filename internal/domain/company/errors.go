package company

import "errors"

var (
	ErrCompanyNotFound  = errors.New("company not found")
	ErrProfileNotFound  = errors.New("employee profile not found")
	ErrOverrideNotFound = errors.New("insurance rate override not found")
)
