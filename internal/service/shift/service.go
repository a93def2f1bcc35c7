package shift

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/shift"
	"github.com/nomina-ops/nomina-backend-go/internal/pkg/database"
	"github.com/nomina-ops/nomina-backend-go/internal/repository/postgresql"
)

type ShiftServiceImpl struct {
	db        *database.DB
	shiftRepo shift.Repository
}

func NewShiftService(db *database.DB, shiftRepo shift.Repository) shift.Service {
	return &ShiftServiceImpl{
		db:        db,
		shiftRepo: shiftRepo,
	}
}

// GetOrCreate returns the persisted assignment or a synthesized empty one.
// The empty assignment is not written; a day only gets a record on its
// first non-empty code.
func (s *ShiftServiceImpl) GetOrCreate(ctx context.Context, key shift.Key) (shift.Assignment, error) {
	existing, err := s.shiftRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, shift.ErrAssignmentNotFound) {
			return shift.Assignment{
				CompanyKey:   key.CompanyKey,
				EmployeeName: key.EmployeeName,
				Year:         key.Year,
				Month:        key.Month,
				Day:          key.Day,
				Code:         shift.ShiftCodeNone,
			}, nil
		}
		return shift.Assignment{}, err
	}
	return existing, nil
}

func (s *ShiftServiceImpl) SetShift(ctx context.Context, req shift.SetShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	code := shift.ShiftCode(req.Code)
	key := shift.Key{
		CompanyKey:   req.CompanyKey,
		EmployeeName: req.EmployeeName,
		Year:         req.Year,
		Month:        req.Month,
		Day:          req.Day,
	}

	// Clearing a day removes the record entirely; a day with no assignment
	// has no persisted representation.
	if code == shift.ShiftCodeNone {
		if err := s.shiftRepo.Delete(ctx, key); err != nil {
			if errors.Is(err, shift.ErrAssignmentNotFound) {
				return nil
			}
			return err
		}
		return nil
	}

	// The conflict check and the write run in one transaction so a rejected
	// assignment never partially applies and a concurrent edit cannot slip
	// between check and upsert. Exclusivity is scoped to (company, day):
	// the same code is free to repeat across days or companies.
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		dayRecords, err := s.shiftRepo.ListByCompanyDay(txCtx, req.CompanyKey, req.Year, req.Month, req.Day)
		if err != nil {
			return err
		}
		for _, rec := range dayRecords {
			if rec.EmployeeName != req.EmployeeName && rec.Code == code {
				return &shift.ConflictError{
					CompanyKey:  req.CompanyKey,
					Year:        req.Year,
					Month:       req.Month,
					Day:         req.Day,
					Code:        code,
					HeldBy:      rec.EmployeeName,
					RequestedBy: req.EmployeeName,
				}
			}
		}

		return s.shiftRepo.Upsert(txCtx, shift.Assignment{
			CompanyKey:   req.CompanyKey,
			EmployeeName: req.EmployeeName,
			Year:         req.Year,
			Month:        req.Month,
			Day:          req.Day,
			Code:         code,
		})
	})
}

func (s *ShiftServiceImpl) ListForCompanyEmployeeMonth(ctx context.Context, companyKey, employeeName string, year, month int) ([]shift.Assignment, error) {
	return s.shiftRepo.ListByCompanyEmployeeMonth(ctx, companyKey, employeeName, year, month)
}

func (s *ShiftServiceImpl) ListForCompanyMonth(ctx context.Context, companyKey string, year, month int) ([]shift.Assignment, error) {
	return s.shiftRepo.ListByCompanyMonth(ctx, companyKey, year, month)
}

func (s *ShiftServiceImpl) ListForMonth(ctx context.Context, year, month int) ([]shift.Assignment, error) {
	return s.shiftRepo.ListByMonth(ctx, year, month)
}
