package shift

// ShiftCode is the work designation for a single day.
type ShiftCode string

const (
	ShiftCodeNight ShiftCode = "N"
	ShiftCodeDay   ShiftCode = "D"
	ShiftCodeRest  ShiftCode = "L"
	ShiftCodeNone  ShiftCode = ""
)

var ShiftCodeValues = []string{
	string(ShiftCodeNight),
	string(ShiftCodeDay),
	string(ShiftCodeRest),
}

// IsExclusive reports whether the code is one of the codes that at most one
// employee per company may hold on a given day.
func (c ShiftCode) IsExclusive() bool {
	return c == ShiftCodeNight || c == ShiftCodeDay || c == ShiftCodeRest
}

// IsWorked reports whether a day with this code counts toward payroll.
// L is a persisted record but not a worked day.
func (c ShiftCode) IsWorked() bool {
	return c == ShiftCodeNight || c == ShiftCodeDay
}

// Assignment is one employee's designation on one calendar day at one
// company. Identity is the natural key (CompanyKey, EmployeeName, Year,
// Month, Day); Month is 0-based.
type Assignment struct {
	CompanyKey   string
	EmployeeName string
	Year         int
	Month        int
	Day          int
	Code         ShiftCode
}

// Key returns the natural key of the assignment.
func (a Assignment) Key() Key {
	return Key{
		CompanyKey:   a.CompanyKey,
		EmployeeName: a.EmployeeName,
		Year:         a.Year,
		Month:        a.Month,
		Day:          a.Day,
	}
}

// Key is the natural identity of an assignment. No surrogate id is exposed
// to callers; an unassigned day has no persisted representation at all.
type Key struct {
	CompanyKey   string
	EmployeeName string
	Year         int
	Month        int
	Day          int
}
