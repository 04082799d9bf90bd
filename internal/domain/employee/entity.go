package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a staff member tied to exactly one position. Active is the
// soft-delete marker: deactivated employees keep their row and history.
type Employee struct {
	ID             int64
	EmployeeNumber string
	FirstName      string
	LastName       string
	Email          *string
	Phone          *string
	HireDate       time.Time
	CurrentSalary  decimal.Decimal
	Active         bool
	PositionID     int64
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
