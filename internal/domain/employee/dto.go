package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeNumber string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	HireDate       time.Time
	CurrentSalary  decimal.Decimal
	PositionID     int64
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_number",
			Message: "employee number is required",
		})
	} else if len(r.EmployeeNumber) > 20 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_number",
			Message: "employee number must not exceed 20 characters",
		})
	}

	errs = append(errs, validateNameFields(r.FirstName, r.LastName)...)
	errs = append(errs, validateContactFields(r.Email, r.Phone)...)

	if r.HireDate.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire date is required",
		})
	}

	if r.CurrentSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "current_salary",
			Message: "salary must not be negative",
		})
	}

	if r.PositionID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "position_id",
			Message: "position is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries the mutable fields only. Employee number and
// hire date are fixed at creation and never revised here.
type UpdateEmployeeRequest struct {
	ID            int64
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	CurrentSalary decimal.Decimal
	PositionID    int64
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	errs = append(errs, validateNameFields(r.FirstName, r.LastName)...)
	errs = append(errs, validateContactFields(r.Email, r.Phone)...)

	if r.CurrentSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "current_salary",
			Message: "salary must not be negative",
		})
	}

	if r.PositionID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "position_id",
			Message: "position is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateNameFields(firstName, lastName string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(firstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first name is required",
		})
	} else if len(firstName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first name must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(lastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last name is required",
		})
	} else if len(lastName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last name must not exceed 100 characters",
		})
	}

	return errs
}

func validateContactFields(email, phone string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(email) {
		if len(email) > 150 {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "email must not exceed 150 characters",
			})
		} else if !validator.IsValidEmail(email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "email format is invalid",
			})
		}
	}

	if !validator.IsEmpty(phone) && !validator.IsValidPhoneNumber(phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone number format is invalid",
		})
	}

	return errs
}
