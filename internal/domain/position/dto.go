package position

import (
	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-go/internal/pkg/validator"
)

type CreatePositionRequest struct {
	Name        string
	Description string
	BaseSalary  decimal.Decimal
	Level       string
}

func (r *CreatePositionRequest) Validate() error {
	errs := validatePositionFields(r.Name, r.Description, r.BaseSalary, r.Level)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePositionRequest struct {
	ID          int64
	Name        string
	Description string
	BaseSalary  decimal.Decimal
	Level       string
}

func (r *UpdatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	errs = append(errs, validatePositionFields(r.Name, r.Description, r.BaseSalary, r.Level)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePositionFields(name, description string, baseSalary decimal.Decimal, level string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(description) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 500 characters",
		})
	}

	if baseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base salary must not be negative",
		})
	}

	if validator.IsEmpty(level) {
		errs = append(errs, validator.ValidationError{
			Field:   "level",
			Message: "level is required",
		})
	} else if len(level) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "level",
			Message: "level must not exceed 50 characters",
		})
	}

	return errs
}
