package position

import "github.com/shopspring/decimal"

// Position is a job role referenced by zero or more employees. The employee
// collection is never carried on the entity; callers that need the
// referencing set ask the employee repository explicitly.
type Position struct {
	ID          int64
	Name        string
	Description string
	BaseSalary  decimal.Decimal
	Level       string
}

// Conventional level labels. Level is free-form; these are the values the
// sample data and the console menu offer.
const (
	LevelExecutive  = "Executive"
	LevelSenior     = "Senior"
	LevelSemiSenior = "Semi-Senior"
	LevelJunior     = "Junior"
)

func Levels() []string {
	return []string{LevelExecutive, LevelSenior, LevelSemiSenior, LevelJunior}
}
