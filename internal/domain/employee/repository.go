package employee

import "context"

type EmployeeRepository interface {
	// Save inserts when the employee has no identity yet and updates
	// otherwise. Either path runs in its own transaction.
	Save(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	GetByNumber(ctx context.Context, employeeNumber string) (Employee, error)
	GetAll(ctx context.Context) ([]Employee, error)
	GetByActive(ctx context.Context, active bool) ([]Employee, error)
	GetByPositionID(ctx context.Context, positionID int64) ([]Employee, error)
	// SearchByName matches the substring against first or last name,
	// case-sensitively.
	SearchByName(ctx context.Context, name string) ([]Employee, error)
	// SetActive flips the soft-delete flag; false when no row matches.
	SetActive(ctx context.Context, id int64, active bool) (bool, error)
	// Delete removes the row regardless of the active flag; false when no
	// row matches.
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByActive(ctx context.Context, active bool) (int64, error)
	CountByPositionID(ctx context.Context, positionID int64) (int64, error)
	// EmailInUse reports whether another employee (excluding excludeID)
	// already has the given email.
	EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error)
}
