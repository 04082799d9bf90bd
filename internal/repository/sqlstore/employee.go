package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/staffdesk/staffdesk-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-go/internal/pkg/database"
)

const employeeColumns = `id, employee_number, first_name, last_name, email, phone, hire_date, current_salary, active, position_id`

type employeeRepositoryImpl struct {
	db *database.Manager
}

func NewEmployeeRepository(db *database.Manager) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Save implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Save(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q, err := GetQuerier(ctx, r.db)
		if err != nil {
			return err
		}

		if e.ID == 0 {
			query := r.db.Rebind(`
				INSERT INTO employees (employee_number, first_name, last_name, email, phone, hire_date, current_salary, active, position_id)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
				RETURNING id
			`)
			err := q.QueryRowContext(ctx, query,
				e.EmployeeNumber,
				e.FirstName,
				e.LastName,
				stringPtrToNull(e.Email),
				stringPtrToNull(e.Phone),
				dateToArg(e.HireDate),
				e.CurrentSalary,
				e.Active,
				e.PositionID,
			).Scan(&e.ID)
			if err != nil {
				return fmt.Errorf("insert employee: %w", err)
			}
			log.Info().Int64("id", e.ID).Str("employee_number", e.EmployeeNumber).Msg("Employee created")
			return nil
		}

		// Employee number and hire date are fixed at creation; the update
		// deliberately leaves them out.
		query := r.db.Rebind(`
			UPDATE employees
			SET first_name = ?, last_name = ?, email = ?, phone = ?, current_salary = ?, active = ?, position_id = ?
			WHERE id = ?
		`)
		result, err := q.ExecContext(ctx, query,
			e.FirstName,
			e.LastName,
			stringPtrToNull(e.Email),
			stringPtrToNull(e.Phone),
			e.CurrentSalary,
			e.Active,
			e.PositionID,
			e.ID,
		)
		if err != nil {
			return fmt.Errorf("update employee: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("update employee: %w", err)
		}
		if affected == 0 {
			return employee.ErrEmployeeNotFound
		}
		log.Info().Int64("id", e.ID).Str("employee_number", e.EmployeeNumber).Msg("Employee updated")
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q, err := GetQuerier(ctx, r.db)
	if err != nil {
		return employee.Employee{}, err
	}

	query := r.db.Rebind(`SELECT ` + employeeColumns + ` FROM employees WHERE id = ?`)
	return scanEmployeeRow(q.QueryRowContext(ctx, query, id))
}

// GetByNumber implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByNumber(ctx context.Context, employeeNumber string) (employee.Employee, error) {
	q, err := GetQuerier(ctx, r.db)
	if err != nil {
		return employee.Employee{}, err
	}

	query := r.db.Rebind(`SELECT ` + employeeColumns + ` FROM employees WHERE employee_number = ?`)
	return scanEmployeeRow(q.QueryRowContext(ctx, query, employeeNumber))
}

// GetAll implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetAll(ctx context.Context) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY last_name, first_name`
	return r.queryEmployees(ctx, query)
}

// GetByActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByActive(ctx context.Context, active bool) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE active = ? ORDER BY last_name, first_name`
	return r.queryEmployees(ctx, query, active)
}

// GetByPositionID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByPositionID(ctx context.Context, positionID int64) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE position_id = ? ORDER BY last_name, first_name`
	return r.queryEmployees(ctx, query, positionID)
}

// SearchByName implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SearchByName(ctx context.Context, name string) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE first_name LIKE ? OR last_name LIKE ? ORDER BY last_name, first_name`
	pattern := "%" + name + "%"
	return r.queryEmployees(ctx, query, pattern, pattern)
}

// SetActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetActive(ctx context.Context, id int64, active bool) (bool, error) {
	var matched bool
	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q, err := GetQuerier(ctx, r.db)
		if err != nil {
			return err
		}

		result, err := q.ExecContext(ctx, r.db.Rebind(`UPDATE employees SET active = ? WHERE id = ?`), active, id)
		if err != nil {
			return fmt.Errorf("set employee active flag: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("set employee active flag: %w", err)
		}
		matched = affected > 0
		if matched {
			log.Info().Int64("id", id).Bool("active", active).Msg("Employee active flag changed")
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return matched, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int64) (bool, error) {
	var existed bool
	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q, err := GetQuerier(ctx, r.db)
		if err != nil {
			return err
		}

		result, err := q.ExecContext(ctx, r.db.Rebind(`DELETE FROM employees WHERE id = ?`), id)
		if err != nil {
			return fmt.Errorf("delete employee: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete employee: %w", err)
		}
		existed = affected > 0
		if existed {
			log.Info().Int64("id", id).Msg("Employee deleted")
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return existed, nil
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	return r.scalarCount(ctx, `SELECT COUNT(*) FROM employees`)
}

// CountByActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountByActive(ctx context.Context, active bool) (int64, error) {
	return r.scalarCount(ctx, `SELECT COUNT(*) FROM employees WHERE active = ?`, active)
}

// CountByPositionID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountByPositionID(ctx context.Context, positionID int64) (int64, error) {
	return r.scalarCount(ctx, `SELECT COUNT(*) FROM employees WHERE position_id = ?`, positionID)
}

// EmailInUse implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error) {
	if email == "" {
		return false, nil
	}
	count, err := r.scalarCount(ctx, `SELECT COUNT(*) FROM employees WHERE email = ? AND id <> ?`, email, excludeID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *employeeRepositoryImpl) scalarCount(ctx context.Context, query string, args ...any) (int64, error) {
	q, err := GetQuerier(ctx, r.db)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := q.QueryRowContext(ctx, r.db.Rebind(query), args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return count, nil
}

func (r *employeeRepositoryImpl) queryEmployees(ctx context.Context, query string, args ...any) ([]employee.Employee, error) {
	q, err := GetQuerier(ctx, r.db)
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows.Scan)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

func scanEmployeeRow(row *sql.Row) (employee.Employee, error) {
	e, err := scanEmployee(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func scanEmployee(scan func(dest ...any) error) (employee.Employee, error) {
	var (
		e        employee.Employee
		email    sql.NullString
		phone    sql.NullString
		hireDate any
	)
	err := scan(
		&e.ID,
		&e.EmployeeNumber,
		&e.FirstName,
		&e.LastName,
		&email,
		&phone,
		&hireDate,
		&e.CurrentSalary,
		&e.Active,
		&e.PositionID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("scan employee: %w", err)
	}

	e.Email = nullToStringPtr(email)
	e.Phone = nullToStringPtr(phone)
	e.HireDate, err = scanDate(hireDate)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("scan employee: %w", err)
	}
	return e, nil
}
