package console

import (
	"context"
	"fmt"
	"io"

	"github.com/staffdesk/staffdesk-go/internal/domain/employee"
)

func (m *Menu) employeesMenu(ctx context.Context) {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Employees ---")
		fmt.Fprintln(m.out, "1. Hire employee")
		fmt.Fprintln(m.out, "2. List employees")
		fmt.Fprintln(m.out, "3. Update employee")
		fmt.Fprintln(m.out, "4. Deactivate employee")
		fmt.Fprintln(m.out, "5. Activate employee")
		fmt.Fprintln(m.out, "6. Delete employee permanently")
		fmt.Fprintln(m.out, "7. Back")

		choice, err := m.readInt("Option: ")
		if err != nil {
			if err == io.EOF {
				return
			}
			m.printError(err)
			continue
		}

		switch choice {
		case 1:
			m.createEmployee(ctx)
		case 2:
			m.listEmployees(ctx)
		case 3:
			m.updateEmployee(ctx)
		case 4:
			m.setEmployeeActive(ctx, false)
		case 5:
			m.setEmployeeActive(ctx, true)
		case 6:
			m.deleteEmployee(ctx)
		case 7:
			return
		default:
			fmt.Fprintln(m.out, "Unknown option")
		}
	}
}

func (m *Menu) createEmployee(ctx context.Context) {
	number, err := m.readLine("Employee number: ")
	if err != nil {
		m.printError(err)
		return
	}
	firstName, err := m.readLine("First name: ")
	if err != nil {
		m.printError(err)
		return
	}
	lastName, err := m.readLine("Last name: ")
	if err != nil {
		m.printError(err)
		return
	}
	email, err := m.readLine("Email (optional): ")
	if err != nil {
		m.printError(err)
		return
	}
	phone, err := m.readLine("Phone (optional): ")
	if err != nil {
		m.printError(err)
		return
	}
	hireDate, err := m.readDate("Hire date (YYYY-MM-DD): ")
	if err != nil {
		m.printError(err)
		return
	}
	salary, err := m.readDecimal("Salary: ")
	if err != nil {
		m.printError(err)
		return
	}

	m.listPositions(ctx)
	positionID, err := m.readInt("Position id: ")
	if err != nil {
		m.printError(err)
		return
	}

	created, err := m.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeNumber: number,
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		Phone:          phone,
		HireDate:       hireDate,
		CurrentSalary:  salary,
		PositionID:     positionID,
	})
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Employee created with id %d\n", created.ID)
}

func (m *Menu) listEmployees(ctx context.Context) {
	employees, err := m.svc.GetAllEmployees(ctx)
	if err != nil {
		m.printError(err)
		return
	}
	m.printEmployees(employees)
}

func (m *Menu) updateEmployee(ctx context.Context) {
	id, err := m.readInt("Employee id: ")
	if err != nil {
		m.printError(err)
		return
	}

	current, err := m.svc.GetEmployeeByID(ctx, id)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Updating %s (number and hire date cannot change)\n", current.FullName())

	firstName, err := m.readLine("First name: ")
	if err != nil {
		m.printError(err)
		return
	}
	lastName, err := m.readLine("Last name: ")
	if err != nil {
		m.printError(err)
		return
	}
	email, err := m.readLine("Email (optional): ")
	if err != nil {
		m.printError(err)
		return
	}
	phone, err := m.readLine("Phone (optional): ")
	if err != nil {
		m.printError(err)
		return
	}
	salary, err := m.readDecimal("Salary: ")
	if err != nil {
		m.printError(err)
		return
	}
	positionID, err := m.readInt("Position id: ")
	if err != nil {
		m.printError(err)
		return
	}

	updated, err := m.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:            id,
		FirstName:     firstName,
		LastName:      lastName,
		Email:         email,
		Phone:         phone,
		CurrentSalary: salary,
		PositionID:    positionID,
	})
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Employee %d updated\n", updated.ID)
}

func (m *Menu) setEmployeeActive(ctx context.Context, active bool) {
	id, err := m.readInt("Employee id: ")
	if err != nil {
		m.printError(err)
		return
	}

	if active {
		err = m.svc.ActivateEmployee(ctx, id)
	} else {
		err = m.svc.DeactivateEmployee(ctx, id)
	}
	if err != nil {
		m.printError(err)
		return
	}

	if active {
		fmt.Fprintln(m.out, "Employee activated")
	} else {
		fmt.Fprintln(m.out, "Employee deactivated")
	}
}

func (m *Menu) deleteEmployee(ctx context.Context) {
	id, err := m.readInt("Employee id: ")
	if err != nil {
		m.printError(err)
		return
	}

	confirm, err := m.readLine("This removes the record permanently. Type 'yes' to continue: ")
	if err != nil {
		m.printError(err)
		return
	}
	if confirm != "yes" {
		fmt.Fprintln(m.out, "Cancelled")
		return
	}

	if err := m.svc.DeleteEmployee(ctx, id); err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintln(m.out, "Employee deleted")
}

func (m *Menu) printEmployees(employees []employee.Employee) {
	if len(employees) == 0 {
		fmt.Fprintln(m.out, "No employees found")
		return
	}
	for _, e := range employees {
		state := "active"
		if !e.Active {
			state = "inactive"
		}
		email := "-"
		if e.Email != nil {
			email = *e.Email
		}
		fmt.Fprintf(m.out, "  [%d] %s %s (%s) %s | salary %s | hired %s | %s\n",
			e.ID, e.FirstName, e.LastName, e.EmployeeNumber, email,
			e.CurrentSalary.StringFixed(2), e.HireDate.Format("2006-01-02"), state)
	}
}
