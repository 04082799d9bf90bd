package console

import (
	"context"
	"fmt"
	"io"

	"github.com/staffdesk/staffdesk-go/internal/domain/employee"
)

func (m *Menu) queriesMenu(ctx context.Context) {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Queries ---")
		fmt.Fprintln(m.out, "1. Active employees")
		fmt.Fprintln(m.out, "2. Inactive employees")
		fmt.Fprintln(m.out, "3. Search employees by name")
		fmt.Fprintln(m.out, "4. Employees by position")
		fmt.Fprintln(m.out, "5. Find employee by number")
		fmt.Fprintln(m.out, "6. Statistics")
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
			if employees, err := m.svc.GetActiveEmployees(ctx); err != nil {
				m.printError(err)
			} else {
				m.printEmployees(employees)
			}
		case 2:
			if employees, err := m.svc.GetInactiveEmployees(ctx); err != nil {
				m.printError(err)
			} else {
				m.printEmployees(employees)
			}
		case 3:
			m.searchEmployees(ctx)
		case 4:
			m.employeesByPosition(ctx)
		case 5:
			m.employeeByNumber(ctx)
		case 6:
			m.printStatistics(ctx)
		case 7:
			return
		default:
			fmt.Fprintln(m.out, "Unknown option")
		}
	}
}

func (m *Menu) searchEmployees(ctx context.Context) {
	name, err := m.readLine("Name contains: ")
	if err != nil {
		m.printError(err)
		return
	}

	employees, err := m.svc.FindEmployeesByName(ctx, name)
	if err != nil {
		m.printError(err)
		return
	}
	m.printEmployees(employees)
}

func (m *Menu) employeesByPosition(ctx context.Context) {
	m.listPositions(ctx)
	id, err := m.readInt("Position id: ")
	if err != nil {
		m.printError(err)
		return
	}

	employees, err := m.svc.GetEmployeesByPosition(ctx, id)
	if err != nil {
		m.printError(err)
		return
	}
	m.printEmployees(employees)
}

func (m *Menu) employeeByNumber(ctx context.Context) {
	number, err := m.readLine("Employee number: ")
	if err != nil {
		m.printError(err)
		return
	}

	e, err := m.svc.GetEmployeeByNumber(ctx, number)
	if err != nil {
		m.printError(err)
		return
	}
	m.printEmployees([]employee.Employee{e})
}

func (m *Menu) printStatistics(ctx context.Context) {
	stats, err := m.svc.Statistics(ctx)
	if err != nil {
		m.printError(err)
		return
	}

	fmt.Fprintln(m.out, "Statistics:")
	fmt.Fprintf(m.out, "  Total employees:    %d\n", stats.TotalEmployees)
	fmt.Fprintf(m.out, "  Active employees:   %d\n", stats.ActiveEmployees)
	fmt.Fprintf(m.out, "  Inactive employees: %d\n", stats.InactiveEmployees)
	fmt.Fprintf(m.out, "  Total positions:    %d\n", stats.TotalPositions)
}
