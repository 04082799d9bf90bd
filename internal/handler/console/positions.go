package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/staffdesk/staffdesk-go/internal/domain/position"
)

func (m *Menu) positionsMenu(ctx context.Context) {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Positions ---")
		fmt.Fprintln(m.out, "1. Create position")
		fmt.Fprintln(m.out, "2. List positions")
		fmt.Fprintln(m.out, "3. Search by name")
		fmt.Fprintln(m.out, "4. Update position")
		fmt.Fprintln(m.out, "5. Delete position")
		fmt.Fprintln(m.out, "6. Back")

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
			m.createPosition(ctx)
		case 2:
			m.listPositions(ctx)
		case 3:
			m.searchPositions(ctx)
		case 4:
			m.updatePosition(ctx)
		case 5:
			m.deletePosition(ctx)
		case 6:
			return
		default:
			fmt.Fprintln(m.out, "Unknown option")
		}
	}
}

func (m *Menu) createPosition(ctx context.Context) {
	req, err := m.readPositionFields()
	if err != nil {
		m.printError(err)
		return
	}

	created, err := m.svc.CreatePosition(ctx, req)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Position created with id %d\n", created.ID)
}

func (m *Menu) listPositions(ctx context.Context) {
	positions, err := m.svc.GetAllPositions(ctx)
	if err != nil {
		m.printError(err)
		return
	}
	m.printPositions(positions)
}

func (m *Menu) searchPositions(ctx context.Context) {
	name, err := m.readLine("Name contains: ")
	if err != nil {
		m.printError(err)
		return
	}

	positions, err := m.svc.FindPositionsByName(ctx, name)
	if err != nil {
		m.printError(err)
		return
	}
	m.printPositions(positions)
}

func (m *Menu) updatePosition(ctx context.Context) {
	id, err := m.readInt("Position id: ")
	if err != nil {
		m.printError(err)
		return
	}

	current, err := m.svc.GetPositionByID(ctx, id)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Updating %q (leave nothing blank; re-enter values)\n", current.Name)

	fields, err := m.readPositionFields()
	if err != nil {
		m.printError(err)
		return
	}

	updated, err := m.svc.UpdatePosition(ctx, position.UpdatePositionRequest{
		ID:          id,
		Name:        fields.Name,
		Description: fields.Description,
		BaseSalary:  fields.BaseSalary,
		Level:       fields.Level,
	})
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Position %d updated\n", updated.ID)
}

func (m *Menu) deletePosition(ctx context.Context) {
	id, err := m.readInt("Position id: ")
	if err != nil {
		m.printError(err)
		return
	}

	if err := m.svc.DeletePosition(ctx, id); err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintln(m.out, "Position deleted")
}

func (m *Menu) readPositionFields() (position.CreatePositionRequest, error) {
	name, err := m.readLine("Name: ")
	if err != nil {
		return position.CreatePositionRequest{}, err
	}
	description, err := m.readLine("Description: ")
	if err != nil {
		return position.CreatePositionRequest{}, err
	}
	baseSalary, err := m.readDecimal("Base salary: ")
	if err != nil {
		return position.CreatePositionRequest{}, err
	}
	level, err := m.readLine("Level (" + strings.Join(position.Levels(), ", ") + "): ")
	if err != nil {
		return position.CreatePositionRequest{}, err
	}

	return position.CreatePositionRequest{
		Name:        name,
		Description: description,
		BaseSalary:  baseSalary,
		Level:       level,
	}, nil
}

func (m *Menu) printPositions(positions []position.Position) {
	if len(positions) == 0 {
		fmt.Fprintln(m.out, "No positions found")
		return
	}
	for _, p := range positions {
		fmt.Fprintf(m.out, "  [%d] %s (%s) base salary %s | %s\n",
			p.ID, p.Name, p.Level, p.BaseSalary.StringFixed(2), p.Description)
	}
}
