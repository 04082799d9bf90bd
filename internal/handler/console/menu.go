// Package console is the text front-end. It parses input, formats output
// and forwards every operation to the staff service; no business rule lives
// here.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-go/internal/service/staff"
)

type Menu struct {
	svc staff.StaffService
	in  *bufio.Reader
	out io.Writer
}

func NewMenu(svc staff.StaffService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		svc: svc,
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Run drives the main menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "===== STAFF MANAGEMENT =====")
		fmt.Fprintln(m.out, "1. Manage positions")
		fmt.Fprintln(m.out, "2. Manage employees")
		fmt.Fprintln(m.out, "3. Queries and statistics")
		fmt.Fprintln(m.out, "4. Connection info")
		fmt.Fprintln(m.out, "5. Exit")

		choice, err := m.readInt("Option: ")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			m.printError(err)
			continue
		}

		switch choice {
		case 1:
			m.positionsMenu(ctx)
		case 2:
			m.employeesMenu(ctx)
		case 3:
			m.queriesMenu(ctx)
		case 4:
			m.printConnectionInfo()
		case 5:
			return nil
		default:
			fmt.Fprintln(m.out, "Unknown option")
		}
	}
}

func (m *Menu) printConnectionInfo() {
	status := m.svc.DatabaseStatus()
	fmt.Fprintln(m.out, "Connection info:")
	fmt.Fprintf(m.out, "  Engine:   %s\n", status.Engine)
	fmt.Fprintf(m.out, "  Details:  %s\n", status.Details)
	fmt.Fprintf(m.out, "  Fallback: %v\n", status.Fallback)
}

func (m *Menu) printError(err error) {
	fmt.Fprintf(m.out, "Error: %v\n", err)
}

// ==================== INPUT HELPERS ====================

func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) readInt(prompt string) (int64, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", line)
	}
	return n, nil
}

func (m *Menu) readDecimal(prompt string) (decimal.Decimal, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(line)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("expected an amount, got %q", line)
	}
	return d, nil
}

func (m *Menu) readDate(prompt string) (time.Time, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse("2006-01-02", line)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected a date (YYYY-MM-DD), got %q", line)
	}
	return t, nil
}
