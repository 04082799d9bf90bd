package staff

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-go/internal/domain/position"
)

// InitializeSampleData seeds four representative positions and employees on
// first run, detected by an empty positions table. Seeding goes through the
// regular create paths so it is bound by the same invariants as normal use;
// individual failures are logged and tolerated, never escalated.
func (s *staffServiceImpl) InitializeSampleData(ctx context.Context) error {
	count, err := s.positionRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Info().Msg("Empty store detected, seeding sample data")

	type seedEmployee struct {
		number    string
		firstName string
		lastName  string
		email     string
		phone     string
		hired     time.Time
		salary    string
	}

	seeds := []struct {
		position position.CreatePositionRequest
		employee seedEmployee
	}{
		{
			position: position.CreatePositionRequest{
				Name:        "General Manager",
				Description: "Responsible for the overall direction of the company",
				BaseSalary:  decimal.NewFromInt(5000),
				Level:       position.LevelExecutive,
			},
			employee: seedEmployee{
				number: "001-123456-1000A", firstName: "Ana", lastName: "Garcia",
				email: "ana.garcia@example.com", phone: "555-100-200",
				hired: time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC), salary: "5200",
			},
		},
		{
			position: position.CreatePositionRequest{
				Name:        "Senior Developer",
				Description: "Development of complex business applications",
				BaseSalary:  decimal.NewFromInt(3500),
				Level:       position.LevelSenior,
			},
			employee: seedEmployee{
				number: "001-123456-1001B", firstName: "Carlos", lastName: "Martinez",
				email: "carlos.martinez@example.com", phone: "555-100-201",
				hired: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), salary: "3600",
			},
		},
		{
			position: position.CreatePositionRequest{
				Name:        "Junior Developer",
				Description: "Application development under supervision",
				BaseSalary:  decimal.NewFromInt(2000),
				Level:       position.LevelJunior,
			},
			employee: seedEmployee{
				number: "001-123456-1002C", firstName: "Maria", lastName: "Rodriguez",
				email: "maria.rodriguez@example.com", phone: "555-100-202",
				hired: time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC), salary: "2100",
			},
		},
		{
			position: position.CreatePositionRequest{
				Name:        "Systems Analyst",
				Description: "Analysis and design of information systems",
				BaseSalary:  decimal.NewFromInt(2800),
				Level:       position.LevelSemiSenior,
			},
			employee: seedEmployee{
				number: "001-123456-1003D", firstName: "Pedro", lastName: "Hernandez",
				email: "pedro.hernandez@example.com", phone: "555-100-203",
				hired: time.Date(2021, 9, 20, 0, 0, 0, 0, time.UTC), salary: "2900",
			},
		},
	}

	for _, seed := range seeds {
		created, err := s.CreatePosition(ctx, seed.position)
		if err != nil {
			log.Error().Err(err).Str("position", seed.position.Name).Msg("Failed to seed position")
			continue
		}

		salary, err := decimal.NewFromString(seed.employee.salary)
		if err != nil {
			log.Error().Err(err).Str("employee_number", seed.employee.number).Msg("Failed to seed employee")
			continue
		}

		_, err = s.CreateEmployee(ctx, employee.CreateEmployeeRequest{
			EmployeeNumber: seed.employee.number,
			FirstName:      seed.employee.firstName,
			LastName:       seed.employee.lastName,
			Email:          seed.employee.email,
			Phone:          seed.employee.phone,
			HireDate:       seed.employee.hired,
			CurrentSalary:  salary,
			PositionID:     created.ID,
		})
		if err != nil {
			log.Error().Err(err).Str("employee_number", seed.employee.number).Msg("Failed to seed employee")
		}
	}

	log.Info().Msg("Sample data seeding finished")
	return nil
}
