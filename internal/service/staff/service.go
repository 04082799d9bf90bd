package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/staffdesk/staffdesk-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-go/internal/domain/position"
	"github.com/staffdesk/staffdesk-go/internal/pkg/database"
)

// StaffService is the single business-rule boundary: the presentation layer
// talks to it and to nothing below it.
type StaffService interface {
	// Position operations
	CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.Position, error)
	UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) (position.Position, error)
	DeletePosition(ctx context.Context, id int64) error
	GetPositionByID(ctx context.Context, id int64) (position.Position, error)
	GetPositionByName(ctx context.Context, name string) (position.Position, error)
	GetAllPositions(ctx context.Context) ([]position.Position, error)
	FindPositionsByName(ctx context.Context, name string) ([]position.Position, error)

	// Employee operations
	CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error)
	UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error)
	ActivateEmployee(ctx context.Context, id int64) error
	DeactivateEmployee(ctx context.Context, id int64) error
	DeleteEmployee(ctx context.Context, id int64) error
	GetEmployeeByID(ctx context.Context, id int64) (employee.Employee, error)
	GetEmployeeByNumber(ctx context.Context, employeeNumber string) (employee.Employee, error)
	GetAllEmployees(ctx context.Context) ([]employee.Employee, error)
	GetActiveEmployees(ctx context.Context) ([]employee.Employee, error)
	GetInactiveEmployees(ctx context.Context) ([]employee.Employee, error)
	FindEmployeesByName(ctx context.Context, name string) ([]employee.Employee, error)
	GetEmployeesByPosition(ctx context.Context, positionID int64) ([]employee.Employee, error)

	// Statistics and lifecycle
	Statistics(ctx context.Context) (Statistics, error)
	InitializeSampleData(ctx context.Context) error
	DatabaseStatus() DatabaseStatus
	Shutdown()
}

// Statistics are aggregate counts computed on demand, never cached.
type Statistics struct {
	TotalEmployees    int64
	ActiveEmployees   int64
	InactiveEmployees int64
	TotalPositions    int64
}

// DatabaseStatus reports which backend engine serves requests.
type DatabaseStatus struct {
	Engine   string
	Details  string
	Fallback bool
}

type staffServiceImpl struct {
	db           *database.Manager
	positionRepo position.PositionRepository
	employeeRepo employee.EmployeeRepository
}

func NewStaffService(
	db *database.Manager,
	positionRepo position.PositionRepository,
	employeeRepo employee.EmployeeRepository,
) StaffService {
	return &staffServiceImpl{
		db:           db,
		positionRepo: positionRepo,
		employeeRepo: employeeRepo,
	}
}

// ==================== POSITION OPERATIONS ====================

func (s *staffServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.Position, error) {
	if err := req.Validate(); err != nil {
		return position.Position{}, err
	}

	exists, err := s.positionRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return position.Position{}, fmt.Errorf("checking position name: %w", err)
	}
	if exists {
		return position.Position{}, fmt.Errorf("%w: %s", position.ErrPositionNameExists, req.Name)
	}

	entity := position.Position{
		Name:        req.Name,
		Description: req.Description,
		BaseSalary:  req.BaseSalary,
		Level:       req.Level,
	}

	created, err := s.positionRepo.Save(ctx, entity)
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}
	return created, nil
}

func (s *staffServiceImpl) UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) (position.Position, error) {
	if err := req.Validate(); err != nil {
		return position.Position{}, err
	}

	current, err := s.positionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return position.Position{}, err
	}

	// Uniqueness is re-checked only when the name actually changes,
	// excluding the row being updated.
	if current.Name != req.Name {
		exists, err := s.positionRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return position.Position{}, fmt.Errorf("checking position name: %w", err)
		}
		if exists {
			return position.Position{}, fmt.Errorf("%w: %s", position.ErrPositionNameExists, req.Name)
		}
	}

	current.Name = req.Name
	current.Description = req.Description
	current.BaseSalary = req.BaseSalary
	current.Level = req.Level

	updated, err := s.positionRepo.Save(ctx, current)
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to update position: %w", err)
	}
	return updated, nil
}

func (s *staffServiceImpl) DeletePosition(ctx context.Context, id int64) error {
	p, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	dependents, err := s.employeeRepo.CountByPositionID(ctx, id)
	if err != nil {
		return fmt.Errorf("counting employees for position %q: %w", p.Name, err)
	}
	if dependents > 0 {
		return fmt.Errorf("%w: %d employee(s) assigned to %q", position.ErrPositionHasEmployees, dependents, p.Name)
	}

	deleted, err := s.positionRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("position %d disappeared during delete", id)
	}
	return nil
}

func (s *staffServiceImpl) GetPositionByID(ctx context.Context, id int64) (position.Position, error) {
	return s.positionRepo.GetByID(ctx, id)
}

func (s *staffServiceImpl) GetPositionByName(ctx context.Context, name string) (position.Position, error) {
	return s.positionRepo.GetByName(ctx, name)
}

func (s *staffServiceImpl) GetAllPositions(ctx context.Context) ([]position.Position, error) {
	return s.positionRepo.GetAll(ctx)
}

func (s *staffServiceImpl) FindPositionsByName(ctx context.Context, name string) ([]position.Position, error) {
	return s.positionRepo.SearchByName(ctx, name)
}

// ==================== EMPLOYEE OPERATIONS ====================

func (s *staffServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if _, err := s.employeeRepo.GetByNumber(ctx, req.EmployeeNumber); err == nil {
		return employee.Employee{}, fmt.Errorf("%w: %s", employee.ErrEmployeeNumberExists, req.EmployeeNumber)
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, fmt.Errorf("checking employee number: %w", err)
	}

	if req.Email != "" {
		inUse, err := s.employeeRepo.EmailInUse(ctx, req.Email, 0)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("checking email: %w", err)
		}
		if inUse {
			return employee.Employee{}, fmt.Errorf("%w: %s", employee.ErrEmailExists, req.Email)
		}
	}

	if _, err := s.positionRepo.GetByID(ctx, req.PositionID); err != nil {
		return employee.Employee{}, err
	}

	entity := employee.Employee{
		EmployeeNumber: req.EmployeeNumber,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          optionalString(req.Email),
		Phone:          optionalString(req.Phone),
		HireDate:       req.HireDate,
		CurrentSalary:  req.CurrentSalary,
		Active:         true,
		PositionID:     req.PositionID,
	}

	created, err := s.employeeRepo.Save(ctx, entity)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (s *staffServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.Email != "" {
		inUse, err := s.employeeRepo.EmailInUse(ctx, req.Email, req.ID)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("checking email: %w", err)
		}
		if inUse {
			return employee.Employee{}, fmt.Errorf("%w: %s", employee.ErrEmailExists, req.Email)
		}
	}

	if _, err := s.positionRepo.GetByID(ctx, req.PositionID); err != nil {
		return employee.Employee{}, err
	}

	current.FirstName = req.FirstName
	current.LastName = req.LastName
	current.Email = optionalString(req.Email)
	current.Phone = optionalString(req.Phone)
	current.CurrentSalary = req.CurrentSalary
	current.PositionID = req.PositionID

	updated, err := s.employeeRepo.Save(ctx, current)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return updated, nil
}

func (s *staffServiceImpl) ActivateEmployee(ctx context.Context, id int64) error {
	return s.setEmployeeActive(ctx, id, true)
}

func (s *staffServiceImpl) DeactivateEmployee(ctx context.Context, id int64) error {
	return s.setEmployeeActive(ctx, id, false)
}

func (s *staffServiceImpl) setEmployeeActive(ctx context.Context, id int64, active bool) error {
	matched, err := s.employeeRepo.SetActive(ctx, id, active)
	if err != nil {
		return err
	}
	if !matched {
		return fmt.Errorf("%w: id %d", employee.ErrEmployeeNotFound, id)
	}
	return nil
}

func (s *staffServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	deleted, err := s.employeeRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: id %d", employee.ErrEmployeeNotFound, id)
	}
	return nil
}

func (s *staffServiceImpl) GetEmployeeByID(ctx context.Context, id int64) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *staffServiceImpl) GetEmployeeByNumber(ctx context.Context, employeeNumber string) (employee.Employee, error) {
	return s.employeeRepo.GetByNumber(ctx, employeeNumber)
}

func (s *staffServiceImpl) GetAllEmployees(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.GetAll(ctx)
}

func (s *staffServiceImpl) GetActiveEmployees(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.GetByActive(ctx, true)
}

func (s *staffServiceImpl) GetInactiveEmployees(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.GetByActive(ctx, false)
}

func (s *staffServiceImpl) FindEmployeesByName(ctx context.Context, name string) ([]employee.Employee, error) {
	return s.employeeRepo.SearchByName(ctx, name)
}

func (s *staffServiceImpl) GetEmployeesByPosition(ctx context.Context, positionID int64) ([]employee.Employee, error) {
	return s.employeeRepo.GetByPositionID(ctx, positionID)
}

// ==================== STATISTICS & LIFECYCLE ====================

func (s *staffServiceImpl) Statistics(ctx context.Context) (Statistics, error) {
	total, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return Statistics{}, err
	}
	active, err := s.employeeRepo.CountByActive(ctx, true)
	if err != nil {
		return Statistics{}, err
	}
	inactive, err := s.employeeRepo.CountByActive(ctx, false)
	if err != nil {
		return Statistics{}, err
	}
	positions, err := s.positionRepo.Count(ctx)
	if err != nil {
		return Statistics{}, err
	}

	return Statistics{
		TotalEmployees:    total,
		ActiveEmployees:   active,
		InactiveEmployees: inactive,
		TotalPositions:    positions,
	}, nil
}

func (s *staffServiceImpl) DatabaseStatus() DatabaseStatus {
	return DatabaseStatus{
		Engine:   string(s.db.ActiveEngine()),
		Details:  s.db.ConnectionDetails(),
		Fallback: s.db.IsFallbackActive(),
	}
}

// Shutdown releases the held connection resource. Safe to call more than
// once.
func (s *staffServiceImpl) Shutdown() {
	s.db.Close()
	log.Info().Msg("Staff service shut down")
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
