package staff

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-go/internal/domain/position"
	"github.com/staffdesk/staffdesk-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-go/internal/repository/sqlstore"
)

// newTestService wires the full stack (service, repositories, connection
// manager) against the embedded fallback engine, exactly how a process runs
// when the primary server is unreachable.
func newTestService(t *testing.T) StaffService {
	t.Helper()

	path := filepath.Join(t.TempDir(), "staff_test.db")
	primary := database.EngineConfig{Engine: database.EnginePostgres, DSN: "invalid"}
	secondary := database.EngineConfig{
		Engine: database.EngineSQLite,
		DSN:    "file:" + path + "?_pragma=foreign_keys(1)&_pragma=case_sensitive_like(1)",
	}

	mgr := database.NewManager(primary, secondary)
	require.NoError(t, mgr.Connect())
	require.True(t, mgr.IsFallbackActive())

	svc := NewStaffService(mgr, sqlstore.NewPositionRepository(mgr), sqlstore.NewEmployeeRepository(mgr))
	t.Cleanup(svc.Shutdown)
	return svc
}

func createPosition(t *testing.T, ctx context.Context, svc StaffService, name string) position.Position {
	t.Helper()
	p, err := svc.CreatePosition(ctx, position.CreatePositionRequest{
		Name:       name,
		BaseSalary: decimal.NewFromInt(1000),
		Level:      position.LevelJunior,
	})
	require.NoError(t, err)
	return p
}

func createEmployee(t *testing.T, ctx context.Context, svc StaffService, number string, positionID int64) employee.Employee {
	t.Helper()
	e, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeNumber: number,
		FirstName:      "Test",
		LastName:       "Person",
		Email:          number + "@example.com",
		Phone:          "555-000-111",
		HireDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CurrentSalary:  decimal.NewFromInt(1500),
		PositionID:     positionID,
	})
	require.NoError(t, err)
	return e
}

func TestCreatePosition_DuplicateNameRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	createPosition(t, ctx, svc, "Engineer")

	_, err := svc.CreatePosition(ctx, position.CreatePositionRequest{
		Name:       "Engineer",
		BaseSalary: decimal.NewFromInt(2000),
		Level:      position.LevelSenior,
	})
	require.ErrorIs(t, err, position.ErrPositionNameExists)

	// No second row was inserted.
	all, err := svc.GetAllPositions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreatePosition_ValidationRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreatePosition(ctx, position.CreatePositionRequest{
		Name:       "",
		BaseSalary: decimal.NewFromInt(-5),
		Level:      "",
	})
	require.Error(t, err)

	all, err := svc.GetAllPositions(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdatePosition(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	p := createPosition(t, ctx, svc, "Engineer")
	createPosition(t, ctx, svc, "Manager")

	// Keeping its own name is never a collision.
	updated, err := svc.UpdatePosition(ctx, position.UpdatePositionRequest{
		ID:         p.ID,
		Name:       "Engineer",
		BaseSalary: decimal.NewFromInt(1100),
		Level:      position.LevelSemiSenior,
	})
	require.NoError(t, err)
	assert.Equal(t, position.LevelSemiSenior, updated.Level)

	// Renaming onto another position's name is.
	_, err = svc.UpdatePosition(ctx, position.UpdatePositionRequest{
		ID:         p.ID,
		Name:       "Manager",
		BaseSalary: decimal.NewFromInt(1100),
		Level:      position.LevelSemiSenior,
	})
	assert.ErrorIs(t, err, position.ErrPositionNameExists)

	_, err = svc.UpdatePosition(ctx, position.UpdatePositionRequest{
		ID:         9999,
		Name:       "Director",
		BaseSalary: decimal.NewFromInt(1),
		Level:      position.LevelExecutive,
	})
	assert.ErrorIs(t, err, position.ErrPositionNotFound)
}

func TestDeletePosition_LifecycleScenario(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	// create Position("Engineer") succeeds
	p, err := svc.CreatePosition(ctx, position.CreatePositionRequest{
		Name:       "Engineer",
		BaseSalary: decimal.NewFromInt(1000),
		Level:      position.LevelJunior,
	})
	require.NoError(t, err)

	// creating it again fails with a duplicate error
	_, err = svc.CreatePosition(ctx, position.CreatePositionRequest{
		Name:       "Engineer",
		BaseSalary: decimal.NewFromInt(1000),
		Level:      position.LevelJunior,
	})
	require.ErrorIs(t, err, position.ErrPositionNameExists)

	// an employee referencing the position blocks deletion
	e, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeNumber: "E1",
		FirstName:      "A",
		LastName:       "B",
		Email:          "a@b.com",
		Phone:          "555-000-222",
		HireDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CurrentSalary:  decimal.NewFromInt(1000),
		PositionID:     p.ID,
	})
	require.NoError(t, err)

	err = svc.DeletePosition(ctx, p.ID)
	require.ErrorIs(t, err, position.ErrPositionHasEmployees)
	assert.Contains(t, err.Error(), "1 employee(s)")

	// the position still exists after the refused delete
	_, err = svc.GetPositionByID(ctx, p.ID)
	require.NoError(t, err)

	// deactivating does not release the reference, deleting does
	require.NoError(t, svc.DeactivateEmployee(ctx, e.ID))
	got, err := svc.GetEmployeeByID(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	err = svc.DeletePosition(ctx, p.ID)
	require.ErrorIs(t, err, position.ErrPositionHasEmployees)

	require.NoError(t, svc.DeleteEmployee(ctx, e.ID))
	require.NoError(t, svc.DeletePosition(ctx, p.ID))

	_, err = svc.GetPositionByID(ctx, p.ID)
	assert.ErrorIs(t, err, position.ErrPositionNotFound)
}

func TestDeletePosition_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	err := svc.DeletePosition(ctx, 1234)
	assert.ErrorIs(t, err, position.ErrPositionNotFound)
}

func TestCreateEmployee_DuplicateNumberRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	p := createPosition(t, ctx, svc, "Engineer")
	createEmployee(t, ctx, svc, "EMP-100", p.ID)

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeNumber: "EMP-100",
		FirstName:      "Other",
		LastName:       "Person",
		HireDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CurrentSalary:  decimal.NewFromInt(1000),
		PositionID:     p.ID,
	})
	require.ErrorIs(t, err, employee.ErrEmployeeNumberExists)

	all, err := svc.GetAllEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateEmployee_DuplicateEmailRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	p := createPosition(t, ctx, svc, "Engineer")
	createEmployee(t, ctx, svc, "EMP-100", p.ID) // EMP-100@example.com

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeNumber: "EMP-101",
		FirstName:      "Other",
		LastName:       "Person",
		Email:          "EMP-100@example.com",
		HireDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CurrentSalary:  decimal.NewFromInt(1000),
		PositionID:     p.ID,
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestCreateEmployee_MissingPositionRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeNumber: "EMP-100",
		FirstName:      "A",
		LastName:       "B",
		HireDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CurrentSalary:  decimal.NewFromInt(1000),
		PositionID:     77,
	})
	assert.ErrorIs(t, err, position.ErrPositionNotFound)
}

func TestUpdateEmployee_MutableFieldsOnly(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	p1 := createPosition(t, ctx, svc, "Engineer")
	p2 := createPosition(t, ctx, svc, "Manager")
	e := createEmployee(t, ctx, svc, "EMP-100", p1.ID)

	updated, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:            e.ID,
		FirstName:     "New",
		LastName:      "Name",
		Email:         "new.name@example.com",
		Phone:         "555-999-888",
		CurrentSalary: decimal.NewFromInt(4000),
		PositionID:    p2.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.FirstName)
	assert.Equal(t, p2.ID, updated.PositionID)
	assert.Equal(t, e.EmployeeNumber, updated.EmployeeNumber)
	assert.True(t, updated.HireDate.Equal(e.HireDate))

	_, err = svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:            9999,
		FirstName:     "A",
		LastName:      "B",
		CurrentSalary: decimal.NewFromInt(1),
		PositionID:    p1.ID,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSoftDeleteVisibility(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	p := createPosition(t, ctx, svc, "Engineer")
	e := createEmployee(t, ctx, svc, "EMP-100", p.ID)

	require.NoError(t, svc.DeactivateEmployee(ctx, e.ID))

	got, err := svc.GetEmployeeByID(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	all, err := svc.GetAllEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	active, err := svc.GetActiveEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	inactive, err := svc.GetInactiveEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, inactive, 1)
}

func TestActivateEmployee_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	p := createPosition(t, ctx, svc, "Engineer")
	e := createEmployee(t, ctx, svc, "EMP-100", p.ID)

	// Already active: no error, state unchanged.
	require.NoError(t, svc.ActivateEmployee(ctx, e.ID))

	got, err := svc.GetEmployeeByID(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)

	assert.ErrorIs(t, svc.ActivateEmployee(ctx, 9999), employee.ErrEmployeeNotFound)
	assert.ErrorIs(t, svc.DeactivateEmployee(ctx, 9999), employee.ErrEmployeeNotFound)
	assert.ErrorIs(t, svc.DeleteEmployee(ctx, 9999), employee.ErrEmployeeNotFound)
}

func TestStatistics(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	p := createPosition(t, ctx, svc, "Engineer")
	createPosition(t, ctx, svc, "Manager")
	e1 := createEmployee(t, ctx, svc, "E1", p.ID)
	createEmployee(t, ctx, svc, "E2", p.ID)
	require.NoError(t, svc.DeactivateEmployee(ctx, e1.ID))

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalEmployees)
	assert.Equal(t, int64(1), stats.ActiveEmployees)
	assert.Equal(t, int64(1), stats.InactiveEmployees)
	assert.Equal(t, int64(2), stats.TotalPositions)
}

func TestInitializeSampleData(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.InitializeSampleData(ctx))

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalPositions)
	assert.Equal(t, int64(4), stats.TotalEmployees)
	assert.Equal(t, int64(4), stats.ActiveEmployees)

	// Seeding is a first-run affair only.
	require.NoError(t, svc.InitializeSampleData(ctx))
	stats, err = svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalPositions)
}

func TestFindByNameSubstring(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	createPosition(t, ctx, svc, "Senior Developer")
	createPosition(t, ctx, svc, "Junior Developer")
	p := createPosition(t, ctx, svc, "Manager")
	createEmployee(t, ctx, svc, "E1", p.ID) // Test Person

	positions, err := svc.FindPositionsByName(ctx, "Developer")
	require.NoError(t, err)
	assert.Len(t, positions, 2)

	employees, err := svc.FindEmployeesByName(ctx, "Pers")
	require.NoError(t, err)
	assert.Len(t, employees, 1)

	byPosition, err := svc.GetEmployeesByPosition(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, byPosition, 1)
}

func TestDatabaseStatus_FallbackReported(t *testing.T) {
	svc := newTestService(t)

	status := svc.DatabaseStatus()
	assert.True(t, status.Fallback)
	assert.Equal(t, string(database.EngineSQLite), status.Engine)
}
