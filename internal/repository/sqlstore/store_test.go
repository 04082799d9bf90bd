package sqlstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-go/internal/domain/position"
	"github.com/staffdesk/staffdesk-go/internal/pkg/database"
)

// newTestManager opens a fresh embedded store per test. The repositories run
// the same SQL against either engine, so the embedded one is what the tests
// exercise.
func newTestManager(t *testing.T) *database.Manager {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sqlstore_test.db")
	secondary := database.EngineConfig{
		Engine: database.EngineSQLite,
		DSN:    "file:" + path + "?_pragma=foreign_keys(1)&_pragma=case_sensitive_like(1)",
	}
	primary := database.EngineConfig{Engine: database.EnginePostgres, DSN: "invalid"}

	mgr := database.NewManager(primary, secondary)
	require.NoError(t, mgr.ForceEngine(secondary))
	t.Cleanup(mgr.Close)
	return mgr
}

func createTestPosition(t *testing.T, ctx context.Context, repo position.PositionRepository, name string) position.Position {
	t.Helper()
	p, err := repo.Save(ctx, position.Position{
		Name:        name,
		Description: "test position",
		BaseSalary:  decimal.NewFromInt(1000),
		Level:       position.LevelJunior,
	})
	require.NoError(t, err)
	require.NotZero(t, p.ID)
	return p
}

func createTestEmployee(t *testing.T, ctx context.Context, repo employee.EmployeeRepository, number string, positionID int64) employee.Employee {
	t.Helper()
	email := number + "@example.com"
	phone := "555-100-200"
	e, err := repo.Save(ctx, employee.Employee{
		EmployeeNumber: number,
		FirstName:      "Test",
		LastName:       "Person",
		Email:          &email,
		Phone:          &phone,
		HireDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CurrentSalary:  decimal.NewFromInt(1500),
		Active:         true,
		PositionID:     positionID,
	})
	require.NoError(t, err)
	require.NotZero(t, e.ID)
	return e
}
