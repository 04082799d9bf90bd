package sqlstore

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-go/internal/domain/position"
)

func TestPositionRepository_SaveAndGetByID_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)
	repo := NewPositionRepository(mgr)

	saved, err := repo.Save(ctx, position.Position{
		Name:        "Engineer",
		Description: "Builds things",
		BaseSalary:  decimal.RequireFromString("1234.56"),
		Level:       position.LevelSenior,
	})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)

	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Engineer", got.Name)
	assert.Equal(t, "Builds things", got.Description)
	assert.Equal(t, position.LevelSenior, got.Level)
	assert.True(t, got.BaseSalary.Equal(decimal.RequireFromString("1234.56")),
		"base salary round-trip: got %s", got.BaseSalary)
}

func TestPositionRepository_Save_UpdatesExistingRow(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)
	repo := NewPositionRepository(mgr)

	p := createTestPosition(t, ctx, repo, "Analyst")

	p.Name = "Senior Analyst"
	p.BaseSalary = decimal.NewFromInt(2500)
	p.Level = position.LevelSemiSenior

	updated, err := repo.Save(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, p.ID, updated.ID)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Analyst", got.Name)
	assert.Equal(t, position.LevelSemiSenior, got.Level)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPositionRepository_Save_UpdateMissingRow(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)
	repo := NewPositionRepository(mgr)

	_, err := repo.Save(ctx, position.Position{
		ID:         9999,
		Name:       "Ghost",
		BaseSalary: decimal.NewFromInt(1),
		Level:      position.LevelJunior,
	})
	assert.ErrorIs(t, err, position.ErrPositionNotFound)
}

func TestPositionRepository_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)
	repo := NewPositionRepository(mgr)

	_, err := repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, position.ErrPositionNotFound)
}

func TestPositionRepository_GetByName(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)
	repo := NewPositionRepository(mgr)

	created := createTestPosition(t, ctx, repo, "Designer")

	got, err := repo.GetByName(ctx, "Designer")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.GetByName(ctx, "designer")
	assert.ErrorIs(t, err, position.ErrPositionNotFound)
}

func TestPositionRepository_GetAll_OrderedByName(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)
	repo := NewPositionRepository(mgr)

	createTestPosition(t, ctx, repo, "Zookeeper")
	createTestPosition(t, ctx, repo, "Accountant")
	createTestPosition(t, ctx, repo, "Manager")

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Accountant", all[0].Name)
	assert.Equal(t, "Manager", all[1].Name)
	assert.Equal(t, "Zookeeper", all[2].Name)
}

func TestPositionRepository_SearchByName_CaseSensitiveSubstring(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)
	repo := NewPositionRepository(mgr)

	createTestPosition(t, ctx, repo, "Senior Developer")
	createTestPosition(t, ctx, repo, "Junior Developer")
	createTestPosition(t, ctx, repo, "Manager")

	matches, err := repo.SearchByName(ctx, "Developer")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = repo.SearchByName(ctx, "developer")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestPositionRepository_ExistsByName(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)
	repo := NewPositionRepository(mgr)

	createTestPosition(t, ctx, repo, "Engineer")

	exists, err := repo.ExistsByName(ctx, "Engineer")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "Pilot")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPositionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)
	repo := NewPositionRepository(mgr)

	p := createTestPosition(t, ctx, repo, "Temp Role")

	deleted, err := repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, position.ErrPositionNotFound)

	deleted, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPositionRepository_Delete_RefusedWithDependents(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)
	posRepo := NewPositionRepository(mgr)
	empRepo := NewEmployeeRepository(mgr)

	p := createTestPosition(t, ctx, posRepo, "Engineer")
	createTestEmployee(t, ctx, empRepo, "E1", p.ID)

	_, err := posRepo.Delete(ctx, p.ID)
	require.ErrorIs(t, err, position.ErrPositionHasEmployees)

	// The row must survive the refused delete.
	_, err = posRepo.GetByID(ctx, p.ID)
	assert.NoError(t, err)
}
