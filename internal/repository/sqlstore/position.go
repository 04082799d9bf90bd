package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/staffdesk/staffdesk-go/internal/domain/position"
	"github.com/staffdesk/staffdesk-go/internal/pkg/database"
)

type positionRepositoryImpl struct {
	db *database.Manager
}

func NewPositionRepository(db *database.Manager) position.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

// Save implements position.PositionRepository.
func (r *positionRepositoryImpl) Save(ctx context.Context, p position.Position) (position.Position, error) {
	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q, err := GetQuerier(ctx, r.db)
		if err != nil {
			return err
		}

		if p.ID == 0 {
			query := r.db.Rebind(`
				INSERT INTO positions (name, description, base_salary, level)
				VALUES (?, ?, ?, ?)
				RETURNING id
			`)
			if err := q.QueryRowContext(ctx, query, p.Name, stringToNull(p.Description), p.BaseSalary, p.Level).Scan(&p.ID); err != nil {
				return fmt.Errorf("insert position: %w", err)
			}
			log.Info().Int64("id", p.ID).Str("name", p.Name).Msg("Position created")
			return nil
		}

		query := r.db.Rebind(`
			UPDATE positions
			SET name = ?, description = ?, base_salary = ?, level = ?
			WHERE id = ?
		`)
		result, err := q.ExecContext(ctx, query, p.Name, stringToNull(p.Description), p.BaseSalary, p.Level, p.ID)
		if err != nil {
			return fmt.Errorf("update position: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("update position: %w", err)
		}
		if affected == 0 {
			return position.ErrPositionNotFound
		}
		log.Info().Int64("id", p.ID).Str("name", p.Name).Msg("Position updated")
		return nil
	})
	if err != nil {
		return position.Position{}, err
	}
	return p, nil
}

// GetByID implements position.PositionRepository.
func (r *positionRepositoryImpl) GetByID(ctx context.Context, id int64) (position.Position, error) {
	q, err := GetQuerier(ctx, r.db)
	if err != nil {
		return position.Position{}, err
	}

	query := r.db.Rebind(`
		SELECT id, name, description, base_salary, level
		FROM positions
		WHERE id = ?
	`)
	return scanPosition(q.QueryRowContext(ctx, query, id))
}

// GetByName implements position.PositionRepository.
func (r *positionRepositoryImpl) GetByName(ctx context.Context, name string) (position.Position, error) {
	q, err := GetQuerier(ctx, r.db)
	if err != nil {
		return position.Position{}, err
	}

	query := r.db.Rebind(`
		SELECT id, name, description, base_salary, level
		FROM positions
		WHERE name = ?
	`)
	return scanPosition(q.QueryRowContext(ctx, query, name))
}

// GetAll implements position.PositionRepository.
func (r *positionRepositoryImpl) GetAll(ctx context.Context) ([]position.Position, error) {
	query := `
		SELECT id, name, description, base_salary, level
		FROM positions
		ORDER BY name
	`
	return r.queryPositions(ctx, query)
}

// SearchByName implements position.PositionRepository.
func (r *positionRepositoryImpl) SearchByName(ctx context.Context, name string) ([]position.Position, error) {
	query := `
		SELECT id, name, description, base_salary, level
		FROM positions
		WHERE name LIKE ?
		ORDER BY name
	`
	return r.queryPositions(ctx, query, "%"+name+"%")
}

// ExistsByName implements position.PositionRepository.
func (r *positionRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	q, err := GetQuerier(ctx, r.db)
	if err != nil {
		return false, err
	}

	query := r.db.Rebind(`SELECT COUNT(*) FROM positions WHERE name = ?`)
	var count int64
	if err := q.QueryRowContext(ctx, query, name).Scan(&count); err != nil {
		return false, fmt.Errorf("check position name: %w", err)
	}
	return count > 0, nil
}

// Delete implements position.PositionRepository. The dependent-employee
// check and the removal run inside the same transaction.
func (r *positionRepositoryImpl) Delete(ctx context.Context, id int64) (bool, error) {
	var existed bool
	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q, err := GetQuerier(ctx, r.db)
		if err != nil {
			return err
		}

		var dependents int64
		countQuery := r.db.Rebind(`SELECT COUNT(*) FROM employees WHERE position_id = ?`)
		if err := q.QueryRowContext(ctx, countQuery, id).Scan(&dependents); err != nil {
			return fmt.Errorf("count dependent employees: %w", err)
		}
		if dependents > 0 {
			return fmt.Errorf("%w: %d employee(s) assigned", position.ErrPositionHasEmployees, dependents)
		}

		result, err := q.ExecContext(ctx, r.db.Rebind(`DELETE FROM positions WHERE id = ?`), id)
		if err != nil {
			return fmt.Errorf("delete position: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete position: %w", err)
		}
		existed = affected > 0
		if existed {
			log.Info().Int64("id", id).Msg("Position deleted")
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return existed, nil
}

// Count implements position.PositionRepository.
func (r *positionRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q, err := GetQuerier(ctx, r.db)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM positions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count positions: %w", err)
	}
	return count, nil
}

func (r *positionRepositoryImpl) queryPositions(ctx context.Context, query string, args ...any) ([]position.Position, error) {
	q, err := GetQuerier(ctx, r.db)
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query positions: %w", err)
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var (
			p           position.Position
			description sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Name, &description, &p.BaseSalary, &p.Level); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		p.Description = description.String
		positions = append(positions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return positions, nil
}

func scanPosition(row *sql.Row) (position.Position, error) {
	var (
		p           position.Position
		description sql.NullString
	)
	err := row.Scan(&p.ID, &p.Name, &description, &p.BaseSalary, &p.Level)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return position.Position{}, position.ErrPositionNotFound
		}
		return position.Position{}, fmt.Errorf("get position: %w", err)
	}
	p.Description = description.String
	return p, nil
}

func stringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
