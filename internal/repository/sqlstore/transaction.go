package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/staffdesk/staffdesk-go/internal/pkg/database"
)

type txKey struct{}

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories run their statements against it so the same code serves
// transactional and plain reads.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTransaction executes fn inside a database transaction: begin, run,
// commit on success, roll back and propagate on failure. When the context
// already carries a transaction, fn joins it instead of beginning a nested
// one.
func WithTransaction(ctx context.Context, mgr *database.Manager, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	db, err := mgr.DB()
	if err != nil {
		return fmt.Errorf("acquire session: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("Rollback failed during panic recovery")
			}
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetQuerier returns the ambient transaction when one is active, otherwise
// the plain session handle. Reads use no explicit transaction.
func GetQuerier(ctx context.Context, mgr *database.Manager) (Querier, error) {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx, nil
	}
	return mgr.DB()
}
