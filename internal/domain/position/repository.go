package position

import "context"

type PositionRepository interface {
	// Save inserts when the position has no identity yet and updates
	// otherwise. Either path runs in its own transaction.
	Save(ctx context.Context, p Position) (Position, error)
	GetByID(ctx context.Context, id int64) (Position, error)
	GetByName(ctx context.Context, name string) (Position, error)
	GetAll(ctx context.Context) ([]Position, error)
	SearchByName(ctx context.Context, name string) ([]Position, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	// Delete reports whether a row existed. It refuses with
	// ErrPositionHasEmployees when dependent employees exist; the check and
	// the removal share one transaction.
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}
