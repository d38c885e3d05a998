package loan

import "context"

type Repository interface {
	// Create appends the application inside a single transaction; no partial
	// record is ever visible on failure.
	Create(ctx context.Context, app *Application) error

	CountByStatus(ctx context.Context, status string) (int64, error)
}
