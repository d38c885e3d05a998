package employment

import "context"

type Repository interface {
	// Create appends the record inside a single transaction; no partial
	// record is ever visible on failure.
	Create(ctx context.Context, rec *Record) error
}
