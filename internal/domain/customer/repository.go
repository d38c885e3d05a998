package customer

import (
	"context"
	"fmt"

	"loan-processing-api/internal/pkg/apperrors"
)

// ErrNoSearchResults reports a search that matched nothing. It is a NotFound
// condition for the caller, not a system error.
var ErrNoSearchResults = fmt.Errorf("%w: no customers matched the search term", apperrors.ErrNotFound)

type CustomerRepository interface {
	// Create allocates the next customer identifier and inserts the customer
	// in a single transaction. On return the CustomerID and CustomerSince
	// fields are populated.
	Create(ctx context.Context, cust *Customer) error

	FindByID(ctx context.Context, customerID string) (*Customer, error)

	// SearchByName matches the term as a case-insensitive substring of the
	// customer name. An empty result is not an error at this layer.
	SearchByName(ctx context.Context, name string) ([]*Customer, error)
}
