package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"loan-processing-api/internal/domain/customer"
	"loan-processing-api/internal/infrastructure/monitoring"
	"loan-processing-api/internal/pkg/apperrors"
)

var errMsgFormat = "%w: %w"

const customerColumns = `customer_id, name, fathers_name, dob, age, gender, marital_status,
        address, city, state, pincode, mobile, alternate_mobile, email, nationality, customer_since`

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

// Create allocates the next customer identifier and inserts the row in one
// transaction. The max-suffix read orders by length first so suffixes that
// outgrow the zero padding still sort numerically. The unique constraint on
// customer_id is the backstop for concurrent allocations; a violation
// surfaces as a retryable conflict, never a silent success.
func (r *CustomerRepository) Create(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert new customer", slog.String("name", cust.Name))
	status := "success"
	startTime := time.Now()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to begin transaction", slog.Any("error", err))
		return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.logger.ErrorContext(ctx, "Failed to rollback transaction", slog.Any("error", rbErr))
		}
	}()

	maxSuffix, err := r.findMaxIDSuffix(ctx, tx)
	if err != nil {
		monitoring.RecordDBQuery("CreateCustomer", "error", time.Since(startTime))
		return err
	}
	cust.CustomerID = customer.NextCustomerID(maxSuffix)

	insertSQL := `
        INSERT INTO customers (customer_id, name, fathers_name, dob, age, gender, marital_status,
            address, city, state, pincode, mobile, alternate_mobile, email, nationality,
            customer_since, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW(), NOW())
        RETURNING customer_since`

	err = tx.QueryRow(ctx, insertSQL,
		cust.CustomerID,
		cust.Name,
		cust.FathersName,
		cust.DateOfBirth,
		cust.Age,
		cust.Gender,
		cust.MaritalStatus,
		cust.Address,
		cust.City,
		cust.State,
		cust.Pincode,
		cust.Mobile,
		cust.AlternateMobile,
		cust.Email,
		cust.Nationality,
	).Scan(&cust.CustomerSince)

	if err == nil {
		err = tx.Commit(ctx)
	}

	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery("CreateCustomer", status, time.Since(startTime))

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Customer identifier collided with a concurrent allocation",
				slog.String("customerID", cust.CustomerID))
			return fmt.Errorf("%w: customer identifier %s was allocated concurrently, retry the request",
				apperrors.ErrAlreadyExists, cust.CustomerID)
		}
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert customer: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.String("customerID", cust.CustomerID))
	return nil
}

// findMaxIDSuffix reads the highest issued identifier suffix inside the
// allocation transaction. Suffix parsing happens here rather than in SQL so a
// malformed stored identifier fails loudly as a data-integrity error.
func (r *CustomerRepository) findMaxIDSuffix(ctx context.Context, tx pgx.Tx) (*int, error) {
	query := `
        SELECT customer_id FROM customers
        ORDER BY length(customer_id) DESC, customer_id DESC
        LIMIT 1`

	var lastID string
	err := tx.QueryRow(ctx, query).Scan(&lastID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.ErrorContext(ctx, "Failed to query max customer identifier", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	suffix, err := customer.ParseIDSuffix(lastID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Stored customer identifier is malformed",
			slog.String("customerID", lastID), slog.Any("error", err))
		return nil, err
	}
	return &suffix, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID string) (*customer.Customer, error) {
	r.logger.DebugContext(ctx, "Attempting to find customer by ID", slog.String("customerID", customerID))

	query := `SELECT ` + customerColumns + `
        FROM customers
        WHERE customer_id = $1`

	status := "success"
	startTime := time.Now()

	var cust customer.Customer
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&cust.CustomerID,
		&cust.Name,
		&cust.FathersName,
		&cust.DateOfBirth,
		&cust.Age,
		&cust.Gender,
		&cust.MaritalStatus,
		&cust.Address,
		&cust.City,
		&cust.State,
		&cust.Pincode,
		&cust.Mobile,
		&cust.AlternateMobile,
		&cust.Email,
		&cust.Nationality,
		&cust.CustomerSince,
	)

	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery("FindCustomerByID", status, time.Since(startTime))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found", slog.String("customerID", customerID))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan customer by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer by ID: %w", apperrors.ErrDatabase, err)
	}

	return &cust, nil
}

func (r *CustomerRepository) SearchByName(ctx context.Context, name string) ([]*customer.Customer, error) {
	r.logger.DebugContext(ctx, "Attempting to search customers by name", slog.String("term", name))

	query := `SELECT ` + customerColumns + `
        FROM customers
        WHERE name ILIKE '%' || $1 || '%'
        ORDER BY customer_id ASC`

	rows, err := r.db.Query(ctx, query, name)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers by name", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to search customers: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		var cust customer.Customer
		err := rows.Scan(
			&cust.CustomerID,
			&cust.Name,
			&cust.FathersName,
			&cust.DateOfBirth,
			&cust.Age,
			&cust.Gender,
			&cust.MaritalStatus,
			&cust.Address,
			&cust.City,
			&cust.State,
			&cust.Pincode,
			&cust.Mobile,
			&cust.AlternateMobile,
			&cust.Email,
			&cust.Nationality,
			&cust.CustomerSince,
		)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan customer row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan customer row: %w", apperrors.ErrDatabase, err)
		}
		customers = append(customers, &cust)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating customer rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating customer rows: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Finished searching customers", slog.Int("count", len(customers)))
	return customers, nil
}

func translateDBError(err error, contextLogger *slog.Logger) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			contextLogger.Warn("Database unique constraint violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w: %s", apperrors.ErrAlreadyExists, pgErr.ConstraintName)
		}
		if pgErr.Code == "23503" {
			contextLogger.Warn("Database foreign key violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w: %s", apperrors.ErrNotFound, pgErr.ConstraintName)
		}

		contextLogger.Error("PostgreSQL specific error", "code", pgErr.Code, "message", pgErr.Message, "detail", pgErr.Detail)
		return fmt.Errorf("%w: db error code %s", apperrors.ErrDatabase, pgErr.Code)
	}

	contextLogger.Error("Generic database error", "error", err)
	return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
}
