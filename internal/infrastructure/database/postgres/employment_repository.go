package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"loan-processing-api/internal/domain/customer"
	"loan-processing-api/internal/domain/employment"
	"loan-processing-api/internal/pkg/apperrors"
)

type EmploymentRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ employment.Repository = (*EmploymentRepository)(nil)

var _ customer.IncomeSource = (*EmploymentRepository)(nil)

func NewEmploymentRepository(db DBPool, logger *slog.Logger) *EmploymentRepository {
	if db == nil {
		panic("DBPool cannot be nil for EmploymentRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewEmploymentRepository, using default stderr handler")
	}
	return &EmploymentRepository{
		db:     db,
		logger: logger.With("component", "EmploymentRepository"),
	}
}

func (r *EmploymentRepository) Create(ctx context.Context, rec *employment.Record) error {
	if rec == nil {
		return fmt.Errorf("%w: employment record cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert employment record", slog.String("customerID", rec.CustomerID))

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

	// Monthly income is persisted in whole currency units; fractional input is
	// truncated on the entity itself so the stored row and the response the
	// caller sees carry the same figure.
	rec.MonthlyIncome = decimal.NewFromInt(rec.MonthlyIncome.IntPart())
	insertSQL := `
        INSERT INTO employment_records (customer_id, designation, monthly_income,
            employment_status, income_verification, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
        RETURNING id, created_at`

	err = tx.QueryRow(ctx, insertSQL,
		rec.CustomerID,
		rec.Designation,
		rec.MonthlyIncome.IntPart(),
		rec.Status,
		rec.IncomeVerification,
	).Scan(&rec.ID, &rec.CreatedAt)

	if err == nil {
		err = tx.Commit(ctx)
	}
	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrNotFound) {
			r.logger.WarnContext(ctx, "Employment record references a missing customer", slog.String("customerID", rec.CustomerID))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert employment record", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert employment record: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Employment record inserted successfully", slog.Int64("recordID", rec.ID))
	return nil
}

// LatestMonthlyIncome returns the income on the most recently recorded
// employment row for the customer, or NotFound when none exists.
func (r *EmploymentRepository) LatestMonthlyIncome(ctx context.Context, customerID string) (decimal.Decimal, error) {
	query := `
        SELECT monthly_income FROM employment_records
        WHERE customer_id = $1
        ORDER BY id DESC
        LIMIT 1`

	var income int64
	err := r.db.QueryRow(ctx, query, customerID).Scan(&income)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query latest monthly income", slog.Any("error", err))
		return decimal.Zero, fmt.Errorf("%w: failed to get monthly income: %w", apperrors.ErrDatabase, err)
	}

	return decimal.NewFromInt(income), nil
}
