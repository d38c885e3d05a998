package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"loan-processing-api/internal/domain/customer"
	"loan-processing-api/internal/domain/loan"
	"loan-processing-api/internal/infrastructure/monitoring"
	"loan-processing-api/internal/pkg/apperrors"
)

type LoanRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ loan.Repository = (*LoanRepository)(nil)

var _ customer.LoanSource = (*LoanRepository)(nil)

func NewLoanRepository(db DBPool, logger *slog.Logger) *LoanRepository {
	if db == nil {
		panic("DBPool cannot be nil for LoanRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewLoanRepository, using default stderr handler")
	}
	return &LoanRepository{db: db, logger: logger.With("component", "LoanRepository")}
}

func (r *LoanRepository) Create(ctx context.Context, app *loan.Application) error {
	if app == nil {
		return fmt.Errorf("%w: loan application cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert loan application", slog.String("customerID", app.CustomerID))
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

	// Amounts are persisted in whole currency units; fractional input is
	// truncated on the entity itself so the stored row and the response the
	// caller sees carry the same figure.
	app.Amount = decimal.NewFromInt(app.Amount.IntPart())
	var emi *int64
	if app.EMI != nil {
		v := app.EMI.IntPart()
		truncated := decimal.NewFromInt(v)
		app.EMI = &truncated
		emi = &v
	}

	insertSQL := `
        INSERT INTO loan_applications (customer_id, loan_required, loan_amount, loan_purpose,
            application_date, loan_status, collateral_required, emi, tenure_months, credit_score,
            created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
        RETURNING id, created_at`

	err = tx.QueryRow(ctx, insertSQL,
		app.CustomerID,
		app.LoanRequired,
		app.Amount.IntPart(),
		app.Purpose,
		app.ApplicationDate,
		app.Status,
		app.CollateralRequired,
		emi,
		app.TenureMonths,
		app.CreditScore,
	).Scan(&app.ID, &app.CreatedAt)

	if err == nil {
		err = tx.Commit(ctx)
	}

	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery("CreateLoanApplication", status, time.Since(startTime))

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrNotFound) {
			r.logger.WarnContext(ctx, "Loan application references a missing customer", slog.String("customerID", app.CustomerID))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert loan application", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert loan application: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Loan application inserted successfully", slog.Int64("applicationID", app.ID))
	return nil
}

func (r *LoanRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	query := `SELECT COUNT(*) FROM loan_applications WHERE loan_status = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, status).Scan(&count)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to count loan applications by status", slog.Any("error", err))
		return 0, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return count, nil
}

// QualifyingLoans lists the applications that count as existing loans for
// summary reporting, in the order the store returns them. The qualifying
// predicate lives on the entity (IsExistingLoan), not in the query.
func (r *LoanRepository) QualifyingLoans(ctx context.Context, customerID string) ([]customer.LoanSummary, error) {
	query := `
        SELECT loan_required, loan_purpose, loan_amount, emi, tenure_months, loan_status
        FROM loan_applications
        WHERE customer_id = $1
        ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query qualifying loans", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query qualifying loans: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	summaries := make([]customer.LoanSummary, 0)
	for rows.Next() {
		var (
			required     string
			purpose      string
			amount       int64
			emi          *int64
			tenureMonths *int
			loanStatus   string
		)
		if err := rows.Scan(&required, &purpose, &amount, &emi, &tenureMonths, &loanStatus); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan qualifying loan row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan qualifying loan row: %w", apperrors.ErrDatabase, err)
		}

		app := loan.Application{
			LoanRequired: required,
			Purpose:      purpose,
			Amount:       decimal.NewFromInt(amount),
			TenureMonths: tenureMonths,
			Status:       loanStatus,
		}
		if emi != nil {
			v := decimal.NewFromInt(*emi)
			app.EMI = &v
		}
		if !app.IsExistingLoan() {
			continue
		}

		summaries = append(summaries, customer.LoanSummary{
			Type:        app.Purpose,
			Amount:      app.Amount,
			MonthlyEMI:  app.MonthlyEMI(),
			TenureYears: app.TenureYears(),
			Status:      app.Status,
		})
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating qualifying loan rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating qualifying loan rows: %w", apperrors.ErrDatabase, err)
	}

	return summaries, nil
}

// LatestCreditScore reads the score on the most recent requested application
// by application date. Ties break on the higher row id. (nil, nil) when the
// customer has no requested application.
func (r *LoanRepository) LatestCreditScore(ctx context.Context, customerID string) (*int, error) {
	query := `
        SELECT credit_score FROM loan_applications
        WHERE customer_id = $1 AND loan_required = $2
        ORDER BY application_date DESC, id DESC
        LIMIT 1`

	var score *int
	err := r.db.QueryRow(ctx, query, customerID, loan.LoanRequiredYes).Scan(&score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.ErrorContext(ctx, "Failed to query latest credit score", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get latest credit score: %w", apperrors.ErrDatabase, err)
	}

	return score, nil
}
