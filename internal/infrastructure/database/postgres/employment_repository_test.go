package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"loan-processing-api/internal/domain/employment"
	"loan-processing-api/internal/pkg/apperrors"
)

func setupEmploymentRepo(t *testing.T) (context.Context, *EmploymentRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}

	ctx := context.Background()
	repo := NewEmploymentRepository(mockPool, logger)

	return ctx, repo, mockPool
}

func TestCreateEmploymentRecord(t *testing.T) {
	ctx, repo, mockPool := setupEmploymentRepo(t)
	defer mockPool.Close()

	rec := employment.NewRecord("CUST0111", "Software Engineer", decimal.NewFromFloat(50000.75))

	mockPool.ExpectBegin()
	mockPool.ExpectQuery(regexp.QuoteMeta("INSERT INTO employment_records")).
		WithArgs(
			rec.CustomerID,
			rec.Designation,
			int64(50000),
			employment.DefaultStatus,
			employment.DefaultIncomeVerification,
		).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now()))
	mockPool.ExpectCommit()
	mockPool.ExpectRollback()

	err := repo.Create(ctx, rec)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.True(t, decimal.NewFromInt(50000).Equal(rec.MonthlyIncome),
		"entity income reports the stored whole-unit value, not the fractional input")
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestCreateEmploymentRecordMissingCustomer(t *testing.T) {
	ctx, repo, mockPool := setupEmploymentRepo(t)
	defer mockPool.Close()

	rec := employment.NewRecord("CUST9999", "Clerk", decimal.NewFromInt(20000))

	mockPool.ExpectBegin()
	mockPool.ExpectQuery(regexp.QuoteMeta("INSERT INTO employment_records")).
		WithArgs(
			rec.CustomerID,
			rec.Designation,
			int64(20000),
			employment.DefaultStatus,
			employment.DefaultIncomeVerification,
		).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "employment_records_customer_id_fkey"})
	mockPool.ExpectRollback()

	err := repo.Create(ctx, rec)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestLatestMonthlyIncome(t *testing.T) {
	ctx, repo, mockPool := setupEmploymentRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta("SELECT monthly_income FROM employment_records")).
		WithArgs("CUST0111").
		WillReturnRows(pgxmock.NewRows([]string{"monthly_income"}).AddRow(int64(50000)))

	income, err := repo.LatestMonthlyIncome(ctx, "CUST0111")
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(50000).Equal(income))
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestLatestMonthlyIncomeNoRecord(t *testing.T) {
	ctx, repo, mockPool := setupEmploymentRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta("SELECT monthly_income FROM employment_records")).
		WithArgs("CUST0111").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.LatestMonthlyIncome(ctx, "CUST0111")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}
