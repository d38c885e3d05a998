package employment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"loan-processing-api/internal/domain/customer"
	"loan-processing-api/internal/infrastructure/monitoring"
	"loan-processing-api/internal/pkg/apperrors"
)

type EmploymentService interface {
	// AddEmploymentDetails appends an employment record for an existing
	// customer. Fails with NotFound when the customer does not exist.
	AddEmploymentDetails(ctx context.Context, customerID, designation string, monthlyIncome decimal.Decimal) (*Record, error)
}

var _ EmploymentService = (*employmentService)(nil)

type employmentService struct {
	repo      Repository
	customers customer.CustomerService
	logger    *slog.Logger
}

func NewEmploymentService(repo Repository, customers customer.CustomerService, logger *slog.Logger) EmploymentService {
	if repo == nil {
		panic("employment repository cannot be nil")
	}
	if customers == nil {
		panic("customer service cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewEmploymentService, using default stderr handler")
	}
	return &employmentService{
		repo:      repo,
		customers: customers,
		logger:    logger.With(slog.String("component", "employmentService")),
	}
}

func (s *employmentService) AddEmploymentDetails(ctx context.Context, customerID, designation string, monthlyIncome decimal.Decimal) (*Record, error) {
	logCtx := s.logger.With(slog.String("customerID", customerID))
	logCtx.InfoContext(ctx, "Attempting to add employment details")

	designation = strings.TrimSpace(designation)
	if designation == "" {
		logCtx.WarnContext(ctx, "Validation failed: designation is empty")
		return nil, apperrors.NewValidationError("designation", "cannot be empty")
	}
	if monthlyIncome.IsNegative() {
		logCtx.WarnContext(ctx, "Validation failed: monthly income is negative")
		return nil, apperrors.NewValidationError("monthly_income", "cannot be negative")
	}

	if _, err := s.customers.GetCustomer(ctx, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Cannot add employment details: customer does not exist")
			return nil, err
		}
		logCtx.ErrorContext(ctx, "Failed to verify customer before adding employment details", slog.Any("error", err))
		return nil, fmt.Errorf("failed to verify customer %s: %w", customerID, err)
	}

	rec := NewRecord(customerID, designation, monthlyIncome)
	if err := s.repo.Create(ctx, rec); err != nil {
		logCtx.ErrorContext(ctx, "Repository failed to save employment record", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save employment record for customer %s: %w", customerID, err)
	}
	monitoring.Business.EmploymentRecordsTotal.Inc()

	logCtx.InfoContext(ctx, "Employment details added", slog.Int64("recordID", rec.ID))
	return rec, nil
}
