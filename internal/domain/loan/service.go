package loan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"loan-processing-api/internal/domain/customer"
	"loan-processing-api/internal/event"
	"loan-processing-api/internal/infrastructure/monitoring"
	"loan-processing-api/internal/pkg/apperrors"
)

// ApplicationInput carries the caller-supplied fields of a new application.
// Optional fields fall back to the business defaults on creation.
type ApplicationInput struct {
	Amount          decimal.Decimal
	LoanRequired    string
	ApplicationDate *time.Time
	Status          string
}

type LoanService interface {
	// AddLoanApplication appends a loan application for an existing customer.
	// Fails with NotFound when the customer does not exist.
	AddLoanApplication(ctx context.Context, customerID string, input ApplicationInput) (*Application, error)

	CountPendingApplications(ctx context.Context) (int64, error)
}

var _ LoanService = (*loanService)(nil)

type loanService struct {
	repo      Repository
	customers customer.CustomerService
	pub       event.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewLoanService(repo Repository, customers customer.CustomerService, pub event.EventPublisher, logger *slog.Logger) LoanService {
	if repo == nil {
		panic("loan repository cannot be nil")
	}
	if customers == nil {
		panic("customer service cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewLoanService, using default stderr handler")
	}
	if pub == nil {
		pub = event.NoopEventPublisher{}
	}
	return &loanService{
		repo:      repo,
		customers: customers,
		pub:       pub,
		logger:    logger.With(slog.String("component", "loanService")),
		now:       time.Now,
	}
}

func (s *loanService) AddLoanApplication(ctx context.Context, customerID string, input ApplicationInput) (*Application, error) {
	logCtx := s.logger.With(slog.String("customerID", customerID))
	logCtx.InfoContext(ctx, "Attempting to add loan application")

	if input.Amount.IsNegative() {
		logCtx.WarnContext(ctx, "Validation failed: loan amount is negative")
		return nil, apperrors.NewValidationError("loan_amount", "cannot be negative")
	}

	if _, err := s.customers.GetCustomer(ctx, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Cannot add loan application: customer does not exist")
			return nil, err
		}
		logCtx.ErrorContext(ctx, "Failed to verify customer before adding loan application", slog.Any("error", err))
		return nil, fmt.Errorf("failed to verify customer %s: %w", customerID, err)
	}

	// The default date is the local calendar day, not a UTC day boundary, so
	// applications filed near midnight carry the date the caller observed.
	now := s.now()
	year, month, day := now.Date()

	app := &Application{
		CustomerID:         customerID,
		LoanRequired:       LoanRequiredYes,
		Amount:             input.Amount,
		Purpose:            DefaultPurpose,
		Status:             DefaultStatus,
		CollateralRequired: DefaultCollateral,
		ApplicationDate:    time.Date(year, month, day, 0, 0, 0, 0, now.Location()),
	}
	if v := strings.TrimSpace(input.LoanRequired); v != "" {
		app.LoanRequired = v
	}
	if v := strings.TrimSpace(input.Status); v != "" {
		app.Status = v
	}
	if input.ApplicationDate != nil {
		app.ApplicationDate = *input.ApplicationDate
	}

	if err := s.repo.Create(ctx, app); err != nil {
		logCtx.ErrorContext(ctx, "Repository failed to save loan application", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save loan application for customer %s: %w", customerID, err)
	}
	monitoring.Business.LoanApplicationsReceivedTotal.Inc()

	logCtx.InfoContext(ctx, "Loan application added", slog.Int64("applicationID", app.ID))

	receivedEvent := event.LoanApplicationReceivedEvent{
		Timestamp: time.Now(),
		Payload: event.LoanApplicationEventPayload{
			CustomerID:      app.CustomerID,
			LoanAmount:      app.Amount.InexactFloat64(),
			LoanPurpose:     app.Purpose,
			ApplicationDate: app.ApplicationDate,
			Status:          app.Status,
		},
	}
	if pubErr := s.pub.PublishLoanApplicationReceived(ctx, receivedEvent); pubErr != nil {
		logCtx.ErrorContext(ctx, "Loan application saved, but FAILED to publish event", slog.Any("error", pubErr))
	}

	return app, nil
}

func (s *loanService) CountPendingApplications(ctx context.Context) (int64, error) {
	count, err := s.repo.CountByStatus(ctx, DefaultStatus)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error counting pending applications", slog.Any("error", err))
		return 0, fmt.Errorf("failed to count pending applications: %w", err)
	}
	return count, nil
}
