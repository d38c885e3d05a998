package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"loan-processing-api/internal/event"
	"loan-processing-api/internal/infrastructure/monitoring"
	"loan-processing-api/internal/pkg/apperrors"
)

const customerNotFoundMsg = "Customer not found by repository"

type CustomerService interface {
	RegisterCustomer(ctx context.Context, cust *Customer) (*Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*Customer, error)
	SearchCustomers(ctx context.Context, name string) ([]*Customer, error)
	GetCustomerSummary(ctx context.Context, customerID string) (*Summary, error)
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo    CustomerRepository
	incomes IncomeSource
	loans   LoanSource
	pub     event.EventPublisher
	logger  *slog.Logger
}

func NewCustomerService(repo CustomerRepository, incomes IncomeSource, loans LoanSource, pub event.EventPublisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if incomes == nil || loans == nil {
		panic("summary sources cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}
	if pub == nil {
		pub = event.NoopEventPublisher{}
	}

	return &customerService{
		repo:    repo,
		incomes: incomes,
		loans:   loans,
		pub:     pub,
		logger:  logger.With(slog.String("component", "customerService")),
	}
}

func newCustomerEventPayload(cust *Customer) event.CustomerEventPayload {
	if cust == nil {
		return event.CustomerEventPayload{}
	}
	return event.CustomerEventPayload{
		CustomerID:    cust.CustomerID,
		Name:          cust.Name,
		Email:         cust.Email,
		City:          cust.City,
		State:         cust.State,
		CustomerSince: cust.CustomerSince,
	}
}

func (s *customerService) RegisterCustomer(ctx context.Context, cust *Customer) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to register new customer")

	if cust == nil {
		return nil, fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}
	cust.Name = strings.TrimSpace(cust.Name)
	if cust.Name == "" {
		s.logger.WarnContext(ctx, "Validation failed: name is empty")
		return nil, apperrors.NewValidationError("name", "cannot be empty")
	}
	if cust.Mobile <= 0 {
		s.logger.WarnContext(ctx, "Validation failed: mobile is not positive", slog.String("name", cust.Name))
		return nil, apperrors.NewValidationError("mobile", "must be a positive number")
	}
	s.logger.DebugContext(ctx, "Input validation passed", slog.String("name", cust.Name))

	if err := s.repo.Create(ctx, cust); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to create customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to register customer: %w", err)
	}
	monitoring.Business.CustomersCreatedTotal.Inc()

	logCtx := s.logger.With(slog.String("customerID", cust.CustomerID))
	logCtx.InfoContext(ctx, "Successfully registered new customer, publishing creation event")

	createdEvent := event.CustomerCreatedEvent{
		Timestamp: time.Now(),
		Payload:   newCustomerEventPayload(cust),
	}
	if pubErr := s.pub.PublishCustomerCreated(ctx, createdEvent); pubErr != nil {
		logCtx.ErrorContext(ctx, "Customer registered, but FAILED to publish creation event", slog.Any("error", pubErr))
	}

	return cust, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID string) (*Customer, error) {
	s.logger.DebugContext(ctx, "Attempting to get customer by ID", slog.String("customerID", customerID))

	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, customerNotFoundMsg, slog.String("customerID", customerID))
			return nil, err
		}
		s.logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %s: %w", customerID, err)
	}

	return cust, nil
}

func (s *customerService) SearchCustomers(ctx context.Context, name string) ([]*Customer, error) {
	s.logger.DebugContext(ctx, "Attempting to search customers by name", slog.String("term", name))

	name = strings.TrimSpace(name)
	if name == "" {
		s.logger.WarnContext(ctx, "Validation failed: search term is empty")
		return nil, apperrors.NewValidationError("name", "search term cannot be empty")
	}

	matches, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error searching customers", slog.Any("error", err))
		return nil, fmt.Errorf("failed to search customers by name %q: %w", name, err)
	}
	if len(matches) == 0 {
		s.logger.InfoContext(ctx, "Search matched no customers", slog.String("term", name))
		return nil, ErrNoSearchResults
	}

	s.logger.InfoContext(ctx, "Search finished", slog.String("term", name), slog.Int("matches", len(matches)))
	return matches, nil
}

// GetCustomerSummary joins the customer profile with the latest recorded
// income and the qualifying loans into one read-only view.
func (s *customerService) GetCustomerSummary(ctx context.Context, customerID string) (*Summary, error) {
	logCtx := s.logger.With(slog.String("customerID", customerID))
	logCtx.DebugContext(ctx, "Attempting to build customer summary")

	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, customerNotFoundMsg)
			return nil, err
		}
		logCtx.ErrorContext(ctx, "Repository error finding customer for summary", slog.Any("error", err))
		return nil, fmt.Errorf("failed to load customer %s for summary: %w", customerID, err)
	}

	income, err := s.incomes.LatestMonthlyIncome(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logCtx.ErrorContext(ctx, "Failed to load monthly income for summary", slog.Any("error", err))
			return nil, fmt.Errorf("failed to load income for customer %s: %w", customerID, err)
		}
		// No employment record yet; income reports as zero.
		income = decimal.Zero
	}

	loans, err := s.loans.QualifyingLoans(ctx, customerID)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to load qualifying loans for summary", slog.Any("error", err))
		return nil, fmt.Errorf("failed to load loans for customer %s: %w", customerID, err)
	}

	creditScore, err := s.loans.LatestCreditScore(ctx, customerID)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to load credit score for summary", slog.Any("error", err))
		return nil, fmt.Errorf("failed to load credit score for customer %s: %w", customerID, err)
	}

	logCtx.InfoContext(ctx, "Customer summary built", slog.Int("existing_loans", len(loans)))
	return &Summary{
		CustomerID:    cust.CustomerID,
		Name:          cust.Name,
		MonthlyIncome: income,
		CreditScore:   creditScore,
		ExistingLoans: loans,
	}, nil
}
