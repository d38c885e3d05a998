package employment_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"loan-processing-api/internal/domain/customer"
	"loan-processing-api/internal/domain/employment"
	"loan-processing-api/internal/pkg/apperrors"
)

func setupTest() (*employment.MockRepository, *employment.MockCustomerService, employment.EmploymentService) {
	mockRepo := new(employment.MockRepository)
	mockCustomers := new(employment.MockCustomerService)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := employment.NewEmploymentService(mockRepo, mockCustomers, logger)
	return mockRepo, mockCustomers, service
}

func TestEmploymentService_AddEmploymentDetails(t *testing.T) {
	ctx := context.Background()
	const customerID = "CUST0111"
	existing := &customer.Customer{CustomerID: customerID, Name: "Ramesh Gupta"}

	t.Run("Success", func(t *testing.T) {
		mockRepo, mockCustomers, service := setupTest()
		mockCustomers.On("GetCustomer", ctx, customerID).Return(existing, nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(rec *employment.Record) bool {
			match := rec.CustomerID == customerID &&
				rec.Designation == "Software Engineer" &&
				rec.MonthlyIncome.Equal(decimal.NewFromInt(50000)) &&
				rec.Status == employment.DefaultStatus &&
				rec.IncomeVerification == employment.DefaultIncomeVerification
			if match {
				rec.ID = 1
			}
			return match
		})).Return(nil).Once()

		rec, err := service.AddEmploymentDetails(ctx, customerID, " Software Engineer ", decimal.NewFromInt(50000))
		assert.NoError(t, err)
		assert.NotNil(t, rec)
		if rec != nil {
			assert.Equal(t, int64(1), rec.ID)
			assert.Equal(t, "Active", rec.Status)
			assert.Equal(t, "Pending", rec.IncomeVerification)
		}
		mockRepo.AssertExpectations(t)
		mockCustomers.AssertExpectations(t)
	})

	t.Run("Error - Empty Designation", func(t *testing.T) {
		mockRepo, mockCustomers, service := setupTest()
		_, err := service.AddEmploymentDetails(ctx, customerID, "  ", decimal.NewFromInt(50000))
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
		mockCustomers.AssertNotCalled(t, "GetCustomer", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error - Negative Income", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		_, err := service.AddEmploymentDetails(ctx, customerID, "Clerk", decimal.NewFromInt(-1))
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error - Customer Missing Writes Nothing", func(t *testing.T) {
		mockRepo, mockCustomers, service := setupTest()
		mockCustomers.On("GetCustomer", ctx, "CUST9999").Return(nil, apperrors.ErrNotFound).Once()

		_, err := service.AddEmploymentDetails(ctx, "CUST9999", "Clerk", decimal.NewFromInt(50000))
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error - Repository Failure", func(t *testing.T) {
		mockRepo, mockCustomers, service := setupTest()
		mockCustomers.On("GetCustomer", ctx, customerID).Return(existing, nil).Once()
		mockRepo.On("Create", ctx, mock.Anything).Return(apperrors.ErrDatabase).Once()

		_, err := service.AddEmploymentDetails(ctx, customerID, "Clerk", decimal.NewFromInt(50000))
		assert.True(t, errors.Is(err, apperrors.ErrDatabase))
	})
}
