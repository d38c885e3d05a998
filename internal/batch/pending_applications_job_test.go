package batch_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"loan-processing-api/internal/batch"
	"loan-processing-api/internal/domain/loan"
	"loan-processing-api/internal/pkg/apperrors"
)

type MockLoanService struct {
	mock.Mock
}

func (_m *MockLoanService) AddLoanApplication(ctx context.Context, customerID string, input loan.ApplicationInput) (*loan.Application, error) {
	ret := _m.Called(ctx, customerID, input)

	var r0 *loan.Application
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*loan.Application)
	}
	return r0, ret.Error(1)
}

func (_m *MockLoanService) CountPendingApplications(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(int64), ret.Error(1)
}

func setupJobTest() (*MockLoanService, *batch.PendingApplicationsJob) {
	mockService := new(MockLoanService)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	job := batch.NewPendingApplicationsJob(mockService, logger)
	return mockService, job
}

func TestPendingApplicationsJob_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockService, job := setupJobTest()
		mockService.On("CountPendingApplications", ctx).Return(int64(7), nil).Once()

		err := job.Run(ctx)
		assert.NoError(t, err)
		mockService.AssertExpectations(t)
	})

	t.Run("Count Failure Aborts Job", func(t *testing.T) {
		mockService, job := setupJobTest()
		mockService.On("CountPendingApplications", ctx).Return(int64(0), apperrors.ErrDatabase).Once()

		err := job.Run(ctx)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrDatabase))
		mockService.AssertExpectations(t)
	})

	t.Run("Propagates Wrapped Errors", func(t *testing.T) {
		mockService, job := setupJobTest()
		cause := errors.New("connection refused")
		mockService.On("CountPendingApplications", ctx).Return(int64(0), cause).Once()

		err := job.Run(ctx)
		assert.True(t, errors.Is(err, cause))
	})
}
