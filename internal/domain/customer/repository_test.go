package customer

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"loan-processing-api/internal/event"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (_m *MockCustomerRepository) Create(ctx context.Context, cust *Customer) error {
	ret := _m.Called(ctx, cust)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Customer) error); ok {
		r0 = rf(ctx, cust)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockCustomerRepository) FindByID(ctx context.Context, customerID string) (*Customer, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *Customer
	if rf, ok := ret.Get(0).(func(context.Context, string) *Customer); ok {
		r0 = rf(ctx, customerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, customerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerRepository) SearchByName(ctx context.Context, name string) ([]*Customer, error) {
	ret := _m.Called(ctx, name)

	var r0 []*Customer
	if rf, ok := ret.Get(0).(func(context.Context, string) []*Customer); ok {
		r0 = rf(ctx, name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

type MockIncomeSource struct {
	mock.Mock
}

func (_m *MockIncomeSource) LatestMonthlyIncome(ctx context.Context, customerID string) (decimal.Decimal, error) {
	ret := _m.Called(ctx, customerID)
	return ret.Get(0).(decimal.Decimal), ret.Error(1)
}

type MockLoanSource struct {
	mock.Mock
}

func (_m *MockLoanSource) QualifyingLoans(ctx context.Context, customerID string) ([]LoanSummary, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []LoanSummary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]LoanSummary)
	}
	return r0, ret.Error(1)
}

func (_m *MockLoanSource) LatestCreditScore(ctx context.Context, customerID string) (*int, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *int
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*int)
	}
	return r0, ret.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (_m *MockEventPublisher) PublishCustomerCreated(ctx context.Context, evt event.CustomerCreatedEvent) error {
	ret := _m.Called(ctx, evt)
	return ret.Error(0)
}

func (_m *MockEventPublisher) PublishLoanApplicationReceived(ctx context.Context, evt event.LoanApplicationReceivedEvent) error {
	ret := _m.Called(ctx, evt)
	return ret.Error(0)
}
