package loan

import (
	"context"

	"github.com/stretchr/testify/mock"

	"loan-processing-api/internal/domain/customer"
	"loan-processing-api/internal/event"
)

type MockRepository struct {
	mock.Mock
}

func (_m *MockRepository) Create(ctx context.Context, app *Application) error {
	ret := _m.Called(ctx, app)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Application) error); ok {
		r0 = rf(ctx, app)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	ret := _m.Called(ctx, status)
	return ret.Get(0).(int64), ret.Error(1)
}

type MockCustomerService struct {
	mock.Mock
}

func (_m *MockCustomerService) RegisterCustomer(ctx context.Context, cust *customer.Customer) (*customer.Customer, error) {
	ret := _m.Called(ctx, cust)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) GetCustomer(ctx context.Context, customerID string) (*customer.Customer, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) SearchCustomers(ctx context.Context, name string) ([]*customer.Customer, error) {
	ret := _m.Called(ctx, name)

	var r0 []*customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) GetCustomerSummary(ctx context.Context, customerID string) (*customer.Summary, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *customer.Summary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Summary)
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
