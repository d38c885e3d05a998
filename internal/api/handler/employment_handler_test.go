package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"loan-processing-api/internal/api/handler"
	"loan-processing-api/internal/api/handler/dto"
	"loan-processing-api/internal/domain/employment"
	"loan-processing-api/internal/pkg/apperrors"
)

func TestAddEmploymentDetails(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService := new(MockEmploymentService)
		h := handler.NewEmploymentHandler(mockService, testLogger())

		rec := &employment.Record{
			ID:                 1,
			CustomerID:         "CUST0111",
			Designation:        "Software Engineer",
			MonthlyIncome:      decimal.NewFromInt(50000),
			Status:             employment.DefaultStatus,
			IncomeVerification: employment.DefaultIncomeVerification,
			CreatedAt:          time.Now(),
		}
		mockService.On("AddEmploymentDetails", mock.Anything, "CUST0111", "Software Engineer",
			mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(50000)) })).
			Return(rec, nil).Once()

		body, _ := json.Marshal(dto.EmploymentDetailsRequest{Designation: "Software Engineer", MonthlyIncome: 50000})
		req := withCustomerID(httptest.NewRequest(http.MethodPost, "/api/users/CUST0111/employment-details", bytes.NewReader(body)), "CUST0111")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		h.AddEmploymentDetails(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp dto.EmploymentCreatedResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, "Employment details added successfully", resp.Message)
		assert.Equal(t, "CUST0111", resp.CustomerID)
		assert.Equal(t, "Active", resp.Details.Status)
		assert.Equal(t, "Pending", resp.Details.Verification)
		assert.Equal(t, 50000.0, resp.Details.MonthlyIncome)
		mockService.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		mockService := new(MockEmploymentService)
		h := handler.NewEmploymentHandler(mockService, testLogger())

		req := withCustomerID(httptest.NewRequest(http.MethodPost, "/api/users/CUST0111/employment-details", bytes.NewReader([]byte(`{`))), "CUST0111")
		w := httptest.NewRecorder()

		h.AddEmploymentDetails(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "AddEmploymentDetails", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty designation", func(t *testing.T) {
		mockService := new(MockEmploymentService)
		h := handler.NewEmploymentHandler(mockService, testLogger())

		body, _ := json.Marshal(dto.EmploymentDetailsRequest{Designation: "   ", MonthlyIncome: 50000})
		req := withCustomerID(httptest.NewRequest(http.MethodPost, "/api/users/CUST0111/employment-details", bytes.NewReader(body)), "CUST0111")
		w := httptest.NewRecorder()

		h.AddEmploymentDetails(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockService.AssertNotCalled(t, "AddEmploymentDetails", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("customer not found", func(t *testing.T) {
		mockService := new(MockEmploymentService)
		h := handler.NewEmploymentHandler(mockService, testLogger())

		mockService.On("AddEmploymentDetails", mock.Anything, "CUST9999", "Clerk", mock.Anything).
			Return(nil, apperrors.ErrNotFound).Once()

		body, _ := json.Marshal(dto.EmploymentDetailsRequest{Designation: "Clerk", MonthlyIncome: 20000})
		req := withCustomerID(httptest.NewRequest(http.MethodPost, "/api/users/CUST9999/employment-details", bytes.NewReader(body)), "CUST9999")
		w := httptest.NewRecorder()

		h.AddEmploymentDetails(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("missing customer ID", func(t *testing.T) {
		mockService := new(MockEmploymentService)
		h := handler.NewEmploymentHandler(mockService, testLogger())

		body, _ := json.Marshal(dto.EmploymentDetailsRequest{Designation: "Clerk", MonthlyIncome: 20000})
		req := withCustomerID(httptest.NewRequest(http.MethodPost, "/api/users//employment-details", bytes.NewReader(body)), "")
		w := httptest.NewRecorder()

		h.AddEmploymentDetails(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "AddEmploymentDetails", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
