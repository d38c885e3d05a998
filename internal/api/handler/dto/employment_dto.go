package dto

import (
	"fmt"
	"strings"

	"loan-processing-api/internal/domain/employment"
)

type EmploymentDetailsRequest struct {
	Designation   string  `json:"designation"`
	MonthlyIncome float64 `json:"monthly_income"`
}

func (r *EmploymentDetailsRequest) Validate() error {
	if strings.TrimSpace(r.Designation) == "" {
		return fmt.Errorf("designation cannot be empty")
	}
	if r.MonthlyIncome < 0 {
		return fmt.Errorf("monthly_income cannot be negative")
	}
	return nil
}

type EmploymentCreatedDetails struct {
	Designation   string  `json:"designation"`
	MonthlyIncome float64 `json:"monthly_income"`
	Status        string  `json:"status"`
	Verification  string  `json:"verification"`
}

type EmploymentCreatedResponse struct {
	Message    string                   `json:"message"`
	CustomerID string                   `json:"customer_id"`
	Details    EmploymentCreatedDetails `json:"details"`
}

func NewEmploymentCreatedResponse(rec *employment.Record) EmploymentCreatedResponse {
	if rec == nil {
		return EmploymentCreatedResponse{}
	}
	return EmploymentCreatedResponse{
		Message:    "Employment details added successfully",
		CustomerID: rec.CustomerID,
		Details: EmploymentCreatedDetails{
			Designation:   rec.Designation,
			MonthlyIncome: rec.MonthlyIncome.InexactFloat64(),
			Status:        rec.Status,
			Verification:  rec.IncomeVerification,
		},
	}
}
