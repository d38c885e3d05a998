package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"loan-processing-api/internal/domain/loan"
)

type LoanApplicationRequest struct {
	LoanAmount      float64 `json:"loan_amount"`
	LoanRequired    string  `json:"loan_required,omitempty"`
	ApplicationDate string  `json:"application_date,omitempty"`
	LoanStatus      string  `json:"loan_status,omitempty"`
}

func (r *LoanApplicationRequest) Validate() error {
	if r.LoanAmount < 0 {
		return fmt.Errorf("loan_amount cannot be negative")
	}
	if r.ApplicationDate != "" {
		if _, err := time.Parse(time.RFC3339[:10], r.ApplicationDate); err != nil {
			return fmt.Errorf("invalid application_date format (use YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

// ToInput maps the validated request onto the service input. Empty optional
// fields stay empty so the service applies the business defaults.
func (r *LoanApplicationRequest) ToInput() loan.ApplicationInput {
	input := loan.ApplicationInput{
		Amount:       decimal.NewFromFloat(r.LoanAmount),
		LoanRequired: r.LoanRequired,
		Status:       r.LoanStatus,
	}
	if r.ApplicationDate != "" {
		date, _ := time.Parse(time.RFC3339[:10], r.ApplicationDate)
		input.ApplicationDate = &date
	}
	return input
}

type LoanCreatedDetails struct {
	LoanAmount      float64 `json:"loan_amount"`
	LoanPurpose     string  `json:"loan_purpose"`
	ApplicationDate string  `json:"application_date"`
	Status          string  `json:"status"`
	Collateral      string  `json:"collateral"`
}

type LoanCreatedResponse struct {
	Message    string             `json:"message"`
	CustomerID string             `json:"customer_id"`
	Details    LoanCreatedDetails `json:"details"`
}

func NewLoanCreatedResponse(app *loan.Application) LoanCreatedResponse {
	if app == nil {
		return LoanCreatedResponse{}
	}
	return LoanCreatedResponse{
		Message:    "Loan application added successfully",
		CustomerID: app.CustomerID,
		Details: LoanCreatedDetails{
			LoanAmount:      app.Amount.InexactFloat64(),
			LoanPurpose:     app.Purpose,
			ApplicationDate: app.ApplicationDate.Format(time.RFC3339[:10]),
			Status:          app.Status,
			Collateral:      app.CollateralRequired,
		},
	}
}
