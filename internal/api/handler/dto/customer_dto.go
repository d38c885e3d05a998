package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"loan-processing-api/internal/domain/customer"
)

type PersonalDetailsRequest struct {
	Name            string `json:"name"`
	FathersName     string `json:"fathers_name"`
	DOB             string `json:"dob"`
	Age             int    `json:"age"`
	Gender          string `json:"gender"`
	MaritalStatus   string `json:"marital_status"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	Pincode         int64  `json:"pincode"`
	Mobile          int64  `json:"mobile"`
	AlternateMobile *int64 `json:"alternate_mobile,omitempty"`
	Email           string `json:"email"`
	Nationality     string `json:"nationality"`
}

func (r *PersonalDetailsRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if r.Age <= 0 {
		return fmt.Errorf("age must be positive")
	}
	if r.Mobile <= 0 {
		return fmt.Errorf("mobile must be a positive number")
	}
	if r.AlternateMobile != nil && *r.AlternateMobile <= 0 {
		return fmt.Errorf("alternate_mobile must be a positive number when provided")
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("email is not a valid address")
	}
	if _, err := time.Parse(time.RFC3339[:10], r.DOB); err != nil {
		return fmt.Errorf("invalid dob format (use YYYY-MM-DD): %w", err)
	}
	return nil
}

// ToDomain maps the validated request onto a customer entity. The identifier
// and enrollment date are assigned by the service, never by the caller.
func (r *PersonalDetailsRequest) ToDomain() *customer.Customer {
	dob, _ := time.Parse(time.RFC3339[:10], r.DOB)
	return &customer.Customer{
		Name:            r.Name,
		FathersName:     r.FathersName,
		DateOfBirth:     dob,
		Age:             r.Age,
		Gender:          r.Gender,
		MaritalStatus:   r.MaritalStatus,
		Address:         r.Address,
		City:            r.City,
		State:           r.State,
		Pincode:         r.Pincode,
		Mobile:          r.Mobile,
		AlternateMobile: r.AlternateMobile,
		Email:           r.Email,
		Nationality:     r.Nationality,
	}
}

type CustomerCreatedDetails struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Mobile        string `json:"mobile"`
	CustomerSince string `json:"customer_since"`
}

type CustomerCreatedResponse struct {
	Message    string                 `json:"message"`
	CustomerID string                 `json:"customer_id"`
	Details    CustomerCreatedDetails `json:"details"`
}

func NewCustomerCreatedResponse(cust *customer.Customer) CustomerCreatedResponse {
	if cust == nil {
		return CustomerCreatedResponse{}
	}
	return CustomerCreatedResponse{
		Message:    "Customer created successfully",
		CustomerID: cust.CustomerID,
		Details: CustomerCreatedDetails{
			Name:          cust.Name,
			Email:         cust.Email,
			Mobile:        strconv.FormatInt(cust.Mobile, 10),
			CustomerSince: cust.CustomerSince.Format(time.RFC3339),
		},
	}
}

type CustomerMatch struct {
	CustomerID    string  `json:"customer_id"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	CustomerSince *string `json:"customer_since"`
}

type SearchCustomersResponse struct {
	SearchTerm   string          `json:"search_term"`
	MatchesFound int             `json:"matches_found"`
	Customers    []CustomerMatch `json:"customers"`
}

func NewSearchCustomersResponse(term string, matches []*customer.Customer) SearchCustomersResponse {
	results := make([]CustomerMatch, 0, len(matches))
	for _, cust := range matches {
		entry := CustomerMatch{
			CustomerID: cust.CustomerID,
			Name:       cust.Name,
			Age:        cust.Age,
			City:       cust.City,
			State:      cust.State,
		}
		if !cust.CustomerSince.IsZero() {
			since := cust.CustomerSince.Format(time.RFC3339)
			entry.CustomerSince = &since
		}
		results = append(results, entry)
	}
	return SearchCustomersResponse{
		SearchTerm:   term,
		MatchesFound: len(results),
		Customers:    results,
	}
}

type SummaryLoanEntry struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	MonthlyEMI  float64 `json:"monthly_emi"`
	TenureYears int     `json:"tenure_years"`
	Status      string  `json:"status"`
}

type CustomerSummaryResponse struct {
	CustomerID    string             `json:"customer_id"`
	Name          string             `json:"name"`
	MonthlyIncome float64            `json:"monthly_income"`
	CreditScore   *int               `json:"credit_score"`
	ExistingLoans []SummaryLoanEntry `json:"existing_loans"`
}

func NewCustomerSummaryResponse(summary *customer.Summary) CustomerSummaryResponse {
	if summary == nil {
		return CustomerSummaryResponse{ExistingLoans: []SummaryLoanEntry{}}
	}

	loans := make([]SummaryLoanEntry, 0, len(summary.ExistingLoans))
	for _, entry := range summary.ExistingLoans {
		loans = append(loans, SummaryLoanEntry{
			Type:        entry.Type,
			Amount:      entry.Amount.InexactFloat64(),
			MonthlyEMI:  entry.MonthlyEMI.InexactFloat64(),
			TenureYears: entry.TenureYears,
			Status:      entry.Status,
		})
	}

	return CustomerSummaryResponse{
		CustomerID:    summary.CustomerID,
		Name:          summary.Name,
		MonthlyIncome: summary.MonthlyIncome.InexactFloat64(),
		CreditScore:   summary.CreditScore,
		ExistingLoans: loans,
	}
}
