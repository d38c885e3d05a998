package customer

import (
	"context"

	"github.com/shopspring/decimal"
)

// LoanSummary is one qualifying loan in a customer's financial summary.
// A loan qualifies when it was requested and carries an amount greater than
// zero; declined or zero-amount applications stay out of the summary.
type LoanSummary struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	MonthlyEMI  decimal.Decimal `json:"monthlyEmi"`
	TenureYears int             `json:"tenureYears"`
	Status      string          `json:"status"`
}

type Summary struct {
	CustomerID    string          `json:"customerId"`
	Name          string          `json:"name"`
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`
	CreditScore   *int            `json:"creditScore"`
	ExistingLoans []LoanSummary   `json:"existingLoans"`
}

// IncomeSource supplies the authoritative monthly income for a customer:
// the most recently recorded employment record, or NotFound when none exists.
type IncomeSource interface {
	LatestMonthlyIncome(ctx context.Context, customerID string) (decimal.Decimal, error)
}

// LoanSource supplies the loan facts the summary aggregates.
type LoanSource interface {
	QualifyingLoans(ctx context.Context, customerID string) ([]LoanSummary, error)

	// LatestCreditScore returns the credit score recorded on the most recent
	// requested loan application, by application date. (nil, nil) when the
	// customer has no requested application or no score was recorded on it.
	LatestCreditScore(ctx context.Context, customerID string) (*int, error)
}
