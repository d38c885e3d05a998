package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultPurpose is the fixed purpose assigned to applications created by
	// this service. It is a literal business default, not a computed value.
	DefaultPurpose = "Home"

	// DefaultCollateral is the fixed collateral requirement on creation.
	DefaultCollateral = "documents"

	// DefaultStatus is the initial free-form status of an application.
	DefaultStatus = "PENDING"

	// LoanRequiredYes marks an application as an actual loan request.
	LoanRequiredYes = "Yes"
)

// Application is one loan application row for a customer. Applications are
// append-only: never updated or deleted once written.
type Application struct {
	ID                 int64            `json:"id"`
	CustomerID         string           `json:"customerId"`
	LoanRequired       string           `json:"loanRequired"`
	Amount             decimal.Decimal  `json:"amount"`
	Purpose            string           `json:"purpose"`
	ApplicationDate    time.Time        `json:"applicationDate"`
	Status             string           `json:"status"`
	CollateralRequired string           `json:"collateralRequired"`
	EMI                *decimal.Decimal `json:"emi,omitempty"`
	TenureMonths       *int             `json:"tenureMonths,omitempty"`
	CreditScore        *int             `json:"creditScore,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
}

// IsExistingLoan reports whether the application counts as an existing loan
// for summary reporting: requested and with an amount greater than zero.
func (a *Application) IsExistingLoan() bool {
	return a.LoanRequired == LoanRequiredYes && a.Amount.IsPositive()
}

// TenureYears converts the tenure to whole years, truncating partial years.
// Zero when no tenure is recorded.
func (a *Application) TenureYears() int {
	if a.TenureMonths == nil {
		return 0
	}
	return *a.TenureMonths / 12
}

// MonthlyEMI is the recorded EMI, or zero when none was recorded.
func (a *Application) MonthlyEMI() decimal.Decimal {
	if a.EMI == nil {
		return decimal.Zero
	}
	return *a.EMI
}
