package employment

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultStatus is assigned to every new employment record.
	DefaultStatus = "Active"

	// DefaultIncomeVerification marks income as awaiting verification.
	DefaultIncomeVerification = "Pending"
)

// Record is one employment entry for a customer. Records are append-only:
// they are never updated or deleted once written.
type Record struct {
	ID                 int64           `json:"id"`
	CustomerID         string          `json:"customerId"`
	Designation        string          `json:"designation"`
	MonthlyIncome      decimal.Decimal `json:"monthlyIncome"`
	Status             string          `json:"status"`
	IncomeVerification string          `json:"incomeVerification"`
	CreatedAt          time.Time       `json:"createdAt"`
}

func NewRecord(customerID, designation string, monthlyIncome decimal.Decimal) *Record {
	return &Record{
		CustomerID:         customerID,
		Designation:        designation,
		MonthlyIncome:      monthlyIncome,
		Status:             DefaultStatus,
		IncomeVerification: DefaultIncomeVerification,
	}
}
