package customer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"loan-processing-api/internal/pkg/apperrors"
)

const (
	// IDPrefix precedes the zero-padded numeric suffix of every customer identifier.
	IDPrefix = "CUST"

	// IDFloor is the lowest suffix ever issued. Historical rows below the floor
	// are tolerated on read but never extended.
	IDFloor = 111

	idSuffixWidth = 4
)

type Customer struct {
	CustomerID      string    `json:"customerId"`
	Name            string    `json:"name"`
	FathersName     string    `json:"fathersName"`
	DateOfBirth     time.Time `json:"dateOfBirth"`
	Age             int       `json:"age"`
	Gender          string    `json:"gender"`
	MaritalStatus   string    `json:"maritalStatus"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	State           string    `json:"state"`
	Pincode         int64     `json:"pincode"`
	Mobile          int64     `json:"mobile"`
	AlternateMobile *int64    `json:"alternateMobile,omitempty"`
	Email           string    `json:"email"`
	Nationality     string    `json:"nationality"`
	CustomerSince   time.Time `json:"customerSince"`
}

// ParseIDSuffix extracts the numeric suffix of a stored customer identifier.
// A stored identifier that does not carry a numeric suffix is a data-integrity
// problem and must never be coerced into a number silently.
func ParseIDSuffix(customerID string) (int, error) {
	if !strings.HasPrefix(customerID, IDPrefix) {
		return 0, apperrors.WrapIntegrityError(nil,
			fmt.Sprintf("stored customer identifier %q does not start with %q", customerID, IDPrefix))
	}
	suffix, err := strconv.Atoi(customerID[len(IDPrefix):])
	if err != nil {
		return 0, apperrors.WrapIntegrityError(err,
			fmt.Sprintf("stored customer identifier %q has a non-numeric suffix", customerID))
	}
	return suffix, nil
}

// NextCustomerID allocates the identifier following the given maximum suffix.
// A nil suffix means no customer exists yet and allocation starts at the floor.
// The floor also applies when historical data contains suffixes below it, so
// the returned suffix is strictly greater than any suffix at or above the floor.
func NextCustomerID(currentMaxSuffix *int) string {
	next := IDFloor
	if currentMaxSuffix != nil && *currentMaxSuffix+1 > IDFloor {
		next = *currentMaxSuffix + 1
	}
	return fmt.Sprintf("%s%0*d", IDPrefix, idSuffixWidth, next)
}
