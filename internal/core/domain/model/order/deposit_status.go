package order

import (
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"
)

// DepositStatus tracks the settlement of a required deposit. It is only
// meaningful on orders created with a deposit requirement.
type DepositStatus int

const (
	// DepositUnpaid means no deposit payment has been received.
	DepositUnpaid DepositStatus = iota

	// DepositPartial means part of the deposit has been received.
	DepositPartial

	// DepositPaid means the deposit is settled. Required before a
	// deposit-gated order may enter the production queue.
	DepositPaid
)

func getDepositStatusStrings() map[DepositStatus]string {
	return map[DepositStatus]string{
		DepositUnpaid:  "Unpaid",
		DepositPartial: "Partial",
		DepositPaid:    "Paid",
	}
}

// Validate checks that the value is a member of the enumeration.
func (d DepositStatus) Validate() error {
	if _, ok := getDepositStatusStrings()[d]; !ok {
		return errs.NewValueIsInvalidError("deposit status")
	}
	return nil
}

// String returns the human-readable name. Implements fmt.Stringer.
func (d DepositStatus) String() string {
	if str, ok := getDepositStatusStrings()[d]; ok {
		return str
	}
	return "Unknown"
}
