package order

import (
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"
)

// Status represents the lifecycle state of a sales order. It implements a
// state machine with defined transitions so orders always follow the shop's
// workflow.
//
// Main progression:
//
//	Draft ──> Quoted ──> AwaitingApproval ──> DepositDue ──> InQueue ──>
//	InProduction ──> InLabeling ──> InPacking ──> Packed ──>
//	AwaitingInvoice ──> AwaitingPayment ──> ReadyToShip ──> Shipped
//
// DepositDue is skipped when no deposit is required. Cancelled and the three
// hold states are reachable from any non-terminal status. Shipped and
// Cancelled are terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status: the order exists but has not been quoted.
	// The expiration sweep also resets expired quotes back to Draft.
	Draft

	// Quoted means staff issued a quote with an expiration timestamp.
	Quoted

	// AwaitingApproval means the quote is in front of the customer.
	AwaitingApproval

	// DepositDue means the customer accepted and a deposit payment gates
	// entry into the production queue.
	DepositDue

	// InQueue means the order is waiting for a production slot.
	InQueue

	// InProduction means a batch is being manufactured.
	InProduction

	// InLabeling means produced goods are being labeled.
	InLabeling

	// InPacking means goods are being packed into boxes.
	InPacking

	// Packed means packing is complete and the order awaits invoicing.
	Packed

	// AwaitingInvoice means the final invoice has not been issued yet.
	AwaitingInvoice

	// AwaitingPayment means the final invoice is outstanding.
	AwaitingPayment

	// ReadyToShip means the balance is settled and a label can be bought.
	ReadyToShip

	// Shipped means a carrier label was purchased. Terminal; voiding the
	// label reverts the order to ReadyToShip.
	Shipped

	// Cancelled is the terminal state for rejected or cancelled orders.
	Cancelled

	// OnHoldCustomer parks the order waiting on the customer.
	OnHoldCustomer

	// OnHoldInternal parks the order for internal reasons.
	OnHoldInternal

	// OnHoldMaterials parks the order waiting on materials.
	OnHoldMaterials
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Draft:            "Draft",
		Quoted:           "Quoted",
		AwaitingApproval: "AwaitingApproval",
		DepositDue:       "DepositDue",
		InQueue:          "InQueue",
		InProduction:     "InProduction",
		InLabeling:       "InLabeling",
		InPacking:        "InPacking",
		Packed:           "Packed",
		AwaitingInvoice:  "AwaitingInvoice",
		AwaitingPayment:  "AwaitingPayment",
		ReadyToShip:      "ReadyToShip",
		Shipped:          "Shipped",
		Cancelled:        "Cancelled",
		OnHoldCustomer:   "OnHoldCustomer",
		OnHoldInternal:   "OnHoldInternal",
		OnHoldMaterials:  "OnHoldMaterials",
	}
}

// fulfillmentChain is the staff-advanced portion of the pipeline between
// production start and the final payment gate.
var fulfillmentChain = map[Status]Status{
	InProduction:    InLabeling,
	InLabeling:      InPacking,
	InPacking:       Packed,
	Packed:          AwaitingInvoice,
	AwaitingInvoice: AwaitingPayment,
}

// Validate checks that the Status value is a member of the enumeration.
// Unknown (0) and out-of-range values are invalid. Used to reject status
// values arriving from external sources such as the database.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidError("status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Shipped || s == Cancelled
}

// IsOnHold reports whether the order is parked in one of the hold states.
func (s Status) IsOnHold() bool {
	return s == OnHoldCustomer || s == OnHoldInternal || s == OnHoldMaterials
}

// Quote transitions Draft to Quoted.
func (s Status) Quote() (Status, error) {
	if s != Draft {
		return 0, errs.NewIllegalTransitionError(s.String(), Quoted.String())
	}
	return Quoted, nil
}

// SubmitForApproval transitions Quoted to AwaitingApproval, i.e. the quote
// has been put in front of the customer for a decision.
func (s Status) SubmitForApproval() (Status, error) {
	if s != Quoted {
		return 0, errs.NewIllegalTransitionError(s.String(), AwaitingApproval.String())
	}
	return AwaitingApproval, nil
}

// Accept records a customer acceptance. Accepting from Quoted or
// AwaitingApproval moves the order to DepositDue when a deposit is required,
// otherwise straight to InQueue. The deposit gate can never be skipped:
// there is no other path into InQueue for deposit-carrying orders.
func (s Status) Accept(depositRequired bool) (Status, error) {
	target := InQueue
	if depositRequired {
		target = DepositDue
	}
	if s != Quoted && s != AwaitingApproval {
		return 0, errs.NewIllegalTransitionError(s.String(), target.String())
	}
	return target, nil
}

// Reject records a customer rejection of the quote; the order is cancelled.
func (s Status) Reject() (Status, error) {
	if s != Quoted && s != AwaitingApproval {
		return 0, errs.NewIllegalTransitionError(s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

// ResetToDraft returns an expired quote to Draft. Only the expiration sweep
// uses this transition.
func (s Status) ResetToDraft() (Status, error) {
	if s != Quoted {
		return 0, errs.NewIllegalTransitionError(s.String(), Draft.String())
	}
	return Draft, nil
}

// EnterQueue moves a deposit-gated order into the production queue once the
// deposit is settled.
func (s Status) EnterQueue() (Status, error) {
	if s != DepositDue {
		return 0, errs.NewIllegalTransitionError(s.String(), InQueue.String())
	}
	return InQueue, nil
}

// StartProduction moves a queued order into production.
func (s Status) StartProduction() (Status, error) {
	if s != InQueue {
		return 0, errs.NewIllegalTransitionError(s.String(), InProduction.String())
	}
	return InProduction, nil
}

// AdvanceFulfillment moves the order one step along the staff-driven
// pipeline: InProduction -> InLabeling -> InPacking -> Packed ->
// AwaitingInvoice -> AwaitingPayment.
func (s Status) AdvanceFulfillment() (Status, error) {
	next, ok := fulfillmentChain[s]
	if !ok {
		return 0, errs.NewIllegalTransitionError(s.String(), "next fulfillment step")
	}
	return next, nil
}

// SettleFinalPayment moves the order past the final payment gate.
func (s Status) SettleFinalPayment() (Status, error) {
	if s != AwaitingPayment {
		return 0, errs.NewIllegalTransitionError(s.String(), ReadyToShip.String())
	}
	return ReadyToShip, nil
}

// Ship records a successful carrier label purchase.
func (s Status) Ship() (Status, error) {
	if s != ReadyToShip {
		return 0, errs.NewIllegalTransitionError(s.String(), Shipped.String())
	}
	return Shipped, nil
}

// RevertShipment undoes Shipped after a label void.
func (s Status) RevertShipment() (Status, error) {
	if s != Shipped {
		return 0, errs.NewIllegalTransitionError(s.String(), ReadyToShip.String())
	}
	return ReadyToShip, nil
}

// Hold parks the order in the given hold state. Holds are reachable from
// every status except the terminal states and other holds.
func (s Status) Hold(target Status) (Status, error) {
	if !target.IsOnHold() {
		return 0, errs.NewValueIsInvalidError("hold status")
	}
	if s.IsTerminal() || s.IsOnHold() || s == Unknown {
		return 0, errs.NewIllegalTransitionError(s.String(), target.String())
	}
	return target, nil
}

// Cancel moves any non-terminal order to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s == Unknown {
		return 0, errs.NewIllegalTransitionError(s.String(), Cancelled.String())
	}
	return Cancelled, nil
}
