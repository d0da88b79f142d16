package order

import (
	"errors"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"
)

// DefaultQuoteExpirationDays is the quote validity window applied when staff
// do not specify one.
const DefaultQuoteExpirationDays = 30

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDepositNotRequired is returned when a deposit operation is applied
	// to an order that carries no deposit requirement.
	ErrDepositNotRequired = errors.New("order does not require a deposit")

	// ErrQuoteNotExpired is returned when the expiration sweep tries to
	// expire a quote whose timestamp is still in the future.
	ErrQuoteNotExpired = errors.New("quote has not expired yet")
)

// Order is the aggregate root for one customer sales order. It owns the
// status state machine, the quote expiration timestamp, the deposit gate,
// and the order lines.
//
// Invariants:
//   - status is always a member of the Status enumeration
//   - at least one line
//   - the deposit gate cannot be skipped: a deposit-carrying order reaches
//     InQueue only through DepositDue with the deposit settled
//   - quoteExpiresAt is authoritative only while status is Quoted
//
// All mutation goes through validated methods; the struct has private
// fields and can only be built via NewOrder or RestoreOrder.
type Order struct {
	id             kernel.UUID
	code           string
	brandID        *kernel.UUID
	internalSource bool
	lines          []Line

	depositRequired bool
	depositAmount   kernel.Money
	depositStatus   DepositStatus

	quoteExpiresAt      *time.Time
	quoteExpirationDays int

	// quoteReminderSentAt dedupes the expiring-soon reminder: one reminder
	// per quote window, cleared on renewal.
	quoteReminderSentAt *time.Time

	status Status

	// heldFrom remembers the status an on-hold order resumes into.
	heldFrom Status

	// version is the optimistic concurrency token checked on update.
	version int64

	isConstructed bool
}

// NewOrder creates a draft order. Requires a valid id, a non-empty
// human-readable code, and at least one line. brandID may be nil for
// brandless orders; internalSource distinguishes staff-entered orders from
// customer intake.
func NewOrder(
	id kernel.UUID,
	code string,
	brandID *kernel.UUID,
	internalSource bool,
	lines []Line,
	depositRequired bool,
	depositAmount kernel.Money,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}
	if brandID != nil {
		if err := brandID.Validate(); err != nil {
			return nil, err
		}
	}
	if depositRequired && depositAmount.IsZero() {
		return nil, errs.NewValueIsRequiredError("deposit amount")
	}

	return &Order{
		id:                  id,
		code:                code,
		brandID:             brandID,
		internalSource:      internalSource,
		lines:               lines,
		depositRequired:     depositRequired,
		depositAmount:       depositAmount,
		depositStatus:       DepositUnpaid,
		quoteExpirationDays: DefaultQuoteExpirationDays,
		status:              Draft,
		isConstructed:       true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. It validates the
// stored status and deposit status so corrupt rows cannot produce an
// aggregate in an impossible state.
func RestoreOrder(
	id kernel.UUID,
	code string,
	brandID *kernel.UUID,
	internalSource bool,
	lines []Line,
	depositRequired bool,
	depositAmount kernel.Money,
	depositStatus DepositStatus,
	quoteExpiresAt *time.Time,
	quoteExpirationDays int,
	quoteReminderSentAt *time.Time,
	status Status,
	heldFrom Status,
	version int64,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := depositStatus.Validate(); err != nil {
		return nil, err
	}
	if status.IsOnHold() {
		if err := heldFrom.Validate(); err != nil {
			return nil, err
		}
	}
	if quoteExpirationDays <= 0 {
		quoteExpirationDays = DefaultQuoteExpirationDays
	}

	return &Order{
		id:                  id,
		code:                code,
		brandID:             brandID,
		internalSource:      internalSource,
		lines:               lines,
		depositRequired:     depositRequired,
		depositAmount:       depositAmount,
		depositStatus:       depositStatus,
		quoteExpiresAt:      quoteExpiresAt,
		quoteExpirationDays: quoteExpirationDays,
		quoteReminderSentAt: quoteReminderSentAt,
		status:              status,
		heldFrom:            heldFrom,
		version:             version,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the human-readable order code.
func (o *Order) Code() string {
	return o.code
}

// BrandID returns the associated brand, or nil.
func (o *Order) BrandID() *kernel.UUID {
	return o.brandID
}

// IsInternalSource reports whether staff entered the order directly.
func (o *Order) IsInternalSource() bool {
	return o.internalSource
}

// Lines returns the order lines.
func (o *Order) Lines() []Line {
	return o.lines
}

// Subtotal returns the sum of all line totals.
func (o *Order) Subtotal() kernel.Money {
	var total kernel.Money
	for _, line := range o.lines {
		total = total.Add(line.Total())
	}
	return total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DepositRequired reports whether a deposit gates production.
func (o *Order) DepositRequired() bool {
	return o.depositRequired
}

// DepositAmount returns the required deposit amount.
func (o *Order) DepositAmount() kernel.Money {
	return o.depositAmount
}

// DepositStatus returns the deposit settlement state. Only meaningful when
// DepositRequired is true.
func (o *Order) DepositStatus() DepositStatus {
	return o.depositStatus
}

// QuoteExpiresAt returns the quote expiration timestamp, or nil when no
// quote is outstanding. Authoritative only while the status is Quoted.
func (o *Order) QuoteExpiresAt() *time.Time {
	return o.quoteExpiresAt
}

// QuoteExpirationDays returns the order's quote validity window in days.
func (o *Order) QuoteExpirationDays() int {
	return o.quoteExpirationDays
}

// QuoteReminderSentAt returns when the expiring-soon reminder for the
// current quote went out, or nil when none has.
func (o *Order) QuoteReminderSentAt() *time.Time {
	return o.quoteReminderSentAt
}

// MarkQuoteReminderSent records that the expiring-soon reminder went out,
// so repeated sweeps do not remind the same quote twice.
func (o *Order) MarkQuoteReminderSent(now time.Time) error {
	if o.status != Quoted {
		return errs.NewValueIsInvalidError("reminder applies to quoted orders only")
	}
	o.quoteReminderSentAt = &now
	return nil
}

// HeldFrom returns the status an on-hold order resumes into. Unknown when
// the order is not on hold.
func (o *Order) HeldFrom() Status {
	return o.heldFrom
}

// Version returns the optimistic concurrency token loaded from storage.
func (o *Order) Version() int64 {
	return o.version
}

// IncrementVersion advances the concurrency token after a successful
// version-checked update. Called by the repository only.
func (o *Order) IncrementVersion() {
	o.version++
}

// IssueQuote moves a draft order to Quoted and stamps the expiration
// timestamp at now plus the validity window. A non-positive days value
// falls back to the order's configured window (30 days by default).
func (o *Order) IssueQuote(now time.Time, days int) error {
	if days <= 0 {
		days = o.quoteExpirationDays
	}

	newStatus, err := o.status.Quote()
	if err != nil {
		return err
	}

	expiresAt := now.Add(time.Duration(days) * 24 * time.Hour)
	o.status = newStatus
	o.quoteExpiresAt = &expiresAt
	o.quoteExpirationDays = days
	o.quoteReminderSentAt = nil
	return nil
}

// SubmitForApproval marks the quote as in front of the customer.
func (o *Order) SubmitForApproval() error {
	newStatus, err := o.status.SubmitForApproval()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Accept records a customer acceptance at the given time. Acceptance after
// the expiration timestamp fails with a QuoteExpiredError and leaves the
// order untouched; the expiry guard is enforced here, not in the UI.
//
// On success the order moves to DepositDue when a deposit is required,
// otherwise to InQueue.
func (o *Order) Accept(now time.Time) error {
	if o.quoteExpiresAt != nil && !now.Before(*o.quoteExpiresAt) {
		return errs.NewQuoteExpiredError(o.id.String(), *o.quoteExpiresAt)
	}

	newStatus, err := o.status.Accept(o.depositRequired)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Reject records a customer rejection; the order is cancelled.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ExpireQuote resets an expired quoted order back to Draft. The order is
// kept, only the quote lapses. Returns ErrQuoteNotExpired when the
// timestamp is still in the future, so a clock mishap cannot wipe live
// quotes.
func (o *Order) ExpireQuote(now time.Time) error {
	if o.quoteExpiresAt == nil || now.Before(*o.quoteExpiresAt) {
		return ErrQuoteNotExpired
	}

	newStatus, err := o.status.ResetToDraft()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.quoteExpiresAt = nil
	o.quoteReminderSentAt = nil
	return nil
}

// RenewQuote extends the expiration of an outstanding quote to now plus
// days. A non-positive days value falls back to the order's configured
// window. The 24-hour renewal cooldown is enforced by the renew use case
// against the quote action log, not here.
func (o *Order) RenewQuote(now time.Time, days int) error {
	if days <= 0 {
		days = o.quoteExpirationDays
	}
	if o.status != Quoted {
		return errs.NewIllegalTransitionError(o.status.String(), Quoted.String())
	}

	expiresAt := now.Add(time.Duration(days) * 24 * time.Hour)
	o.quoteExpiresAt = &expiresAt
	o.quoteReminderSentAt = nil
	return nil
}

// RecordDepositPartial marks a partial deposit payment. The order stays in
// DepositDue until the deposit is fully settled.
func (o *Order) RecordDepositPartial() error {
	if !o.depositRequired {
		return ErrDepositNotRequired
	}
	if o.depositStatus == DepositPaid {
		return errs.NewValueIsInvalidError("deposit already paid")
	}
	o.depositStatus = DepositPartial
	return nil
}

// RecordDepositPaid settles the deposit. When the order is parked in
// DepositDue this also advances it into the production queue; the deposit
// gate is the only path from DepositDue to InQueue.
func (o *Order) RecordDepositPaid() error {
	if !o.depositRequired {
		return ErrDepositNotRequired
	}

	if o.status == DepositDue {
		newStatus, err := o.status.EnterQueue()
		if err != nil {
			return err
		}
		o.status = newStatus
	}
	o.depositStatus = DepositPaid
	return nil
}

// RecordFinalPaid settles the final invoice and releases the order for
// shipping.
func (o *Order) RecordFinalPaid() error {
	newStatus, err := o.status.SettleFinalPayment()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// StartProduction moves a queued order into production.
func (o *Order) StartProduction() error {
	newStatus, err := o.status.StartProduction()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// AdvanceFulfillment moves the order one step along the staff-driven
// pipeline between production and the final payment gate.
func (o *Order) AdvanceFulfillment() error {
	newStatus, err := o.status.AdvanceFulfillment()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Ship records a successful carrier label purchase.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// RevertShipment returns a shipped order to ReadyToShip after its label was
// voided.
func (o *Order) RevertShipment() error {
	newStatus, err := o.status.RevertShipment()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Hold parks the order in the given hold state and remembers the current
// status so Resume can restore it.
func (o *Order) Hold(target Status) error {
	previous := o.status
	newStatus, err := o.status.Hold(target)
	if err != nil {
		return err
	}
	o.status = newStatus
	o.heldFrom = previous
	return nil
}

// Resume returns an on-hold order to the status it was holding from.
func (o *Order) Resume() error {
	if !o.status.IsOnHold() {
		return errs.NewIllegalTransitionError(o.status.String(), o.heldFrom.String())
	}
	o.status = o.heldFrom
	o.heldFrom = Unknown
	return nil
}

// Cancel moves the order to Cancelled from any non-terminal state.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}
