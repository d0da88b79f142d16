package order

import (
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"
)

// ActionType classifies an entry in the append-only quote action log.
type ActionType int

const (
	// ActionUnknown catches uninitialized values.
	ActionUnknown ActionType = iota

	// ActionAccept records a customer accepting a quote.
	ActionAccept

	// ActionReject records a customer rejecting a quote.
	ActionReject

	// ActionRenewal records a quote expiry extension. The most recent
	// renewal timestamp backs the 24-hour renewal cooldown.
	ActionRenewal
)

func getActionTypeStrings() map[ActionType]string {
	return map[ActionType]string{
		ActionUnknown: "Unknown",
		ActionAccept:  "Accept",
		ActionReject:  "Reject",
		ActionRenewal: "Renewal",
	}
}

// Validate checks that the value is a member of the enumeration.
func (a ActionType) Validate() error {
	if a == ActionUnknown {
		return errs.NewValueIsInvalidError("action type")
	}
	if _, ok := getActionTypeStrings()[a]; !ok {
		return errs.NewValueIsInvalidError("action type")
	}
	return nil
}

// String returns the human-readable name. Implements fmt.Stringer.
func (a ActionType) String() string {
	if str, ok := getActionTypeStrings()[a]; ok {
		return str
	}
	return "Unknown"
}

// QuoteAction is one append-only record of a decision or renewal on a
// quote. Actions are created once and never mutated or deleted.
type QuoteAction struct {
	id        kernel.UUID
	orderID   kernel.UUID
	action    ActionType
	notes     string
	actorID   *kernel.UUID
	createdAt time.Time

	isConstructed bool
}

// NewQuoteAction creates a quote action record. actorID may be nil for
// actions taken by unauthenticated customer links.
func NewQuoteAction(
	id kernel.UUID,
	orderID kernel.UUID,
	action ActionType,
	notes string,
	actorID *kernel.UUID,
	createdAt time.Time,
) (*QuoteAction, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := action.Validate(); err != nil {
		return nil, err
	}
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return nil, err
		}
	}

	return &QuoteAction{
		id:            id,
		orderID:       orderID,
		action:        action,
		notes:         notes,
		actorID:       actorID,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreQuoteAction reconstructs a quote action from persistence.
func RestoreQuoteAction(
	id kernel.UUID,
	orderID kernel.UUID,
	action ActionType,
	notes string,
	actorID *kernel.UUID,
	createdAt time.Time,
) (*QuoteAction, error) {
	return NewQuoteAction(id, orderID, action, notes, actorID, createdAt)
}

// Validate ensures the action was created via NewQuoteAction.
func (q *QuoteAction) Validate() error {
	if q == nil || !q.isConstructed {
		return errs.NewValueIsRequiredError("QuoteAction must be created via NewQuoteAction")
	}
	return nil
}

// ID returns the action's unique identifier.
func (q *QuoteAction) ID() kernel.UUID {
	return q.id
}

// OrderID returns the order this action belongs to.
func (q *QuoteAction) OrderID() kernel.UUID {
	return q.orderID
}

// Action returns the action classification.
func (q *QuoteAction) Action() ActionType {
	return q.action
}

// Notes returns the free-form notes attached to the action.
func (q *QuoteAction) Notes() string {
	return q.notes
}

// ActorID returns the acting user, or nil.
func (q *QuoteAction) ActorID() *kernel.UUID {
	return q.actorID
}

// CreatedAt returns when the action was recorded.
func (q *QuoteAction) CreatedAt() time.Time {
	return q.createdAt
}
