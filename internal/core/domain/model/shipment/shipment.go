package shipment

import (
	"errors"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was
	// not created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrAlreadyVoided is returned when voiding a shipment twice.
	ErrAlreadyVoided = errors.New("shipment label is already voided")
)

// Shipment is one carrier label purchased for an order. An order has at
// most one live shipment; voiding the label stamps voidedAt and the owning
// order reverts to ready-to-ship.
type Shipment struct {
	id             kernel.UUID
	orderID        kernel.UUID
	trackingNumber string
	carrier        string
	labelURL       string
	address        Address
	parcel         Parcel
	purchasedAt    time.Time
	voidedAt       *time.Time

	isConstructed bool
}

// NewShipment creates a live shipment from a successful label purchase.
func NewShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	trackingNumber string,
	carrier string,
	labelURL string,
	address Address,
	parcel Parcel,
	purchasedAt time.Time,
) (*Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("tracking number")
	}
	if carrier == "" {
		return nil, errs.NewValueIsRequiredError("carrier")
	}

	return &Shipment{
		id:             id,
		orderID:        orderID,
		trackingNumber: trackingNumber,
		carrier:        carrier,
		labelURL:       labelURL,
		address:        address,
		parcel:         parcel,
		purchasedAt:    purchasedAt,
		isConstructed:  true,
	}, nil
}

// RestoreShipment reconstructs a shipment from persistence.
func RestoreShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	trackingNumber string,
	carrier string,
	labelURL string,
	address Address,
	parcel Parcel,
	purchasedAt time.Time,
	voidedAt *time.Time,
) (*Shipment, error) {
	s, err := NewShipment(id, orderID, trackingNumber, carrier, labelURL, address, parcel, purchasedAt)
	if err != nil {
		return nil, err
	}
	s.voidedAt = voidedAt
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OrderID returns the owning sales order.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// TrackingNumber returns the carrier tracking number.
func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

// Carrier returns the carrier name.
func (s *Shipment) Carrier() string {
	return s.carrier
}

// LabelURL returns the label artifact location.
func (s *Shipment) LabelURL() string {
	return s.labelURL
}

// Address returns the shipping destination.
func (s *Shipment) Address() Address {
	return s.address
}

// Parcel returns the package dimensions and weight.
func (s *Shipment) Parcel() Parcel {
	return s.parcel
}

// PurchasedAt returns when the label was bought.
func (s *Shipment) PurchasedAt() time.Time {
	return s.purchasedAt
}

// VoidedAt returns when the label was voided, or nil while it is live.
func (s *Shipment) VoidedAt() *time.Time {
	return s.voidedAt
}

// IsVoided reports whether the label has been voided.
func (s *Shipment) IsVoided() bool {
	return s.voidedAt != nil
}

// Void marks the label voided at the given time. Voiding twice fails with
// ErrAlreadyVoided.
func (s *Shipment) Void(now time.Time) error {
	if s.voidedAt != nil {
		return ErrAlreadyVoided
	}
	s.voidedAt = &now
	return nil
}
