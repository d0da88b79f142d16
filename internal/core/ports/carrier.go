package ports

import (
	"context"
	"errors"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/shipment"
)

// ErrLabelAlreadyVoided is returned by CarrierClient.VoidLabel when the
// carrier reports the label was voided earlier. Callers treat it as a
// successful void.
var ErrLabelAlreadyVoided = errors.New("carrier reports label already voided")

// LabelInfo is the result of a successful label purchase.
type LabelInfo struct {
	TrackingNumber string
	Carrier        string
	LabelURL       string
}

// CarrierClient is the contract against the external shipping carrier API.
// Address completeness is validated locally before either call; a carrier
// failure is surfaced as an UpstreamFailureError and never silently
// swallowed.
type CarrierClient interface {
	// PurchaseLabel buys a shipping label for the given destination and
	// parcel. orderRef is the human-readable order code printed on the
	// label.
	PurchaseLabel(ctx context.Context, orderRef string, addr shipment.Address, parcel shipment.Parcel) (LabelInfo, error)

	// VoidLabel voids a previously purchased label by tracking number.
	VoidLabel(ctx context.Context, trackingNumber string) error
}
