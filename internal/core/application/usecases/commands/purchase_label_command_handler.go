package commands

import (
	"context"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/shipment"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
)

// PurchaseLabelCommandHandler buys a carrier label and ships the order.
// The order's eligibility is checked before the carrier is called; a
// carrier failure surfaces to the caller and leaves the order untouched.
type PurchaseLabelCommandHandler struct {
	uowFactory ShipmentUoWFactory
	carrier    ports.CarrierClient
	notifier   ports.Notifier
	publisher  ports.EventPublisher
}

// NewPurchaseLabelCommandHandler creates a handler for label purchases.
func NewPurchaseLabelCommandHandler(
	uowFactory ShipmentUoWFactory,
	carrier ports.CarrierClient,
	notifier ports.Notifier,
	publisher ports.EventPublisher,
) PurchaseLabelCommandHandler {
	return PurchaseLabelCommandHandler{
		uowFactory: uowFactory,
		carrier:    carrier,
		notifier:   notifier,
		publisher:  publisher,
	}
}

// Handle processes the label purchase. The shipment record and the order's
// move to shipped commit together; the tracking number goes to the
// customer after the commit and is returned to the caller.
func (h *PurchaseLabelCommandHandler) Handle(ctx context.Context, cmd PurchaseLabelCommand) (ports.LabelInfo, error) {
	if err := cmd.Validate(); err != nil {
		return ports.LabelInfo{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.LabelInfo{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ports.LabelInfo{}, err
	}

	// Reject ineligible orders before spending money at the carrier.
	if _, err = aggregate.Status().Ship(); err != nil {
		return ports.LabelInfo{}, err
	}

	label, err := h.carrier.PurchaseLabel(ctx, aggregate.Code(), cmd.Address(), cmd.Parcel())
	if err != nil {
		return ports.LabelInfo{}, err
	}

	newShipment, err := shipment.NewShipment(
		kernel.NewUUID(),
		aggregate.ID(),
		label.TrackingNumber,
		label.Carrier,
		label.LabelURL,
		cmd.Address(),
		cmd.Parcel(),
		time.Now(),
	)
	if err != nil {
		return ports.LabelInfo{}, err
	}

	from := aggregate.Status()
	if err = aggregate.Ship(); err != nil {
		return ports.LabelInfo{}, err
	}

	if err = shipmentRepo.Add(ctx, newShipment); err != nil {
		return ports.LabelInfo{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return ports.LabelInfo{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.LabelInfo{}, err
	}

	_ = h.notifier.OrderShipped(ctx, aggregate, label.TrackingNumber)
	publishStatusChange(h.publisher, aggregate, from)
	return label, nil
}
