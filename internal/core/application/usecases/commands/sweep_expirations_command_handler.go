package commands

import (
	"context"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
)

// ReminderWindow is how far ahead of a quote's expiration the expiring-soon
// reminder goes out.
const ReminderWindow = 3 * 24 * time.Hour

// SweepExpirationsResult reports what one sweep pass did.
type SweepExpirationsResult struct {
	ExpiredCount  int
	RemindedCount int
}

// SweepExpirationsCommandHandler expires lapsed quotes and reminds
// customers whose quotes expire soon. Expired orders go back to draft; the
// order itself is never deleted.
//
// The sweep is idempotent: an expired order leaves the quoted set, and a
// reminded order is stamped so a rerun at the same time does nothing.
type SweepExpirationsCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	publisher  ports.EventPublisher
}

// NewSweepExpirationsCommandHandler creates a handler for the expiration
// sweep.
func NewSweepExpirationsCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	publisher ports.EventPublisher,
) SweepExpirationsCommandHandler {
	return SweepExpirationsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		publisher:  publisher,
	}
}

// Handle runs one sweep pass. All order changes commit in a single
// transaction; notifications and events go out only after the commit, so a
// failed sweep never announces changes that were rolled back.
func (h *SweepExpirationsCommandHandler) Handle(
	ctx context.Context,
	cmd SweepExpirationsCommand,
) (SweepExpirationsResult, error) {
	var result SweepExpirationsResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	now := cmd.AsOf()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	quoted, err := orderRepo.GetAllInQuotedStatus(ctx)
	if err != nil {
		return result, err
	}

	var expired, reminded []*order.Order
	for _, aggregate := range quoted {
		expiresAt := aggregate.QuoteExpiresAt()
		if expiresAt == nil {
			continue
		}

		switch {
		case !now.Before(*expiresAt):
			if err = aggregate.ExpireQuote(now); err != nil {
				return result, err
			}
			if err = orderRepo.Update(ctx, aggregate); err != nil {
				return result, err
			}
			expired = append(expired, aggregate)

		case expiresAt.Sub(now) <= ReminderWindow && aggregate.QuoteReminderSentAt() == nil:
			if err = aggregate.MarkQuoteReminderSent(now); err != nil {
				return result, err
			}
			if err = orderRepo.Update(ctx, aggregate); err != nil {
				return result, err
			}
			reminded = append(reminded, aggregate)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return result, err
	}

	for _, aggregate := range expired {
		_ = h.notifier.QuoteExpired(ctx, aggregate)
		publishStatusChange(h.publisher, aggregate, order.Quoted)
	}
	for _, aggregate := range reminded {
		_ = h.notifier.QuoteExpiring(ctx, aggregate)
	}

	result.ExpiredCount = len(expired)
	result.RemindedCount = len(reminded)
	return result, nil
}
