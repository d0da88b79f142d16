package commands

import (
	"context"
	"errors"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"
)

// RenewalCooldown is the minimum gap between two renewals of the same
// quote. It keeps staff from extending a dying quote indefinitely without
// a fresh customer conversation.
const RenewalCooldown = 24 * time.Hour

// RenewQuoteCommandHandler extends a quote's expiration. The cooldown is
// enforced against the quote action log: the most recent renewal action
// must be older than RenewalCooldown.
type RenewQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
	notifier   ports.Notifier
}

// NewRenewQuoteCommandHandler creates a handler for quote renewals.
func NewRenewQuoteCommandHandler(
	uowFactory QuoteUoWFactory,
	notifier ports.Notifier,
) RenewQuoteCommandHandler {
	return RenewQuoteCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the renewal. Fails with a RateLimitedError when the
// previous renewal is still inside the cooldown window.
func (h *RenewQuoteCommandHandler) Handle(ctx context.Context, cmd RenewQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	actionRepo := uow.QuoteActionRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	latest, err := actionRepo.GetLatestRenewal(ctx, cmd.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if latest != nil {
		if elapsed := now.Sub(latest.CreatedAt()); elapsed < RenewalCooldown {
			return errs.NewRateLimitedError("quote renewal", RenewalCooldown-elapsed)
		}
	}

	if err = aggregate.RenewQuote(now, cmd.ExpirationDays()); err != nil {
		return err
	}

	action, err := order.NewQuoteAction(
		kernel.NewUUID(),
		aggregate.ID(),
		order.ActionRenewal,
		"",
		cmd.ActorID(),
		now,
	)
	if err != nil {
		return err
	}

	if err = actionRepo.Add(ctx, action); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.QuoteRenewed(ctx, aggregate)
	return nil
}
