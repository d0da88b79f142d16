package commands

import (
	"context"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
)

// IssueQuoteCommandHandler moves a draft order to quoted, stamping the
// expiration timestamp. The customer is notified best-effort after the
// state change commits.
type IssueQuoteCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	publisher  ports.EventPublisher
}

// NewIssueQuoteCommandHandler creates a handler for quoting orders.
func NewIssueQuoteCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	publisher ports.EventPublisher,
) IssueQuoteCommandHandler {
	return IssueQuoteCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		publisher:  publisher,
	}
}

// Handle processes the quote issuance command.
func (h *IssueQuoteCommandHandler) Handle(ctx context.Context, cmd IssueQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	if err = aggregate.IssueQuote(time.Now(), cmd.ExpirationDays()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.QuoteIssued(ctx, aggregate)
	publishStatusChange(h.publisher, aggregate, from)
	return nil
}
