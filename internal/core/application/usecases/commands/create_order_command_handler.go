package commands

import (
	"context"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// New orders always start in draft status; quoting them is a separate
// operation.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. Builds the order lines,
// creates the aggregate in draft status, and persists it inside a
// transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lines := make([]order.Line, 0, len(cmd.Lines()))
	for _, input := range cmd.Lines() {
		unitPrice, err := kernel.NewMoneyFromCents(input.UnitPriceCents)
		if err != nil {
			return err
		}
		line, err := order.NewLine(input.Product, input.Quantity, unitPrice)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	depositAmount, err := kernel.NewMoneyFromCents(cmd.DepositCents())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Code(),
		cmd.BrandID(),
		cmd.IsInternalSource(),
		lines,
		cmd.DepositRequired(),
		depositAmount,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
