package commands

import (
	"errors"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCodeIsRequired     = errors.New("order code is required")
	ErrLinesAreRequired   = errors.New("at least one order line is required")
	ErrDepositCentsNeeded = errors.New("deposit amount must be positive when a deposit is required")
)

// LineInput is one requested order line as it arrives from the API layer.
type LineInput struct {
	Product        string
	Quantity       int
	UnitPriceCents int64
}

// CreateOrderCommand represents a request to register a new sales order in
// draft status. Carries the order lines and the deposit requirement that
// will later gate the production queue.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "ORD-2031", nil, false, lines, true, 50000)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	code            string
	brandID         *kernel.UUID
	internalSource  bool
	lines           []LineInput
	depositRequired bool
	depositCents    int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new sales order.
// brandID may be nil for brandless orders. Validates that the order ID is
// valid, the code is non-empty, at least one line is present, and a
// positive deposit amount accompanies a deposit requirement.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	code string,
	brandID *kernel.UUID,
	internalSource bool,
	lines []LineInput,
	depositRequired bool,
	depositCents int64,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard:          guard.NewConstructorGuard(),
		internalSource: internalSource,
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCode(code),
		orderCommand.setBrandID(brandID),
		orderCommand.setLines(lines),
		orderCommand.setDeposit(depositRequired, depositCents),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Code returns the human-readable order code.
func (c CreateOrderCommand) Code() string {
	return c.code
}

// BrandID returns the associated brand, or nil.
func (c CreateOrderCommand) BrandID() *kernel.UUID {
	return c.brandID
}

// IsInternalSource reports whether staff entered the order directly.
func (c CreateOrderCommand) IsInternalSource() bool {
	return c.internalSource
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []LineInput {
	return c.lines
}

// DepositRequired reports whether a deposit gates this order's production.
func (c CreateOrderCommand) DepositRequired() bool {
	return c.depositRequired
}

// DepositCents returns the required deposit amount in cents.
func (c CreateOrderCommand) DepositCents() int64 {
	return c.depositCents
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *CreateOrderCommand) setBrandID(brandID *kernel.UUID) error {
	if brandID != nil {
		if err := brandID.Validate(); err != nil {
			return err
		}
	}

	c.brandID = brandID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []LineInput) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setDeposit(required bool, cents int64) error {
	if required && cents <= 0 {
		return ErrDepositCentsNeeded
	}

	c.depositRequired = required
	c.depositCents = cents
	return nil
}
