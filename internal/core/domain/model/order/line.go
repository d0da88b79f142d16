package order

import (
	"fmt"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"
)

// Line is one priced position on an order: a product, a quantity, and the
// quoted unit price. Lines are immutable once created.
type Line struct {
	product   string
	quantity  int
	unitPrice kernel.Money

	isConstructed bool
}

// NewLine creates a validated order line. Product must be non-empty and
// quantity positive.
func NewLine(product string, quantity int, unitPrice kernel.Money) (Line, error) {
	if product == "" {
		return Line{}, errs.NewValueIsRequiredError("product")
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Line{
		product:       product,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Product returns the product name or SKU on this line.
func (l Line) Product() string {
	return l.product
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the quoted price per unit.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Total returns quantity times unit price.
func (l Line) Total() kernel.Money {
	return kernel.Money(int64(l.quantity) * l.unitPrice.Cents())
}

// Validate ensures the line was created via NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return errs.NewValueIsRequiredError("line must be created via NewLine")
	}
	return nil
}
