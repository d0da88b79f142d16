// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The status and deposit columns are indexed because the sweep
// and the dashboard filter on them constantly.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code                string     `gorm:"uniqueIndex"`
	BrandID             *uuid.UUID `gorm:"type:uuid;index"`
	InternalSource      bool
	DepositRequired     bool
	DepositCents        int64
	DepositStatus       int
	QuoteExpiresAt      *time.Time `gorm:"index"`
	QuoteExpirationDays int
	QuoteReminderSentAt *time.Time
	Status              int `gorm:"index"`
	HeldFrom            int
	Version             int64
	Lines               []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one priced line of an order. Lines are written
// once with the order and never updated.
type OrderLineDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	Product        string
	Quantity       int
	UnitPriceCents int64
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var brandID *uuid.UUID
	if id := aggregate.BrandID(); id != nil {
		raw := id.Bytes()
		brandID = &raw
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:        aggregate.ID().Bytes(),
			Product:        line.Product(),
			Quantity:       line.Quantity(),
			UnitPriceCents: line.UnitPrice().Cents(),
		})
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		Code:                aggregate.Code(),
		BrandID:             brandID,
		InternalSource:      aggregate.IsInternalSource(),
		DepositRequired:     aggregate.DepositRequired(),
		DepositCents:        aggregate.DepositAmount().Cents(),
		DepositStatus:       int(aggregate.DepositStatus()),
		QuoteExpiresAt:      aggregate.QuoteExpiresAt(),
		QuoteExpirationDays: aggregate.QuoteExpirationDays(),
		QuoteReminderSentAt: aggregate.QuoteReminderSentAt(),
		Status:              int(aggregate.Status()),
		HeldFrom:            int(aggregate.HeldFrom()),
		Version:             aggregate.Version(),
		Lines:               lines,
	}
}

// toDomain converts a database row back into an order aggregate via
// RestoreOrder, which re-validates the stored status columns.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var brandID *kernel.UUID
	if dto.BrandID != nil {
		bID, brandErr := kernel.UUIDFromBytes((*dto.BrandID)[:])
		if brandErr != nil {
			return nil, brandErr
		}
		brandID = &bID
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		unitPrice, priceErr := kernel.NewMoneyFromCents(lineDTO.UnitPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		line, lineErr := order.NewLine(lineDTO.Product, lineDTO.Quantity, unitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	depositAmount, err := kernel.NewMoneyFromCents(dto.DepositCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Code,
		brandID,
		dto.InternalSource,
		lines,
		dto.DepositRequired,
		depositAmount,
		order.DepositStatus(dto.DepositStatus),
		dto.QuoteExpiresAt,
		dto.QuoteExpirationDays,
		dto.QuoteReminderSentAt,
		order.Status(dto.Status),
		order.Status(dto.HeldFrom),
		dto.Version,
	)
}
