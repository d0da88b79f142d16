// Package quoteactionrepo persists the append-only quote action log.
package quoteactionrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
)

// QuoteActionDTO represents one quote action row. Rows are inserted and
// read, never updated.
type QuoteActionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Action    int       `gorm:"index"`
	Notes     string
	ActorID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time  `gorm:"index"`
}

// TableName specifies the database table name for quote actions.
func (QuoteActionDTO) TableName() string {
	return "quote_actions"
}

func fromDomain(action *order.QuoteAction) QuoteActionDTO {
	var actorID *uuid.UUID
	if id := action.ActorID(); id != nil {
		raw := id.Bytes()
		actorID = &raw
	}

	return QuoteActionDTO{
		ID:        action.ID().Bytes(),
		OrderID:   action.OrderID().Bytes(),
		Action:    int(action.Action()),
		Notes:     action.Notes(),
		ActorID:   actorID,
		CreatedAt: action.CreatedAt(),
	}
}

func toDomain(dto QuoteActionDTO) (*order.QuoteAction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var actorID *kernel.UUID
	if dto.ActorID != nil {
		aID, actorErr := kernel.UUIDFromBytes((*dto.ActorID)[:])
		if actorErr != nil {
			return nil, actorErr
		}
		actorID = &aID
	}

	return order.RestoreQuoteAction(
		id,
		orderID,
		order.ActionType(dto.Action),
		dto.Notes,
		actorID,
		dto.CreatedAt,
	)
}
