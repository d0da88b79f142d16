package quoteactionrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"
)

// GormQuoteActionRepository implements QuoteActionRepository using GORM.
type GormQuoteActionRepository struct {
	db *gorm.DB
}

// NewGormQuoteActionRepository creates a new GORM quote action repository.
func NewGormQuoteActionRepository(db *gorm.DB) *GormQuoteActionRepository {
	return &GormQuoteActionRepository{db: db}
}

// Add appends a quote action row.
func (r *GormQuoteActionRepository) Add(ctx context.Context, action *order.QuoteAction) error {
	if err := action.Validate(); err != nil {
		return err
	}

	dto := fromDomain(action)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllForOrder retrieves the action history for an order, newest first.
func (r *GormQuoteActionRepository) GetAllForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*order.QuoteAction, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []QuoteActionDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	actions := make([]*order.QuoteAction, 0, len(dtos))
	for _, dto := range dtos {
		action, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}

	return actions, nil
}

// GetLatestRenewal retrieves the most recent renewal action for an order.
func (r *GormQuoteActionRepository) GetLatestRenewal(
	ctx context.Context,
	orderID kernel.UUID,
) (*order.QuoteAction, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto QuoteActionDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		First(&dto, "order_id = ? AND action = ?", orderID.Bytes(), int(order.ActionRenewal)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("renewal", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
