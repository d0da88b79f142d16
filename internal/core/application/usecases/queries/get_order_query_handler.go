package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"
)

// GetOrderQueryHandler reads a single order and its lines from the
// database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// row exists for the requested identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	var response GetOrderQueryResponse

	if err := query.Validate(); err != nil {
		return response, err
	}

	var (
		id             uuid.UUID
		status         int
		depositStatus  int
		quoteExpiresAt sql.NullTime
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			status,
			deposit_required,
			deposit_cents,
			deposit_status,
			quote_expires_at,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&id,
		&response.Code,
		&status,
		&response.DepositRequired,
		&response.DepositCents,
		&depositStatus,
		&quoteExpiresAt,
		&response.Version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return response, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return response, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return response, err
	}
	response.ID = orderID
	response.Status = order.Status(status).String()
	response.DepositStatus = order.DepositStatus(depositStatus).String()
	if quoteExpiresAt.Valid {
		expiresAt := quoteExpiresAt.Time
		response.QuoteExpiresAt = &expiresAt
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product,
			quantity,
			unit_price_cents
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return response, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetOrderLineResponse
		if err = rows.Scan(&line.Product, &line.Quantity, &line.UnitPriceCents); err != nil {
			return response, err
		}
		line.TotalCents = int64(line.Quantity) * line.UnitPriceCents
		response.SubtotalCents += line.TotalCents
		response.Lines = append(response.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return response, err
	}

	return response, nil
}
