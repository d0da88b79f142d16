package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/batch"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"
)

// GetBatchProgressQueryHandler reads a batch and its step board from the
// database.
type GetBatchProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetBatchProgressQueryHandler creates a handler for batch progress
// reads. Requires a GORM database connection for query execution.
func NewGetBatchProgressQueryHandler(db *gorm.DB) GetBatchProgressQueryHandler {
	return GetBatchProgressQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no batch
// row exists for the requested identifier.
func (h GetBatchProgressQueryHandler) Handle(
	ctx context.Context,
	query GetBatchProgressQuery,
) (GetBatchProgressQueryResponse, error) {
	response := GetBatchProgressQueryResponse{ActiveStep: -1}

	if err := query.Validate(); err != nil {
		return response, err
	}

	var (
		batchID uuid.UUID
		orderID uuid.UUID
		status  int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			status,
			planned_qty
		FROM batches
		WHERE id = ?
	`, query.BatchID().String()).Row()

	err := row.Scan(&batchID, &orderID, &status, &response.PlannedQty)
	if errors.Is(err, sql.ErrNoRows) {
		return response, errs.NewObjectNotFoundError("batch", query.BatchID())
	}
	if err != nil {
		return response, err
	}

	if response.BatchID, err = kernel.UUIDFromBytes(batchID[:]); err != nil {
		return response, err
	}
	if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return response, err
	}
	response.Status = batch.Status(status).String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			status,
			started_at,
			completed_at
		FROM batch_steps
		WHERE batch_id = ?
		ORDER BY position
	`, query.BatchID().String()).Rows()
	if err != nil {
		return response, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			step        StepProgressResponse
			stepStatus  int
			startedAt   sql.NullTime
			completedAt sql.NullTime
		)

		if err = rows.Scan(&step.Name, &stepStatus, &startedAt, &completedAt); err != nil {
			return response, err
		}

		step.Status = batch.StepStatus(stepStatus).String()
		if startedAt.Valid {
			t := startedAt.Time
			step.StartedAt = &t
		}
		if completedAt.Valid {
			t := completedAt.Time
			step.CompletedAt = &t
		}

		switch batch.StepStatus(stepStatus) {
		case batch.StepWIP:
			response.ActiveStep = len(response.Steps)
		case batch.StepDone:
			response.DoneSteps++
		}

		response.Steps = append(response.Steps, step)
	}

	if err = rows.Err(); err != nil {
		return response, err
	}

	return response, nil
}
