package queries

import (
	"errors"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/guard"
)

var ErrGetBatchProgressQueryIsNotConstructed = errors.New(
	"GetBatchProgressQuery must be created via NewGetBatchProgressQuery constructor",
)

// GetBatchProgressQuery retrieves one batch with its step board: every
// workflow step, its status, and which one is running right now.
type GetBatchProgressQuery struct {
	batchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBatchProgressQuery creates a query for a batch's step board.
func NewGetBatchProgressQuery(batchID kernel.UUID) (GetBatchProgressQuery, error) {
	if err := batchID.Validate(); err != nil {
		return GetBatchProgressQuery{}, err
	}

	return GetBatchProgressQuery{
		batchID: batchID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBatchProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchProgressQueryIsNotConstructed)
}

// BatchID returns the requested batch identifier.
func (q GetBatchProgressQuery) BatchID() kernel.UUID {
	return q.batchID
}

// StepProgressResponse is one workflow step on the board.
type StepProgressResponse struct {
	Name        string
	Status      string
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// GetBatchProgressQueryResponse is the read model of one batch's progress.
// ActiveStep is the index of the running step, or -1 when none runs.
type GetBatchProgressQueryResponse struct {
	BatchID    kernel.UUID
	OrderID    kernel.UUID
	Status     string
	PlannedQty int
	ActiveStep int
	DoneSteps  int
	Steps      []StepProgressResponse
}
