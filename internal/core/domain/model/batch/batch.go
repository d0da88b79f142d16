// Package batch contains the production batch aggregate: one manufacturing
// run for an order, tracked through an ordered list of workflow steps.
// The aggregate enforces that at most one step is in progress at a time,
// a rule the shop previously trusted operators' screens to uphold.
package batch

import (
	"errors"
	"fmt"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"
)

var (
	// ErrBatchIsNotConstructed is returned when a Batch instance was not
	// created through NewBatch or RestoreBatch.
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch constructor")

	// ErrStepAlreadyActive is returned when an operator starts a step while
	// another step of the same batch is still in progress.
	ErrStepAlreadyActive = errors.New("another step is already in progress")
)

// Status represents the lifecycle of a production batch.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Queued means no step has been started.
	Queued

	// WIP means at least one step has started and not all are done.
	WIP

	// Done means every step completed.
	Done
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Queued:  "Queued",
		WIP:     "WIP",
		Done:    "Done",
	}
}

// Validate checks that the value is a member of the enumeration.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidError("batch status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("batch status")
	}
	return nil
}

// String returns the human-readable name. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Batch is one manufacturing run tied to a sales order. Steps run strictly
// one at a time, in any order the operator chooses; the batch completes when
// every step is done.
type Batch struct {
	id           kernel.UUID
	orderID      kernel.UUID
	status       Status
	plannedQty   int
	priority     int
	plannedStart *time.Time
	actualStart  *time.Time
	steps        []Step

	isConstructed bool
}

// NewBatch creates a queued batch with the given workflow step names.
// Requires a positive planned quantity and at least one step.
func NewBatch(
	id kernel.UUID,
	orderID kernel.UUID,
	plannedQty int,
	priority int,
	plannedStart *time.Time,
	stepNames []string,
) (*Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if plannedQty <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("planned quantity",
			fmt.Errorf("%d is not greater than 0", plannedQty))
	}
	if len(stepNames) == 0 {
		return nil, errs.NewValueIsRequiredError("steps")
	}

	steps := make([]Step, 0, len(stepNames))
	for i, name := range stepNames {
		step, err := NewStep(name, i)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}

	return &Batch{
		id:            id,
		orderID:       orderID,
		status:        Queued,
		plannedQty:    plannedQty,
		priority:      priority,
		plannedStart:  plannedStart,
		steps:         steps,
		isConstructed: true,
	}, nil
}

// RestoreBatch reconstructs a batch from persistence.
func RestoreBatch(
	id kernel.UUID,
	orderID kernel.UUID,
	status Status,
	plannedQty int,
	priority int,
	plannedStart *time.Time,
	actualStart *time.Time,
	steps []Step,
) (*Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Batch{
		id:            id,
		orderID:       orderID,
		status:        status,
		plannedQty:    plannedQty,
		priority:      priority,
		plannedStart:  plannedStart,
		actualStart:   actualStart,
		steps:         steps,
		isConstructed: true,
	}, nil
}

// Validate ensures the Batch instance was properly constructed.
func (b *Batch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBatchIsNotConstructed
	}
	return nil
}

// ID returns the batch's unique identifier.
func (b *Batch) ID() kernel.UUID {
	return b.id
}

// OrderID returns the owning sales order.
func (b *Batch) OrderID() kernel.UUID {
	return b.orderID
}

// Status returns the batch lifecycle status.
func (b *Batch) Status() Status {
	return b.status
}

// PlannedQty returns the planned production quantity.
func (b *Batch) PlannedQty() int {
	return b.plannedQty
}

// Priority returns the queue priority index (lower runs first).
func (b *Batch) Priority() int {
	return b.priority
}

// PlannedStart returns the planned start time, or nil.
func (b *Batch) PlannedStart() *time.Time {
	return b.plannedStart
}

// ActualStart returns when the first step started, or nil.
func (b *Batch) ActualStart() *time.Time {
	return b.actualStart
}

// Steps returns the ordered workflow steps.
func (b *Batch) Steps() []Step {
	return b.steps
}

// ActiveStep returns the index of the step currently in progress, or -1.
func (b *Batch) ActiveStep() int {
	for i, step := range b.steps {
		if step.Status() == StepWIP {
			return i
		}
	}
	return -1
}

// StartStep puts the step at index into progress. Fails when the batch is
// done, the index is out of range, the step already ran, or another step is
// in progress.
func (b *Batch) StartStep(index int, now time.Time) error {
	if b.status == Done {
		return errs.NewIllegalTransitionError(b.status.String(), WIP.String())
	}
	if index < 0 || index >= len(b.steps) {
		return errs.NewValueIsOutOfRangeError("step index", index, 0, len(b.steps)-1)
	}
	if active := b.ActiveStep(); active >= 0 {
		return ErrStepAlreadyActive
	}

	if err := b.steps[index].start(now); err != nil {
		return err
	}

	b.status = WIP
	if b.actualStart == nil {
		b.actualStart = &now
	}
	return nil
}

// CompleteStep finishes the step at index. When every step is done the
// batch completes.
func (b *Batch) CompleteStep(index int, now time.Time) error {
	if index < 0 || index >= len(b.steps) {
		return errs.NewValueIsOutOfRangeError("step index", index, 0, len(b.steps)-1)
	}

	if err := b.steps[index].complete(now); err != nil {
		return err
	}

	for _, step := range b.steps {
		if step.Status() != StepDone {
			return nil
		}
	}
	b.status = Done
	return nil
}
