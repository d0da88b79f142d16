package commands

import (
	"errors"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/guard"
)

var ErrCompleteBatchStepCommandIsNotConstructed = errors.New(
	"CompleteBatchStepCommand must be created via NewCompleteBatchStepCommand constructor",
)

// CompleteBatchStepCommand represents an operator finishing one workflow
// step of a batch.
type CompleteBatchStepCommand struct { //nolint:recvcheck //using for validation
	batchID   kernel.UUID
	stepIndex int

	guard guard.ConstructorGuard
}

// NewCompleteBatchStepCommand creates a command to complete a workflow
// step.
func NewCompleteBatchStepCommand(batchID kernel.UUID, stepIndex int) (CompleteBatchStepCommand, error) {
	stepCommand := CompleteBatchStepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stepCommand.setBatchID(batchID),
		stepCommand.setStepIndex(stepIndex),
	); err != nil {
		return CompleteBatchStepCommand{}, err
	}

	return stepCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteBatchStepCommand) Validate() error {
	return c.guard.Validate(ErrCompleteBatchStepCommandIsNotConstructed)
}

// BatchID returns the batch the step belongs to.
func (c CompleteBatchStepCommand) BatchID() kernel.UUID {
	return c.batchID
}

// StepIndex returns the position of the step in the batch workflow.
func (c CompleteBatchStepCommand) StepIndex() int {
	return c.stepIndex
}

func (c *CompleteBatchStepCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *CompleteBatchStepCommand) setStepIndex(index int) error {
	if index < 0 {
		return ErrStepIndexIsInvalid
	}

	c.stepIndex = index
	return nil
}
