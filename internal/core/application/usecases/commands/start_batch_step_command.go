package commands

import (
	"errors"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/guard"
)

var (
	ErrStartBatchStepCommandIsNotConstructed = errors.New(
		"StartBatchStepCommand must be created via NewStartBatchStepCommand constructor",
	)
	ErrStepIndexIsInvalid = errors.New("step index must not be negative")
)

// StartBatchStepCommand represents an operator starting one workflow step
// of a batch.
type StartBatchStepCommand struct { //nolint:recvcheck //using for validation
	batchID   kernel.UUID
	stepIndex int

	guard guard.ConstructorGuard
}

// NewStartBatchStepCommand creates a command to start a workflow step.
func NewStartBatchStepCommand(batchID kernel.UUID, stepIndex int) (StartBatchStepCommand, error) {
	stepCommand := StartBatchStepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stepCommand.setBatchID(batchID),
		stepCommand.setStepIndex(stepIndex),
	); err != nil {
		return StartBatchStepCommand{}, err
	}

	return stepCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartBatchStepCommand) Validate() error {
	return c.guard.Validate(ErrStartBatchStepCommandIsNotConstructed)
}

// BatchID returns the batch the step belongs to.
func (c StartBatchStepCommand) BatchID() kernel.UUID {
	return c.batchID
}

// StepIndex returns the position of the step in the batch workflow.
func (c StartBatchStepCommand) StepIndex() int {
	return c.stepIndex
}

func (c *StartBatchStepCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *StartBatchStepCommand) setStepIndex(index int) error {
	if index < 0 {
		return ErrStepIndexIsInvalid
	}

	c.stepIndex = index
	return nil
}
