// Package batchrepo persists production batches and their workflow steps.
package batchrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/batch"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
)

// BatchDTO represents the database structure for persisting batch
// aggregates.
type BatchDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	Status       int       `gorm:"index"`
	PlannedQty   int
	Priority     int
	PlannedStart *time.Time
	ActualStart  *time.Time
	Steps        []BatchStepDTO `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for batches.
func (BatchDTO) TableName() string {
	return "batches"
}

// BatchStepDTO represents one workflow step row, keyed by batch and
// position.
type BatchStepDTO struct {
	BatchID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"primaryKey"`
	Name        string
	Status      int
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// TableName specifies the database table name for workflow steps.
func (BatchStepDTO) TableName() string {
	return "batch_steps"
}

func fromDomain(aggregate *batch.Batch) BatchDTO {
	steps := make([]BatchStepDTO, 0, len(aggregate.Steps()))
	for _, step := range aggregate.Steps() {
		steps = append(steps, BatchStepDTO{
			BatchID:     aggregate.ID().Bytes(),
			Position:    step.Position(),
			Name:        step.Name(),
			Status:      int(step.Status()),
			StartedAt:   step.StartedAt(),
			CompletedAt: step.CompletedAt(),
		})
	}

	return BatchDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		Status:       int(aggregate.Status()),
		PlannedQty:   aggregate.PlannedQty(),
		Priority:     aggregate.Priority(),
		PlannedStart: aggregate.PlannedStart(),
		ActualStart:  aggregate.ActualStart(),
		Steps:        steps,
	}
}

func toDomain(dto BatchDTO) (*batch.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	steps := make([]batch.Step, 0, len(dto.Steps))
	for _, stepDTO := range dto.Steps {
		step, stepErr := batch.RestoreStep(
			stepDTO.Name,
			stepDTO.Position,
			batch.StepStatus(stepDTO.Status),
			stepDTO.StartedAt,
			stepDTO.CompletedAt,
		)
		if stepErr != nil {
			return nil, stepErr
		}
		steps = append(steps, step)
	}

	return batch.RestoreBatch(
		id,
		orderID,
		batch.Status(dto.Status),
		dto.PlannedQty,
		dto.Priority,
		dto.PlannedStart,
		dto.ActualStart,
		steps,
	)
}
