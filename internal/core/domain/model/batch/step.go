package batch

import (
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"
)

// StepStatus represents the state of one workflow step inside a batch.
type StepStatus int

const (
	// StepPending means the step has not been started.
	StepPending StepStatus = iota

	// StepWIP means an operator is working the step.
	StepWIP

	// StepDone means the step finished.
	StepDone
)

func getStepStatusStrings() map[StepStatus]string {
	return map[StepStatus]string{
		StepPending: "Pending",
		StepWIP:     "WIP",
		StepDone:    "Done",
	}
}

// Validate checks that the value is a member of the enumeration.
func (s StepStatus) Validate() error {
	if _, ok := getStepStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("step status")
	}
	return nil
}

// String returns the human-readable name. Implements fmt.Stringer.
func (s StepStatus) String() string {
	if str, ok := getStepStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Step is one named workflow step of a production batch, e.g. "cutting" or
// "assembly". Steps are mutated only through their owning batch.
type Step struct {
	name        string
	position    int
	status      StepStatus
	startedAt   *time.Time
	completedAt *time.Time
}

// NewStep creates a pending workflow step.
func NewStep(name string, position int) (Step, error) {
	if name == "" {
		return Step{}, errs.NewValueIsRequiredError("step name")
	}
	return Step{name: name, position: position, status: StepPending}, nil
}

// RestoreStep reconstructs a step from persistence.
func RestoreStep(name string, position int, status StepStatus, startedAt, completedAt *time.Time) (Step, error) {
	if name == "" {
		return Step{}, errs.NewValueIsRequiredError("step name")
	}
	if err := status.Validate(); err != nil {
		return Step{}, err
	}
	return Step{
		name:        name,
		position:    position,
		status:      status,
		startedAt:   startedAt,
		completedAt: completedAt,
	}, nil
}

// Name returns the step name.
func (s *Step) Name() string {
	return s.name
}

// Position returns the step's index in the batch workflow.
func (s *Step) Position() int {
	return s.position
}

// Status returns the step state.
func (s *Step) Status() StepStatus {
	return s.status
}

// StartedAt returns when the step started, or nil.
func (s *Step) StartedAt() *time.Time {
	return s.startedAt
}

// CompletedAt returns when the step finished, or nil.
func (s *Step) CompletedAt() *time.Time {
	return s.completedAt
}

func (s *Step) start(now time.Time) error {
	if s.status != StepPending {
		return errs.NewIllegalTransitionError(s.status.String(), StepWIP.String())
	}
	s.status = StepWIP
	s.startedAt = &now
	return nil
}

func (s *Step) complete(now time.Time) error {
	if s.status != StepWIP {
		return errs.NewIllegalTransitionError(s.status.String(), StepDone.String())
	}
	s.status = StepDone
	s.completedAt = &now
	return nil
}
