package commands

import (
	"errors"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/guard"
)

var (
	ErrSweepExpirationsCommandIsNotConstructed = errors.New(
		"SweepExpirationsCommand must be created via NewSweepExpirationsCommand constructor",
	)
	ErrSweepTimeIsRequired = errors.New("sweep reference time is required")
)

// SweepExpirationsCommand represents one pass of the quote expiration
// sweep, evaluated against the given reference time. The scheduler passes
// the current time; tests pass fixed times.
type SweepExpirationsCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewSweepExpirationsCommand creates a sweep command evaluated at asOf.
func NewSweepExpirationsCommand(asOf time.Time) (SweepExpirationsCommand, error) {
	sweepCommand := SweepExpirationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := sweepCommand.setAsOf(asOf); err != nil {
		return SweepExpirationsCommand{}, err
	}

	return sweepCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SweepExpirationsCommand) Validate() error {
	return c.guard.Validate(ErrSweepExpirationsCommandIsNotConstructed)
}

// AsOf returns the reference time the sweep evaluates expirations against.
func (c SweepExpirationsCommand) AsOf() time.Time {
	return c.asOf
}

func (c *SweepExpirationsCommand) setAsOf(asOf time.Time) error {
	if asOf.IsZero() {
		return ErrSweepTimeIsRequired
	}

	c.asOf = asOf
	return nil
}
