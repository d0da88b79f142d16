package batch_test

import (
	"testing"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/batch"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBatch(t *testing.T) *batch.Batch {
	t.Helper()
	b, err := batch.NewBatch(
		kernel.NewUUID(), kernel.NewUUID(), 500, 1, nil,
		[]string{"cutting", "assembly", "finishing"})
	require.NoError(t, err)
	return b
}

func TestNewBatch(t *testing.T) {
	t.Run("creates queued batch with pending steps", func(t *testing.T) {
		b := newTestBatch(t)

		assert.Equal(t, batch.Queued, b.Status())
		assert.Len(t, b.Steps(), 3)
		assert.Equal(t, -1, b.ActiveStep())
		assert.Nil(t, b.ActualStart())
		for i, step := range b.Steps() {
			assert.Equal(t, batch.StepPending, step.Status())
			assert.Equal(t, i, step.Position())
		}
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := batch.NewBatch(kernel.NewUUID(), kernel.NewUUID(), 0, 0, nil, []string{"cutting"})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires at least one step", func(t *testing.T) {
		_, err := batch.NewBatch(kernel.NewUUID(), kernel.NewUUID(), 10, 0, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestBatch_StartStep(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	t.Run("starting a step marks batch WIP and records first start", func(t *testing.T) {
		b := newTestBatch(t)

		require.NoError(t, b.StartStep(0, now))

		assert.Equal(t, batch.WIP, b.Status())
		assert.Equal(t, 0, b.ActiveStep())
		require.NotNil(t, b.ActualStart())
		assert.Equal(t, now, *b.ActualStart())
	})

	t.Run("only one step may be in progress", func(t *testing.T) {
		b := newTestBatch(t)
		require.NoError(t, b.StartStep(0, now))

		err := b.StartStep(1, now)
		require.ErrorIs(t, err, batch.ErrStepAlreadyActive)
		assert.Equal(t, 0, b.ActiveStep())
	})

	t.Run("completed step cannot restart", func(t *testing.T) {
		b := newTestBatch(t)
		require.NoError(t, b.StartStep(0, now))
		require.NoError(t, b.CompleteStep(0, now))

		err := b.StartStep(0, now.Add(time.Hour))
		require.ErrorIs(t, err, errs.ErrIllegalTransition)
	})

	t.Run("index out of range", func(t *testing.T) {
		b := newTestBatch(t)
		require.ErrorIs(t, b.StartStep(7, now), errs.ErrValueIsOutOfRange)
	})
}

func TestBatch_CompleteStep(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	t.Run("pending step cannot complete", func(t *testing.T) {
		b := newTestBatch(t)
		require.ErrorIs(t, b.CompleteStep(0, now), errs.ErrIllegalTransition)
	})

	t.Run("batch completes when all steps are done", func(t *testing.T) {
		b := newTestBatch(t)

		for i := range b.Steps() {
			require.NoError(t, b.StartStep(i, now))
			require.NoError(t, b.CompleteStep(i, now.Add(time.Hour)))
		}

		assert.Equal(t, batch.Done, b.Status())
		assert.Equal(t, -1, b.ActiveStep())

		// A done batch accepts no further work.
		require.ErrorIs(t, b.StartStep(0, now), errs.ErrIllegalTransition)
	})

	t.Run("batch stays WIP until the last step", func(t *testing.T) {
		b := newTestBatch(t)
		require.NoError(t, b.StartStep(0, now))
		require.NoError(t, b.CompleteStep(0, now))

		assert.Equal(t, batch.WIP, b.Status())
	})
}

func TestRestoreBatch(t *testing.T) {
	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := batch.RestoreBatch(
			kernel.NewUUID(), kernel.NewUUID(), batch.Status(42), 10, 0, nil, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("round trips steps", func(t *testing.T) {
		started := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
		step, err := batch.RestoreStep("cutting", 0, batch.StepWIP, &started, nil)
		require.NoError(t, err)

		b, err := batch.RestoreBatch(
			kernel.NewUUID(), kernel.NewUUID(), batch.WIP, 10, 0, nil, &started, []batch.Step{step})
		require.NoError(t, err)
		assert.Equal(t, 0, b.ActiveStep())
	})
}
