package order_test

import (
	"fmt"
	"testing"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Draft,
		order.Quoted,
		order.AwaitingApproval,
		order.DepositDue,
		order.InQueue,
		order.InProduction,
		order.InLabeling,
		order.InPacking,
		order.Packed,
		order.AwaitingInvoice,
		order.AwaitingPayment,
		order.ReadyToShip,
		order.Shipped,
		order.Cancelled,
		order.OnHoldCustomer,
		order.OnHoldInternal,
		order.OnHoldMaterials,
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all enumeration members", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out-of-range status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(100)} {
			err := status.Validate()

			require.Error(t, err)
			assert.Equal(t, "Unknown", status.String())
		}
	})
}

func TestStatus_Quote(t *testing.T) {
	t.Run("draft can be quoted", func(t *testing.T) {
		newStatus, err := order.Draft.Quote()
		require.NoError(t, err)
		assert.Equal(t, order.Quoted, newStatus)
	})

	t.Run("non-draft statuses cannot be quoted", func(t *testing.T) {
		for _, status := range []order.Status{order.Quoted, order.InQueue, order.Shipped, order.Cancelled} {
			_, err := status.Quote()
			require.ErrorIs(t, err, errs.ErrIllegalTransition)
		}
	})
}

func TestStatus_Accept(t *testing.T) {
	t.Run("accept with deposit goes to DepositDue", func(t *testing.T) {
		newStatus, err := order.Quoted.Accept(true)
		require.NoError(t, err)
		assert.Equal(t, order.DepositDue, newStatus)
	})

	t.Run("accept without deposit goes straight to InQueue", func(t *testing.T) {
		newStatus, err := order.AwaitingApproval.Accept(false)
		require.NoError(t, err)
		assert.Equal(t, order.InQueue, newStatus)
	})

	t.Run("cannot accept from other statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Draft, order.InProduction, order.Cancelled} {
			_, err := status.Accept(false)
			require.ErrorIs(t, err, errs.ErrIllegalTransition)
		}
	})
}

func TestStatus_FulfillmentChain(t *testing.T) {
	t.Run("advances production to awaiting payment in order", func(t *testing.T) {
		expected := []order.Status{
			order.InLabeling,
			order.InPacking,
			order.Packed,
			order.AwaitingInvoice,
			order.AwaitingPayment,
		}

		current := order.InProduction
		for _, want := range expected {
			next, err := current.AdvanceFulfillment()
			require.NoError(t, err)
			assert.Equal(t, want, next)
			current = next
		}
	})

	t.Run("chain stops at AwaitingPayment", func(t *testing.T) {
		_, err := order.AwaitingPayment.AdvanceFulfillment()
		require.ErrorIs(t, err, errs.ErrIllegalTransition)
	})

	t.Run("final payment releases shipping", func(t *testing.T) {
		newStatus, err := order.AwaitingPayment.SettleFinalPayment()
		require.NoError(t, err)
		assert.Equal(t, order.ReadyToShip, newStatus)
	})
}

func TestStatus_ShipAndRevert(t *testing.T) {
	newStatus, err := order.ReadyToShip.Ship()
	require.NoError(t, err)
	assert.Equal(t, order.Shipped, newStatus)

	reverted, err := newStatus.RevertShipment()
	require.NoError(t, err)
	assert.Equal(t, order.ReadyToShip, reverted)
}

func TestStatus_HoldAndCancel(t *testing.T) {
	t.Run("holds reachable from active statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Draft, order.Quoted, order.InProduction, order.ReadyToShip} {
			held, err := status.Hold(order.OnHoldMaterials)
			require.NoError(t, err)
			assert.Equal(t, order.OnHoldMaterials, held)
		}
	})

	t.Run("terminal statuses cannot be held or cancelled", func(t *testing.T) {
		for _, status := range []order.Status{order.Shipped, order.Cancelled} {
			_, err := status.Hold(order.OnHoldInternal)
			require.ErrorIs(t, err, errs.ErrIllegalTransition)

			_, err = status.Cancel()
			require.ErrorIs(t, err, errs.ErrIllegalTransition)
		}
	})

	t.Run("hold target must be a hold status", func(t *testing.T) {
		_, err := order.Draft.Hold(order.InQueue)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("cancel reachable from any active status", func(t *testing.T) {
		for _, status := range allStatuses() {
			if status.IsTerminal() {
				continue
			}
			cancelled, err := status.Cancel()
			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, cancelled)
		}
	})
}

func TestStatus_Terminal(t *testing.T) {
	assert.True(t, order.Shipped.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())

	for _, status := range allStatuses() {
		if status == order.Shipped || status == order.Cancelled {
			continue
		}
		assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
	}
}
