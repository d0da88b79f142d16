package errs_test

import (
	"errors"
	"testing"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("priority", 150, 0, 120)

		assert.Equal(t, "priority", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is priority, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("orderCode")

		assert.Equal(t, "orderCode", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: orderCode", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("orderCode", cause)

		assert.Equal(t, "orderCode", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: orderCode (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		cause := errors.New("row changed concurrently")
		err := errs.NewVersionIsInvalidError("order", cause)

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: order (cause: row changed concurrently)", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})
}

func TestIllegalTransitionError(t *testing.T) {
	t.Run("NewIllegalTransitionError", func(t *testing.T) {
		err := errs.NewIllegalTransitionError("Cancelled", "Quoted")

		assert.Equal(t, "Cancelled", err.From)
		assert.Equal(t, "Quoted", err.To)
		assert.Equal(t, "illegal transition: Cancelled -> Quoted", err.Error())
		assert.Equal(t, errs.ErrIllegalTransition, err.Unwrap())
	})

	t.Run("NewIllegalTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("order is terminal")
		err := errs.NewIllegalTransitionErrorWithCause("Shipped", "InQueue", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "illegal transition: Shipped -> InQueue (cause: order is terminal)", err.Error())
	})
}

func TestQuoteExpiredError(t *testing.T) {
	expiredAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	err := errs.NewQuoteExpiredError("ORD-001", expiredAt)

	assert.Equal(t, "ORD-001", err.OrderID)
	assert.Equal(t, expiredAt, err.ExpiredAt)
	assert.Equal(t, "quote expired: order ORD-001 expired at 2025-03-01T12:00:00Z", err.Error())
	assert.Equal(t, errs.ErrQuoteExpired, err.Unwrap())
}

func TestRateLimitedError(t *testing.T) {
	err := errs.NewRateLimitedError("renew quote", 24*time.Hour)

	assert.Equal(t, "renew quote", err.Operation)
	assert.Equal(t, 24*time.Hour, err.RetryAfter)
	assert.Equal(t, "rate limited: renew quote, retry after 24h0m0s", err.Error())
	assert.Equal(t, errs.ErrRateLimited, err.Unwrap())
}

func TestUpstreamFailureError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("carrier returned 502")
		err := errs.NewUpstreamFailureError("carrier", cause)

		assert.Equal(t, "carrier", err.Service)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "upstream failure: carrier (cause: carrier returned 502)", err.Error())
		assert.Equal(t, errs.ErrUpstreamFailure, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.UpstreamFailureError{Service: "sms"}
		assert.Equal(t, "upstream failure: sms", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
		assert.Equal(t, "illegal transition", errs.ErrIllegalTransition.Error())
		assert.Equal(t, "quote expired", errs.ErrQuoteExpired.Error())
		assert.Equal(t, "rate limited", errs.ErrRateLimited.Error())
		assert.Equal(t, "upstream failure", errs.ErrUpstreamFailure.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("priority", 150, 0, 120), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("orderCode"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewVersionIsInvalidError("order", errors.New("test")), errs.ErrVersionIsInvalid)
		require.ErrorIs(t, errs.NewIllegalTransitionError("Draft", "Shipped"), errs.ErrIllegalTransition)
		require.ErrorIs(t, errs.NewQuoteExpiredError("ORD-001", time.Now()), errs.ErrQuoteExpired)
		require.ErrorIs(t, errs.NewRateLimitedError("renew quote", time.Hour), errs.ErrRateLimited)
		require.ErrorIs(t, errs.NewUpstreamFailureError("carrier", errors.New("boom")), errs.ErrUpstreamFailure)
	})
}
