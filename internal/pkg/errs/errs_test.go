package errs_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/pkg/errs"

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
		err := errs.NewValueIsOutOfRangeError("latitude", 150, -90, 90)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, -90, err.Min)
		assert.Equal(t, 90, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -5, 1, 100, cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is quantity, min value is 1, max value is 100 (cause: validation failed)",
			err.Error())
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
		err := errs.NewValueIsRequiredError("paymentRef")

		assert.Equal(t, "paymentRef", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: paymentRef", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("paymentRef", cause)

		assert.Equal(t, "paymentRef", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: paymentRef (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := errs.NewAuthorizationError("update order status")

		assert.Equal(t, "update order status", err.Action)
		require.NoError(t, err.Cause)
		assert.Equal(t, "not authorized: update order status", err.Error())
		assert.Equal(t, errs.ErrNotAuthorized, err.Unwrap())
	})

	t.Run("NewAuthorizationErrorWithCause", func(t *testing.T) {
		cause := errors.New("actor does not own restaurant")
		err := errs.NewAuthorizationErrorWithCause("update order status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"not authorized: update order status (cause: actor does not own restaurant)",
			err.Error())
		assert.Equal(t, errs.ErrNotAuthorized, err.Unwrap())
	})
}

func TestPaymentFailedError(t *testing.T) {
	t.Run("NewPaymentFailedError", func(t *testing.T) {
		err := errs.NewPaymentFailedError("signature")

		assert.Equal(t, "signature", err.Stage)
		require.NoError(t, err.Cause)
		assert.Equal(t, "payment failed: signature", err.Error())
		assert.Equal(t, errs.ErrPaymentFailed, err.Unwrap())
	})

	t.Run("NewPaymentFailedErrorWithCause", func(t *testing.T) {
		cause := errors.New("gateway timeout")
		err := errs.NewPaymentFailedErrorWithCause("charge", cause)

		assert.Equal(t, "charge", err.Stage)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "payment failed: charge (cause: gateway timeout)", err.Error())
		assert.Equal(t, errs.ErrPaymentFailed, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "not authorized", errs.ErrNotAuthorized.Error())
		assert.Equal(t, "payment failed", errs.ErrPaymentFailed.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("lat", 150, -90, 90), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("otp"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewAuthorizationError("hide order"), errs.ErrNotAuthorized)
		require.ErrorIs(t, errs.NewPaymentFailedErrorWithCause("refund", errors.New("test")), errs.ErrPaymentFailed)
	})
}
