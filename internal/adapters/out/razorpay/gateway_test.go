package razorpay_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fooddelivery/internal/adapters/out/razorpay"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewGateway_Validation(t *testing.T) {
	t.Run("should create valid gateway", func(t *testing.T) {
		gateway, err := razorpay.NewGateway("rzp_test_key", "secret")
		require.NoError(t, err)
		require.NotNil(t, gateway)
	})

	t.Run("should fail with empty key ID", func(t *testing.T) {
		_, err := razorpay.NewGateway("", "secret")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty key secret", func(t *testing.T) {
		_, err := razorpay.NewGateway("rzp_test_key", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGateway_CreateCharge(t *testing.T) {
	ctx := context.Background()

	t.Run("should create charge via orders endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/orders", r.URL.Path)

			username, password, ok := r.BasicAuth()
			require.True(t, ok)
			require.Equal(t, "rzp_test_key", username)
			require.Equal(t, "secret", password)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, float64(59800), body["amount"])
			require.Equal(t, "INR", body["currency"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"order_abc123","amount":59800,"currency":"INR"}`))
		}))
		defer server.Close()

		gateway, err := razorpay.NewGatewayWithBaseURL("rzp_test_key", "secret", server.URL)
		require.NoError(t, err)

		charge, err := gateway.CreateCharge(ctx, 59800, "INR", "customer-42")
		require.NoError(t, err)
		require.Equal(t, "order_abc123", charge.Reference)
		require.Equal(t, int64(59800), charge.Amount)
		require.Equal(t, "INR", charge.Currency)
	})

	t.Run("should fail on gateway error response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		gateway, err := razorpay.NewGatewayWithBaseURL("rzp_test_key", "secret", server.URL)
		require.NoError(t, err)

		_, err = gateway.CreateCharge(ctx, 59800, "INR", "customer-42")
		require.Error(t, err)
	})

	t.Run("should reject non-positive amount", func(t *testing.T) {
		gateway, err := razorpay.NewGateway("rzp_test_key", "secret")
		require.NoError(t, err)

		_, err = gateway.CreateCharge(ctx, 0, "INR", "customer-42")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGateway_VerifySignature(t *testing.T) {
	gateway, err := razorpay.NewGateway("rzp_test_key", "secret")
	require.NoError(t, err)

	sign := func(payload string) string {
		mac := hmac.New(sha256.New, []byte("secret"))
		mac.Write([]byte(payload))
		return hex.EncodeToString(mac.Sum(nil))
	}

	t.Run("should accept valid signature", func(t *testing.T) {
		signature := sign("order_abc123|pay_xyz789")
		require.NoError(t, gateway.VerifySignature("order_abc123", "pay_xyz789", signature))
	})

	t.Run("should reject signature over different payload", func(t *testing.T) {
		signature := sign("order_abc123|pay_other")
		err := gateway.VerifySignature("order_abc123", "pay_xyz789", signature)
		require.ErrorIs(t, err, errs.ErrPaymentFailed)
	})

	t.Run("should reject tampered signature", func(t *testing.T) {
		signature := sign("order_abc123|pay_xyz789")
		tampered := "0" + signature[1:]
		if tampered == signature {
			tampered = "1" + signature[1:]
		}
		err := gateway.VerifySignature("order_abc123", "pay_xyz789", tampered)
		require.ErrorIs(t, err, errs.ErrPaymentFailed)
	})

	t.Run("should reject empty signature", func(t *testing.T) {
		err := gateway.VerifySignature("order_abc123", "pay_xyz789", "")
		require.ErrorIs(t, err, errs.ErrPaymentFailed)
	})
}

func TestGateway_Refund(t *testing.T) {
	ctx := context.Background()

	t.Run("should refund via payments endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/payments/pay_xyz789/refund", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, float64(59800), body["amount"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"rfnd_123"}`))
		}))
		defer server.Close()

		gateway, err := razorpay.NewGatewayWithBaseURL("rzp_test_key", "secret", server.URL)
		require.NoError(t, err)

		require.NoError(t, gateway.Refund(ctx, "pay_xyz789", 59800))
	})

	t.Run("should fail on gateway error response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		gateway, err := razorpay.NewGatewayWithBaseURL("rzp_test_key", "secret", server.URL)
		require.NoError(t, err)

		require.Error(t, gateway.Refund(ctx, "pay_xyz789", 59800))
	})

	t.Run("should reject empty payment reference", func(t *testing.T) {
		gateway, err := razorpay.NewGateway("rzp_test_key", "secret")
		require.NoError(t, err)

		require.ErrorIs(t, gateway.Refund(ctx, "", 59800), errs.ErrValueIsRequired)
	})
}
