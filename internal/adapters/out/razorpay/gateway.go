// Package razorpay implements the payment gateway port against the Razorpay
// REST API. Charges map to Razorpay orders; settlement proof is the HMAC
// signature Razorpay hands the client after checkout.
package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

// Gateway is a Razorpay-backed implementation of PaymentGateway.
type Gateway struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
}

// NewGateway creates a gateway using the given API key pair.
func NewGateway(keyID, keySecret string) (*Gateway, error) {
	if keyID == "" {
		return nil, errs.NewValueIsRequiredError("keyID")
	}
	if keySecret == "" {
		return nil, errs.NewValueIsRequiredError("keySecret")
	}

	return &Gateway{
		baseURL:    defaultBaseURL,
		keyID:      keyID,
		keySecret:  keySecret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// NewGatewayWithBaseURL creates a gateway pointed at a non-default API host.
// Used in tests to target a local stub server.
func NewGatewayWithBaseURL(keyID, keySecret, baseURL string) (*Gateway, error) {
	gateway, err := NewGateway(keyID, keySecret)
	if err != nil {
		return nil, err
	}
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	gateway.baseURL = baseURL
	return gateway, nil
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateCharge registers a Razorpay order for the given amount in minor
// currency units and returns its reference.
func (g *Gateway) CreateCharge(
	ctx context.Context, amount int64, currency string, receipt string,
) (ports.Charge, error) {
	if amount <= 0 {
		return ports.Charge{}, errs.NewValueIsInvalidError("amount")
	}
	if currency == "" {
		return ports.Charge{}, errs.NewValueIsRequiredError("currency")
	}

	body, err := json.Marshal(createOrderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return ports.Charge{}, err
	}

	var response createOrderResponse
	if err := g.post(ctx, "/orders", body, &response); err != nil {
		return ports.Charge{}, err
	}

	return ports.Charge{
		Reference: response.ID,
		Amount:    response.Amount,
		Currency:  response.Currency,
	}, nil
}

// VerifySignature checks the HMAC-SHA256 signature Razorpay computes over
// "<chargeRef>|<paymentRef>" with the key secret. A valid signature proves the
// payment completed at the gateway.
func (g *Gateway) VerifySignature(chargeRef, paymentRef, signature string) error {
	if chargeRef == "" || paymentRef == "" || signature == "" {
		return errs.NewPaymentFailedError("signature verification")
	}

	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(chargeRef + "|" + paymentRef))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return errs.NewPaymentFailedError("signature verification")
	}

	return nil
}

type refundRequest struct {
	Amount int64 `json:"amount"`
}

// Refund returns the captured amount of the given payment.
func (g *Gateway) Refund(ctx context.Context, paymentRef string, amount int64) error {
	if paymentRef == "" {
		return errs.NewValueIsRequiredError("paymentRef")
	}
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	body, err := json.Marshal(refundRequest{Amount: amount})
	if err != nil {
		return err
	}

	return g.post(ctx, fmt.Sprintf("/payments/%s/refund", paymentRef), body, nil)
}

// post issues an authenticated JSON request and decodes the response into out
// when out is non-nil. Non-2xx responses are returned as errors with the
// response body included for diagnosis.
func (g *Gateway) post(ctx context.Context, path string, body []byte, out any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	request.SetBasicAuth(g.keyID, g.keySecret)
	request.Header.Set("Content-Type", "application/json")

	response, err := g.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(response.Body, 1024))
		return fmt.Errorf("razorpay: %s returned %d: %s", path, response.StatusCode, detail)
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(response.Body).Decode(out)
}
