// Package twilio implements the SMS notifier port against the Twilio
// Messages API. Destination numbers are normalized to E.164 before sending;
// bare local numbers get a configurable default country prefix.
package twilio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

const defaultBaseURL = "https://api.twilio.com/2010-04-01"

// Notifier is a Twilio-backed implementation of SMSNotifier.
type Notifier struct {
	baseURL       string
	accountSID    string
	authToken     string
	fromNumber    string
	defaultPrefix string
	httpClient    *http.Client
}

// NewNotifier creates a notifier sending from fromNumber. defaultPrefix is
// prepended to destination numbers that lack a country code, e.g. "+91".
func NewNotifier(accountSID, authToken, fromNumber, defaultPrefix string) (*Notifier, error) {
	if accountSID == "" {
		return nil, errs.NewValueIsRequiredError("accountSID")
	}
	if authToken == "" {
		return nil, errs.NewValueIsRequiredError("authToken")
	}
	if fromNumber == "" {
		return nil, errs.NewValueIsRequiredError("fromNumber")
	}
	if defaultPrefix == "" {
		return nil, errs.NewValueIsRequiredError("defaultPrefix")
	}

	return &Notifier{
		baseURL:       defaultBaseURL,
		accountSID:    accountSID,
		authToken:     authToken,
		fromNumber:    fromNumber,
		defaultPrefix: defaultPrefix,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// NewNotifierWithBaseURL creates a notifier pointed at a non-default API
// host. Used in tests to target a local stub server.
func NewNotifierWithBaseURL(accountSID, authToken, fromNumber, defaultPrefix, baseURL string) (*Notifier, error) {
	notifier, err := NewNotifier(accountSID, authToken, fromNumber, defaultPrefix)
	if err != nil {
		return nil, err
	}
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	notifier.baseURL = baseURL
	return notifier, nil
}

// Send delivers message to the given phone number via the Messages endpoint.
func (n *Notifier) Send(ctx context.Context, phone string, message string) error {
	destination, err := kernel.NewPhone(phone, n.defaultPrefix)
	if err != nil {
		return err
	}
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	form := url.Values{}
	form.Set("To", destination.E164())
	form.Set("From", n.fromNumber)
	form.Set("Body", message)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", n.baseURL, n.accountSID)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	request.SetBasicAuth(n.accountSID, n.authToken)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := n.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(response.Body, 1024))
		return fmt.Errorf("twilio: send to %s returned %d: %s",
			destination.E164(), response.StatusCode, detail)
	}

	return nil
}
