package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go"
)

const (
	sendAttempts = 3
	sendDelay    = 500 * time.Millisecond
)

// WhatsApp sends messages through a provider's HTTP API. The provider
// expects POST {to, body} with a bearer token.
type WhatsApp struct {
	url    string
	token  string
	client *http.Client
}

// NewWhatsApp creates a sender for the given provider endpoint.
func NewWhatsApp(url, token string) *WhatsApp {
	return &WhatsApp{
		url:   url,
		token: token,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send delivers one message, retrying transient provider failures (5xx
// and network errors) a few times before giving up. Client errors (4xx)
// are not retried.
func (w *WhatsApp) Send(ctx context.Context, to, text string) error {
	payload, err := json.Marshal(map[string]string{
		"to":   to,
		"body": text,
	})
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	return retry.Do(
		func() error {
			return w.post(ctx, payload)
		},
		retry.Context(ctx),
		retry.Attempts(sendAttempts),
		retry.Delay(sendDelay),
		retry.RetryIf(func(err error) bool {
			var se *statusError
			if errors.As(err, &se) {
				return se.code >= 500
			}
			return true // network errors
		}),
		retry.LastErrorOnly(true),
	)
}

func (w *WhatsApp) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if w.token != "" {
		req.Header.Set("Authorization", "Bearer "+w.token)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &statusError{code: resp.StatusCode}
	}

	return nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.code)
}
