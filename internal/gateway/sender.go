// Package gateway delivers outbound chat messages through a
// WhatsApp-provider HTTP API.
package gateway

import "context"

// Sender delivers a text message to a recipient identifier. Callers
// treat delivery as best-effort: a failed Send is logged and swallowed,
// never propagated to the webhook response.
type Sender interface {
	Send(ctx context.Context, to, text string) error
}

// Noop discards outbound messages. Used in tests and when no provider
// is configured.
type Noop struct{}

func (Noop) Send(ctx context.Context, to, text string) error { return nil }
