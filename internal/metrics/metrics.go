// Package metrics exposes the Prometheus instrumentation shared by the
// webhook and the RPC layer.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// MessagesReceived counts inbound webhook messages.
	MessagesReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "financas_webhook_messages_total",
		Help: "Inbound WhatsApp webhook messages.",
	})

	// CommandsDispatched counts interpreted commands by command token.
	CommandsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "financas_commands_dispatched_total",
		Help: "Chat commands dispatched, by command token.",
	}, []string{"command"})

	// DeliveryFailures counts outbound messages the gateway could not
	// deliver after retries.
	DeliveryFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "financas_delivery_failures_total",
		Help: "Outbound WhatsApp messages dropped after delivery failure.",
	})

	// HandleDuration observes end-to-end webhook handling time.
	HandleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "financas_webhook_handle_seconds",
		Help:    "Webhook handling duration in seconds.",
		Buckets: prometheus.DefBuckets,
	})
)

// Handler returns the HTTP handler serving the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
