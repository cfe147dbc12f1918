// Package webhook exposes the HTTP endpoint that receives inbound
// WhatsApp messages and feeds them to the chat interpreter.
package webhook

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/hz-solucoes/financas/internal/bot"
	"github.com/hz-solucoes/financas/internal/gateway"
	"github.com/hz-solucoes/financas/internal/metrics"
	"github.com/hz-solucoes/financas/internal/models"
)

// inboundPayload is the normalized provider envelope. Richer
// provider-specific payloads are reduced to this pair before the core
// ever sees them.
type inboundPayload struct {
	From string `json:"from"`
	Body string `json:"body"`
}

// successEnvelope wraps a computed reply.
type successEnvelope struct {
	Success  bool      `json:"success"`
	Response string    `json:"response"`
	User     *userInfo `json:"user,omitempty"`
}

// errorEnvelope wraps a transport-level failure.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type userInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Handler answers the messaging provider's webhook.
type Handler struct {
	interpreter *bot.Interpreter
	sender      gateway.Sender
	logger      *slog.Logger
}

// NewHandler creates a webhook handler around the interpreter and the
// outbound sender.
func NewHandler(interpreter *bot.Interpreter, sender gateway.Sender, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		interpreter: interpreter,
		sender:      sender,
		logger:      logger,
	}
}

// ServeHTTP handles one inbound message: normalize, interpret, answer,
// and attempt delivery of the reply through the gateway. The HTTP
// response carries the computed reply regardless of delivery outcome.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	start := time.Now()
	metrics.MessagesReceived.Inc()

	var payload inboundPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.From == "" || payload.Body == "" {
		writeError(w, http.StatusBadRequest, "fields 'from' and 'body' are required")
		return
	}

	command, _ := bot.Parse(payload.Body)
	metrics.CommandsDispatched.WithLabelValues(bot.CommandLabel(command)).Inc()

	reply, user, err := h.interpreter.Handle(r.Context(), payload.From, payload.Body)
	if err != nil {
		h.logger.Error("message handling failed", "from", payload.From, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Best effort: a failed delivery never changes the response or
	// rolls back what the handler already persisted.
	if err := h.sender.Send(r.Context(), payload.From, reply); err != nil {
		metrics.DeliveryFailures.Inc()
		h.logger.Warn("reply delivery failed", "to", payload.From, "error", err)
	}

	writeJSON(w, http.StatusOK, successEnvelope{
		Success:  true,
		Response: reply,
		User:     toUserInfo(user),
	})
	metrics.HandleDuration.Observe(time.Since(start).Seconds())
}

func toUserInfo(user *models.User) *userInfo {
	if user == nil {
		return nil
	}
	return &userInfo{
		ID:    user.ID,
		Name:  user.Name,
		Phone: user.Phone,
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorEnvelope{Success: false, Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode webhook response", "error", err)
	}
}
