// Package httpapi exposes the webhook surface: the Resend inbound-email
// hook, a health check and a template preview.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/irkoudo/yehoshua-focus/internal/app/reflection"
	"github.com/irkoudo/yehoshua-focus/internal/domain"
	"github.com/irkoudo/yehoshua-focus/internal/emails"
	"github.com/irkoudo/yehoshua-focus/internal/observability"
)

type Server struct {
	svc *reflection.Service
}

// NewServer builds the router. Processing of a webhook event happens
// off the request goroutine, mirroring how the hook used to enqueue a
// background task: Resend only needs the 200.
func NewServer(svc *reflection.Service) http.Handler {
	s := &Server{svc: svc}

	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Use(withLogging)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/webhooks/resend", s.handleWebhookCheck)
	r.Post("/webhooks/resend", s.handleWebhook)
	r.Get("/preview/{moment}", s.handlePreview)

	return cors.Default().Handler(r)
}

// webhookEvent is the Resend inbound-email event envelope.
type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		From    string `json:"from"`
		EmailID string `json:"email_id"`
		Subject string `json:"subject"`
	} `json:"data"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleWebhookCheck answers the endpoint validation Resend performs
// when the hook is registered.
func (s *Server) handleWebhookCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Webhook endpoint ready",
	})
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var event webhookEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	if event.Data.From == "" || event.Data.EmailID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "from and email_id are required"})
		return
	}

	payload := reflection.InboundPayload{
		From:      event.Data.From,
		MessageID: domain.MessageID(event.Data.EmailID),
		Subject:   event.Data.Subject,
	}

	// Detach from the request context: the reply pipeline outlives
	// this handler. The request id is carried over for correlation.
	reqID, _ := r.Context().Value(requestIDKey).(string)
	go func() {
		ctx := observability.WithRequestID(context.Background(), reqID)
		if _, err := s.svc.ProcessInbound(ctx, payload); err != nil {
			observability.LoggerFromContext(ctx).Error("inbound processing failed", "error", err)
		}
	}()

	writeJSON(w, http.StatusOK, map[string]bool{"processed": true})
}

// handlePreview renders the focus template for a moment, for eyeballing
// the email without sending one.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var hour int
	switch chi.URLParam(r, "moment") {
	case "morning":
		hour = 8
	case "midday":
		hour = 12
	case "evening":
		hour = 19
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown moment"})
		return
	}

	html, err := emails.RenderFocusEmail(emails.SessionFor(hour))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

// withRequestID tags every request with an id used across log lines.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey, reqID)
		ctx = observability.WithRequestID(ctx, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
