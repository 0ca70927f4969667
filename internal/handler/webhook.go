package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/atlasgoods/fulfillment-service/internal/service"
	"github.com/atlasgoods/fulfillment-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// SignatureHeader carries the base64 HMAC-SHA256 digest of the raw body.
const SignatureHeader = "X-Shop-Hmac-Sha256"

type Verifier interface {
	Verify(body []byte, signature string) error
}

type OrderIngestor interface {
	Ingest(ctx context.Context, ev service.OrderEvent) (service.IngestResult, error)
}

type WebhookHandler struct {
	logger   *slog.Logger
	verifier Verifier
	svc      OrderIngestor
}

func NewWebhookHandler(logger *slog.Logger, verifier Verifier, svc OrderIngestor) *WebhookHandler {
	return &WebhookHandler{
		logger:   logger.With(slog.String("handler", "webhook")),
		verifier: verifier,
		svc:      svc,
	}
}

func (h *WebhookHandler) Init(r chi.Router) {
	r.Post("/webhooks/orders", h.HandleOrderEvent)
}

// HandleOrderEvent accepts an order event from the commerce platform.
// @Summary      Accept an order event
// @Description  Verifies the payload signature and creates an order from the event. Duplicate and non-order events are acknowledged without creating anything.
// @Tags         webhooks
// @Accept       json
// @Param        X-Shop-Hmac-Sha256  header    string  true  "Base64 HMAC-SHA256 signature of the raw body"
// @Success      200  {object}  WebhookAck
// @Failure      401  {object}  utils.ErrorResponse "Missing or invalid signature"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /webhooks/orders [post]
func (h *WebhookHandler) HandleOrderEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// The digest covers the raw bytes, so the body must be read before any
	// JSON decoding touches it.
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.WriteError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if err := h.verifier.Verify(body, r.Header.Get(SignatureHeader)); err != nil {
		webhookEvents.WithLabelValues("unauthorized").Inc()
		h.logger.WarnContext(ctx, "webhook rejected", slog.Any("error", err))
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var payload WebhookOrder
	if err := json.Unmarshal(body, &payload); err != nil {
		// Signed but unparseable. Acknowledge so the platform does not keep
		// retrying a payload that will never parse.
		webhookEvents.WithLabelValues(string(service.IngestIgnored)).Inc()
		h.logger.WarnContext(ctx, "ignoring unparseable event", slog.Any("error", err))
		utils.WriteJSON(w, WebhookAck{Result: string(service.IngestIgnored)}, http.StatusOK)
		return
	}

	res, err := h.svc.Ingest(ctx, OrderEventFromJSON(payload))
	if err != nil {
		webhookEvents.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to ingest event", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	webhookEvents.WithLabelValues(string(res)).Inc()
	utils.WriteJSON(w, WebhookAck{Result: string(res)}, http.StatusOK)
}
