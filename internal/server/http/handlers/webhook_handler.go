package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storeadmin/internal/adapter/stripe"
	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/server/http/middleware"
)

// MaxWebhookBodyBytes caps the accepted notification size.
const MaxWebhookBodyBytes int64 = 1 << 20

// WebhookHandler receives payment provider notifications.
type WebhookHandler struct {
	facade WebhookFacade
	logger *slog.Logger
}

// NewWebhookHandler constructs WebhookHandler.
func NewWebhookHandler(facade WebhookFacade, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{facade: facade, logger: logger}
}

// Handle handles POST /api/webhook. The body is read verbatim since the
// signature covers the exact bytes sent by the provider.
func (h *WebhookHandler) Handle(c *gin.Context) {
	ctx := c.Request.Context()
	log := h.logger.With(slog.String("request_id", middleware.CurrentRequestID(c)))

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxWebhookBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.WarnContext(ctx, "webhook body too large", slog.Int64("limit", tooLarge.Limit))
			c.String(http.StatusBadRequest, "Webhook Error: request body too large")
			return
		}
		log.WarnContext(ctx, "webhook body unreadable", slog.Any("error", err))
		c.String(http.StatusBadRequest, "Webhook Error: unreadable request body")
		return
	}

	outcome, err := h.facade.ProcessWebhook(ctx, body, c.GetHeader(stripe.SignatureHeader))
	if err != nil {
		h.writeError(c, log, err)
		return
	}

	log.InfoContext(ctx, "webhook accepted",
		slog.String("event_id", outcome.EventID),
		slog.String("event_type", string(outcome.EventType)),
		slog.String("action", string(outcome.Action)),
	)
	c.Status(http.StatusOK)
}

func (h *WebhookHandler) writeError(c *gin.Context, log *slog.Logger, err error) {
	ctx := c.Request.Context()

	var (
		verr *domainErrors.VerificationError
		derr *domainErrors.DecodeError
		rerr *domainErrors.ReconcileError
	)
	switch {
	case errors.As(err, &verr):
		log.WarnContext(ctx, "webhook signature rejected", slog.String("reason", string(verr.Reason)))
		c.String(http.StatusBadRequest, "Invalid signature, Webhook Error: %s", verr.Reason)
	case errors.As(err, &derr):
		log.WarnContext(ctx, "webhook payload rejected", slog.String("reason", string(derr.Reason)), slog.String("field", derr.Field))
		c.String(http.StatusBadRequest, "Webhook Error: %s", derr.Error())
	case errors.As(err, &rerr) && rerr.Reason == domainErrors.ReasonOrderNotFound:
		log.ErrorContext(ctx, "webhook order not found", slog.String("order_id", rerr.OrderID))
		c.String(http.StatusInternalServerError, "Webhook Error: order not found")
	default:
		log.ErrorContext(ctx, "webhook processing failed", slog.Any("error", err))
		c.String(http.StatusInternalServerError, "Webhook Error: internal error")
	}
}
