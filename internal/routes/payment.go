package routes

import (
	"errors"
	"io"
	"net/http"

	"Seedfund/internal/contracts"
	"Seedfund/internal/domain/payment"
	appErrors "Seedfund/internal/errors"
	"Seedfund/internal/logger"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 1 << 20

// ProcessPayment godoc
// @Summary Charge a donor through the mock gateway for the chosen method
// @Tags payments
// @Accept json
// @Produce json
// @Param body body contracts.PaymentProcessRequest true "Payment"
// @Success 200 {object} contracts.PaymentProcessResponse
// @Failure 400 {object} contracts.ErrorResponse
// @Router /payments/process [post]
func (h *Handler) ProcessPayment(c *gin.Context) {
	var body contracts.PaymentProcessRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	receipt, err := h.PaymentService.Process(c.Request.Context(), body.ToDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PaymentProcessResponse{
		Success:  true,
		Donation: receipt,
		Message:  "Payment processed successfully",
	})
}

// PaymentWebhook godoc
// @Summary Receive payment provider events
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} contracts.WebhookResponse
// @Failure 401 {object} contracts.ErrorResponse
// @Failure 413 {object} contracts.ErrorResponse
// @Router /payments/webhook [post]
func (h *Handler) PaymentWebhook(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.respondError(c, appErrors.ErrPayloadTooLarge.WithDetails(map[string]interface{}{
				"limit": tooLarge.Limit,
			}))
			return
		}
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	verifier := h.WebhookVerifier
	if verifier == nil {
		verifier = payment.NoopVerifier{}
	}
	if err := verifier.Verify(c.Request.Header, body); err != nil {
		h.respondError(c, err)
		return
	}

	event, err := payment.ParseEvent(body)
	if err != nil {
		h.respondError(c, err)
		return
	}

	logger.Info().Str("event", event.Name()).Msg("webhook received")

	if err := h.PaymentService.HandleWebhook(c.Request.Context(), event); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.WebhookResponse{Received: true})
}
