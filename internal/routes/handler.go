package routes

import (
	"context"

	"Seedfund/internal/contracts"
	"Seedfund/internal/domain/donation"
	"Seedfund/internal/domain/payment"
	"Seedfund/internal/domain/pledge"
	appErrors "Seedfund/internal/errors"
	"Seedfund/internal/logger"
	"Seedfund/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type Handler struct {
	DonationService *donation.Service
	PledgeService   *pledge.Service
	PaymentService  *payment.Service
	WebhookVerifier payment.Verifier
	// HealthCheck pings the database; nil reports it as unknown.
	HealthCheck func(ctx context.Context) error
}

func (h *Handler) parseID(c *gin.Context) (ulid.ULID, error) {
	id := c.Param("id")
	if id == "" {
		return ulid.ULID{}, appErrors.NewValidationError("id", "is required")
	}
	parsed, err := pkg.ParseULID(id)
	if err != nil {
		return ulid.ULID{}, appErrors.NewValidationError("id", "has an invalid format").WithError(err)
	}
	return parsed, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	return pkg.ParsePagination(c.Query("page"), c.Query("limit"))
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Warn()
	if appErr.StatusCode >= 500 {
		event = logger.Error()
	}
	event = event.Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")

	c.JSON(appErr.StatusCode, contracts.ErrorResponse{
		Success: false,
		Error:   appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

// NotFound answers requests that match no registered route.
func (h *Handler) NotFound(c *gin.Context) {
	h.respondError(c, appErrors.NewNotFoundError("route"))
}
