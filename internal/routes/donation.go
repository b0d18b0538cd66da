package routes

import (
	"net/http"

	"Seedfund/internal/contracts"
	"Seedfund/internal/domain/donation"
	appErrors "Seedfund/internal/errors"

	"github.com/gin-gonic/gin"
)

// CreateDonation godoc
// @Summary Record a donation
// @Tags donations
// @Accept json
// @Produce json
// @Param body body contracts.DonationCreateRequest true "Donation"
// @Success 201 {object} contracts.DonationResponse
// @Failure 400 {object} contracts.ErrorResponse
// @Router /donations [post]
func (h *Handler) CreateDonation(c *gin.Context) {
	var body contracts.DonationCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	created, err := h.DonationService.CreateDonation(c.Request.Context(), body.ToDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.DonationResponse{Donation: created, Success: true})
}

// ListDonations godoc
// @Summary List donations, newest first
// @Tags donations
// @Produce json
// @Param status query string false "pending, completed or failed"
// @Param type query string false "one-time, monthly or quantity"
// @Param search query string false "matches donor name, email or id"
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} contracts.DonationListResponse
// @Router /donations [get]
func (h *Handler) ListDonations(c *gin.Context) {
	filter := &donation.Filter{
		Search:     c.Query("search"),
		Pagination: h.parsePagination(c),
	}
	if status := c.Query("status"); status != "" && status != "all" {
		s := donation.PaymentStatus(status)
		filter.Status = &s
	}
	if kind := c.Query("type"); kind != "" && kind != "all" {
		t := donation.Type(kind)
		filter.Type = &t
	}

	donations, total, err := h.DonationService.ListDonations(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DonationListResponse{Donations: donations, Total: total, Success: true})
}

// GetDonationStats godoc
// @Summary Campaign totals over completed donations
// @Tags donations
// @Produce json
// @Success 200 {object} contracts.DonationStatsResponse
// @Router /donations/stats [get]
func (h *Handler) GetDonationStats(c *gin.Context) {
	stats, err := h.DonationService.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts.DonationStatsResponse{Stats: stats, Success: true})
}

// GetDonation godoc
// @Summary Get a donation
// @Tags donations
// @Produce json
// @Param id path string true "Donation ID"
// @Success 200 {object} contracts.DonationResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /donations/{id} [get]
func (h *Handler) GetDonation(c *gin.Context) {
	id, err := h.parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	found, err := h.DonationService.GetDonation(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts.DonationResponse{Donation: found, Success: true})
}

// UpdateDonation godoc
// @Summary Partially update a donation
// @Tags donations
// @Accept json
// @Produce json
// @Param id path string true "Donation ID"
// @Param body body contracts.DonationUpdateRequest true "Fields to change"
// @Success 200 {object} contracts.DonationResponse
// @Failure 400 {object} contracts.ErrorResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /donations/{id} [patch]
func (h *Handler) UpdateDonation(c *gin.Context) {
	id, err := h.parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.DonationUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	updated, err := h.DonationService.UpdateDonation(c.Request.Context(), id, body.ToDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts.DonationResponse{Donation: updated, Success: true})
}

// DeleteDonation godoc
// @Summary Delete a donation
// @Tags donations
// @Produce json
// @Param id path string true "Donation ID"
// @Success 200 {object} contracts.SuccessResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /donations/{id} [delete]
func (h *Handler) DeleteDonation(c *gin.Context) {
	id, err := h.parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.DonationService.DeleteDonation(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts.SuccessResponse{Success: true})
}

// ConfirmDonation godoc
// @Summary Mark a donation's payment as completed
// @Tags admin
// @Produce json
// @Param id path string true "Donation ID"
// @Success 200 {object} contracts.DonationResponse
// @Router /admin/donations/{id}/confirm [post]
func (h *Handler) ConfirmDonation(c *gin.Context) {
	h.setPaymentStatus(c, donation.PaymentCompleted)
}

// RejectDonation godoc
// @Summary Mark a donation's payment as failed
// @Tags admin
// @Produce json
// @Param id path string true "Donation ID"
// @Success 200 {object} contracts.DonationResponse
// @Router /admin/donations/{id}/reject [post]
func (h *Handler) RejectDonation(c *gin.Context) {
	h.setPaymentStatus(c, donation.PaymentFailed)
}

func (h *Handler) setPaymentStatus(c *gin.Context, status donation.PaymentStatus) {
	id, err := h.parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	updated, err := h.DonationService.SetPaymentStatus(c.Request.Context(), id, status)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts.DonationResponse{Donation: updated, Success: true})
}
