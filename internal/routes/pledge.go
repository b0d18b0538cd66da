package routes

import (
	"net/http"

	"Seedfund/internal/contracts"
	"Seedfund/internal/domain/pledge"
	appErrors "Seedfund/internal/errors"

	"github.com/gin-gonic/gin"
)

// CreatePledge godoc
// @Summary Record a pledge to give on a future date
// @Tags pledges
// @Accept json
// @Produce json
// @Param body body contracts.PledgeCreateRequest true "Pledge"
// @Success 201 {object} contracts.PledgeResponse
// @Failure 400 {object} contracts.ErrorResponse
// @Router /pledges [post]
func (h *Handler) CreatePledge(c *gin.Context) {
	var body contracts.PledgeCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	created, err := h.PledgeService.CreatePledge(c.Request.Context(), body.ToDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.PledgeResponse{Pledge: created, Success: true})
}

// ListPledges godoc
// @Summary List pledges, newest first
// @Tags pledges
// @Produce json
// @Param status query string false "active, fulfilled or cancelled"
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} contracts.PledgeListResponse
// @Router /pledges [get]
func (h *Handler) ListPledges(c *gin.Context) {
	filter := &pledge.Filter{Pagination: h.parsePagination(c)}
	if status := c.Query("status"); status != "" && status != "all" {
		s := pledge.Status(status)
		filter.Status = &s
	}

	pledges, total, err := h.PledgeService.ListPledges(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts.PledgeListResponse{Pledges: pledges, Total: total, Success: true})
}

// GetPledge godoc
// @Summary Get a pledge
// @Tags pledges
// @Produce json
// @Param id path string true "Pledge ID"
// @Success 200 {object} contracts.PledgeResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /pledges/{id} [get]
func (h *Handler) GetPledge(c *gin.Context) {
	id, err := h.parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	found, err := h.PledgeService.GetPledge(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts.PledgeResponse{Pledge: found, Success: true})
}

// UpdatePledge godoc
// @Summary Partially update a pledge
// @Tags pledges
// @Accept json
// @Produce json
// @Param id path string true "Pledge ID"
// @Param body body contracts.PledgeUpdateRequest true "Fields to change"
// @Success 200 {object} contracts.PledgeResponse
// @Failure 400 {object} contracts.ErrorResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /pledges/{id} [patch]
func (h *Handler) UpdatePledge(c *gin.Context) {
	id, err := h.parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.PledgeUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	updated, err := h.PledgeService.UpdatePledge(c.Request.Context(), id, body.ToDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts.PledgeResponse{Pledge: updated, Success: true})
}

// DeletePledge godoc
// @Summary Delete a pledge
// @Tags pledges
// @Produce json
// @Param id path string true "Pledge ID"
// @Success 200 {object} contracts.SuccessResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /pledges/{id} [delete]
func (h *Handler) DeletePledge(c *gin.Context) {
	id, err := h.parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.PledgeService.DeletePledge(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts.SuccessResponse{Success: true})
}
