package routes

import (
	"net/http"

	"Seedfund/internal/contracts"
	"Seedfund/internal/domain/tier"

	"github.com/gin-gonic/gin"
)

// ListTiers godoc
// @Summary Donation tiers offered on the donation form
// @Tags tiers
// @Produce json
// @Success 200 {object} contracts.TierListResponse
// @Router /tiers [get]
func (h *Handler) ListTiers(c *gin.Context) {
	c.JSON(http.StatusOK, contracts.TierListResponse{Tiers: tier.Visible(), Success: true})
}
