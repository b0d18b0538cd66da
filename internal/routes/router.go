package routes

import (
	"Seedfund/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Register mounts the API. Writes that donors can trigger go through limiter.
func Register(api *gin.RouterGroup, handler *Handler, limiter *middleware.RateLimiter) {
	limited := middleware.RateLimit(limiter)

	api.GET("/health", handler.Health)
	api.GET("/tiers", handler.ListTiers)

	donations := api.Group("/donations")
	{
		donations.GET("", handler.ListDonations)
		donations.POST("", limited, handler.CreateDonation)
		donations.GET("/stats", handler.GetDonationStats)
		donations.GET("/:id", handler.GetDonation)
		donations.PATCH("/:id", handler.UpdateDonation)
		donations.DELETE("/:id", handler.DeleteDonation)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/donations/:id/confirm", handler.ConfirmDonation)
		admin.POST("/donations/:id/reject", handler.RejectDonation)
	}

	pledges := api.Group("/pledges")
	{
		pledges.GET("", handler.ListPledges)
		pledges.POST("", limited, handler.CreatePledge)
		pledges.GET("/:id", handler.GetPledge)
		pledges.PATCH("/:id", handler.UpdatePledge)
		pledges.DELETE("/:id", handler.DeletePledge)
	}

	// provider deliveries arrive in bursts from few addresses, so the
	// webhook stays outside the per-IP limiter
	payments := api.Group("/payments")
	{
		payments.POST("/process", limited, handler.ProcessPayment)
		payments.POST("/webhook", handler.PaymentWebhook)
	}
}
