// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"salonapi/handlers"
	"salonapi/middleware"
	"salonapi/models"
	"salonapi/utils"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Availability  *handlers.AvailabilityHandler
	Payments      *handlers.PaymentHandler
	Reports       *handlers.ReportHandler
	StripeWebhook *handlers.StripeWebhookHandler
}

// RegisterRoutes wires the whole HTTP surface onto the engine.
func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	// Availability lookup is public: clients browse slots before logging in.
	api.GET("/availability", h.Availability.Get)

	// Provider callbacks authenticate by signature, not bearer token.
	api.POST("/payments/stripe/webhook", h.StripeWebhook.Handle)

	payments := api.Group("/bookings/:id/payments", middleware.JWTAuth())
	{
		payments.POST("/transfer",
			middleware.RequireRoles(models.RoleClient, models.RoleAdmin, models.RoleManager),
			h.Payments.RequestTransfer)
		payments.POST("/transfer/confirm",
			middleware.RequireRoles(models.RoleAdmin, models.RoleManager),
			h.Payments.ConfirmTransfer)
		payments.POST("/card",
			middleware.RequireRoles(models.RoleClient, models.RoleAdmin, models.RoleManager),
			h.Payments.CreateCardIntent)
	}

	reports := api.Group("/reports",
		middleware.JWTAuth(),
		middleware.RequireRoles(models.RoleAdmin, models.RoleManager))
	{
		reports.GET("/summary", h.Reports.Summary)
		reports.GET("/summary/pdf", h.Reports.SummaryPDF)
		reports.GET("/revenue", h.Reports.Revenue)
		reports.GET("/stylists/revenue", h.Reports.StylistRevenue)
	}
}
