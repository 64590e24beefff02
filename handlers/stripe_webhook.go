// File: handlers/stripe_webhook.go
package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	"salonapi/config"
	"salonapi/services/payment"
	"salonapi/utils"
)

const webhookBodyLimit = 65536

// StripeWebhookHandler settles card payments from provider events.
type StripeWebhookHandler struct {
	Payments payment.Service
}

// Handle answers POST /payments/stripe/webhook. Signature-verified; the
// route carries no user auth.
func (h *StripeWebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, webhookBodyLimit))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid webhook body", err.Error())
		return
	}

	event, err := webhook.ConstructEvent(body, c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid webhook signature", err.Error())
		return
	}

	logger := utils.GetLogger()
	logger.Info("stripe event received",
		zap.String("id", event.ID),
		zap.String("type", string(event.Type)))

	if event.Type != "payment_intent.succeeded" {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid event payload", err.Error())
		return
	}

	if err := h.Payments.ConfirmCard(c.Request.Context(), intent.ID); err != nil {
		// Stripe retries on non-2xx; a transient store failure should retry.
		utils.JSONError(c, http.StatusInternalServerError, "failed to settle card payment", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
