// File: handlers/payments.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salonapi/models"
	"salonapi/services/payment"
	"salonapi/utils"
)

// PaymentHandler exposes the booking payment operations.
type PaymentHandler struct {
	Payments payment.Service
}

// RequestTransfer answers POST /bookings/:id/payments/transfer.
func (h *PaymentHandler) RequestTransfer(c *gin.Context) {
	order, err := h.Payments.RequestTransfer(c.Request.Context(), c.Param("id"), authUser(c))
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ConfirmTransfer answers POST /bookings/:id/payments/transfer/confirm.
func (h *PaymentHandler) ConfirmTransfer(c *gin.Context) {
	confirmation, err := h.Payments.ConfirmTransfer(c.Request.Context(), c.Param("id"), authUser(c))
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// CreateCardIntent answers POST /bookings/:id/payments/card.
func (h *PaymentHandler) CreateCardIntent(c *gin.Context) {
	intent, err := h.Payments.CreateCardIntent(c.Request.Context(), c.Param("id"), authUser(c))
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, intent)
}

func writePaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, payment.ErrInvalidBookingID):
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id", err.Error())
	case errors.Is(err, payment.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
	case errors.Is(err, payment.ErrNotAllowed):
		utils.JSONError(c, http.StatusForbidden, "operation not allowed", err.Error())
	case errors.Is(err, payment.ErrAlreadyPaid),
		errors.Is(err, payment.ErrBookingClosed),
		errors.Is(err, payment.ErrInvalidService),
		errors.Is(err, payment.ErrNoPendingTransfer):
		utils.JSONError(c, http.StatusBadRequest, "payment not applicable", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "payment operation failed", err.Error())
	}
}

// authUser returns the identity set by the JWT middleware, or a zero
// value when the route is unauthenticated.
func authUser(c *gin.Context) models.AuthUser {
	if v, ok := c.Get("authUser"); ok {
		if u, ok := v.(*models.AuthUser); ok {
			return *u
		}
	}
	return models.AuthUser{}
}
