// File: handlers/availability.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"salonapi/models"
	"salonapi/services/availability"
	"salonapi/utils"
)

// Availability results are cached briefly: bookings made in between will
// be reflected within this window.
const availabilityCacheTTL = 30 * time.Second

// AvailabilityHandler exposes the slot availability lookup.
type AvailabilityHandler struct {
	Resolver availability.Resolver
	Cache    *redis.Client
}

// Get answers GET /availability?date=YYYY-MM-DD&serviceId=...&stylistId=...
// Malformed parameters yield an empty list, not an error.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	date := c.Query("date")
	serviceID := c.Query("serviceId")
	stylistID := c.Query("stylistId")

	ctx := c.Request.Context()
	cacheKey := fmt.Sprintf("availability:%s:%s:%s", date, serviceID, stylistID)

	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var windows []models.AvailabilityWindow
			if json.Unmarshal([]byte(cached), &windows) == nil {
				c.JSON(http.StatusOK, windows)
				return
			}
		}
	}

	windows, err := h.Resolver.ComputeAvailability(ctx, date, serviceID, stylistID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}

	if h.Cache != nil {
		if data, err := json.Marshal(windows); err == nil {
			h.Cache.Set(ctx, cacheKey, data, availabilityCacheTTL)
		}
	}

	c.JSON(http.StatusOK, windows)
}
