// File: handlers/reports.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"salonapi/models"
	"salonapi/services/report"
	"salonapi/utils"
)

// ReportHandler exposes the management reporting endpoints.
type ReportHandler struct {
	Reports report.Service
}

// Summary answers GET /reports/summary?period=&from=&to=
func (h *ReportHandler) Summary(c *gin.Context) {
	period, from, to := reportQuery(c)

	summary, err := h.Reports.Summary(c.Request.Context(), period, from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build report", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SummaryPDF answers GET /reports/summary/pdf?period=&from=&to= with the
// rendered PDF as a download.
func (h *ReportHandler) SummaryPDF(c *gin.Context) {
	period, from, to := reportQuery(c)

	summary, err := h.Reports.Summary(c.Request.Context(), period, from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build report", err.Error())
		return
	}

	pdfBytes, err := report.RenderPDF(summary)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to render report pdf", err.Error())
		return
	}

	filename := fmt.Sprintf("reporte-%s-%s.pdf", summary.Range.Period, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// Revenue answers GET /reports/revenue?period=&from=&to=
func (h *ReportHandler) Revenue(c *gin.Context) {
	period, from, to := reportQuery(c)

	rng, rows, err := h.Reports.Revenue(c.Request.Context(), period, from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build revenue report", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"range": rng, "revenue": rows})
}

// StylistRevenue answers GET /reports/stylists/revenue?period=&from=&to=
func (h *ReportHandler) StylistRevenue(c *gin.Context) {
	period, from, to := reportQuery(c)

	rng, rows, err := h.Reports.StylistRevenue(c.Request.Context(), period, from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build stylist revenue report", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"range": rng, "stylists": rows})
}

// reportQuery parses the shared reporting query parameters. Invalid
// dates are treated as absent.
func reportQuery(c *gin.Context) (models.ReportPeriod, *time.Time, *time.Time) {
	period := models.ReportPeriod(c.DefaultQuery("period", string(models.PeriodDay)))

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			from = &t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			to = &t
		}
	}
	return period, from, to
}
