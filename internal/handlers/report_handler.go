package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xdSharp/Dashly-sub000/internal/services"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GetSalesReport generates and downloads the sales report PDF
// GET /api/v1/reports/sales?from=&to=
func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	filters, ok := saleFilters(c, owner)
	if !ok {
		return
	}

	pdf, err := h.reports.GenerateSalesReport(c.Request.Context(), owner, filters)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "REPORT_FAILED", "Failed to generate report")
		return
	}

	filename := fmt.Sprintf("sales_report_%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
