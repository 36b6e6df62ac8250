package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xdSharp/Dashly-sub000/internal/services"
)

type ExportHandler struct {
	exports *services.ExportService
}

func NewExportHandler(exports *services.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// ExportSales downloads the owner's sales as CSV or XLSX
// GET /api/v1/sales/export?format=csv|xlsx&from=&to=
func (h *ExportHandler) ExportSales(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	filters, ok := saleFilters(c, owner)
	if !ok {
		return
	}

	stamp := time.Now().Format("2006-01-02")

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, err := h.exports.ExportCSV(c.Request.Context(), filters)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to export sales")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=sales_%s.csv", stamp))
		c.Data(http.StatusOK, "text/csv", data)
	case "xlsx":
		data, err := h.exports.ExportXLSX(c.Request.Context(), filters)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to export sales")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=sales_%s.xlsx", stamp))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		respondError(c, http.StatusBadRequest, "INVALID_FORMAT", "Supported formats: csv, xlsx")
	}
}
