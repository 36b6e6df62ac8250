package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xdSharp/Dashly-sub000/internal/services"
)

type AnalyticsHandler struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsHandler(analytics *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// GetDashboard returns the combined analytics payload
// GET /api/v1/analytics/dashboard?from=&to=
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	filters, ok := saleFilters(c, owner)
	if !ok {
		return
	}

	dashboard, err := h.analytics.Dashboard(c.Request.Context(), owner, filters)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "ANALYTICS_FAILED", "Failed to compute dashboard")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": dashboard})
}

// GetSummary returns the headline numbers
// GET /api/v1/analytics/summary?from=&to=
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	filters, ok := saleFilters(c, owner)
	if !ok {
		return
	}

	summary, err := h.analytics.Summary(c.Request.Context(), filters)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "ANALYTICS_FAILED", "Failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}

// GetRevenueByCategory returns the revenue-per-category breakdown
// GET /api/v1/analytics/categories?from=&to=
func (h *AnalyticsHandler) GetRevenueByCategory(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	filters, ok := saleFilters(c, owner)
	if !ok {
		return
	}

	breakdown, err := h.analytics.RevenueByCategory(c.Request.Context(), filters)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "ANALYTICS_FAILED", "Failed to compute category revenue")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": breakdown})
}

// GetMonthlyRevenue returns the month-by-month revenue series
// GET /api/v1/analytics/monthly?from=&to=
func (h *AnalyticsHandler) GetMonthlyRevenue(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	filters, ok := saleFilters(c, owner)
	if !ok {
		return
	}

	series, err := h.analytics.MonthlyRevenue(c.Request.Context(), filters)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "ANALYTICS_FAILED", "Failed to compute monthly revenue")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": series})
}

// GetTopProducts returns the best sellers
// GET /api/v1/analytics/top-products?from=&to=
func (h *AnalyticsHandler) GetTopProducts(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	filters, ok := saleFilters(c, owner)
	if !ok {
		return
	}

	products, err := h.analytics.TopProducts(c.Request.Context(), filters)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "ANALYTICS_FAILED", "Failed to compute top products")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
}

// GetPaymentMethods returns the payment-method breakdown
// GET /api/v1/analytics/payment-methods?from=&to=
func (h *AnalyticsHandler) GetPaymentMethods(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	filters, ok := saleFilters(c, owner)
	if !ok {
		return
	}

	breakdown, err := h.analytics.PaymentMethods(c.Request.Context(), filters)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "ANALYTICS_FAILED", "Failed to compute payment method breakdown")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": breakdown})
}
