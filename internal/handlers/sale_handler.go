package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xdSharp/Dashly-sub000/internal/models"
	"github.com/xdSharp/Dashly-sub000/internal/repository"
	"github.com/xdSharp/Dashly-sub000/internal/services"
)

var saleDateLayouts = []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"}

type SaleHandler struct {
	repo            *repository.SaleRepository
	products        *repository.ProductRepository
	analytics       *services.AnalyticsService
	defaultPageSize int
	maxPageSize     int
}

func NewSaleHandler(repo *repository.SaleRepository, products *repository.ProductRepository, analytics *services.AnalyticsService, defaultPageSize, maxPageSize int) *SaleHandler {
	return &SaleHandler{
		repo:            repo,
		products:        products,
		analytics:       analytics,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// saleFilters builds the common filter set from query params.
func saleFilters(c *gin.Context, owner uuid.UUID) (models.SaleFilters, bool) {
	filters := models.SaleFilters{OwnerID: owner}

	if raw := c.Query("productId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
			return filters, false
		}
		filters.ProductID = &id
	}
	if raw := c.Query("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid category ID")
			return filters, false
		}
		filters.CategoryID = &id
	}

	from, to, err := services.ParsePeriod(c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_DATE", err.Error())
		return filters, false
	}
	filters.DateFrom = from
	filters.DateTo = to

	return filters, true
}

// CreateSale records a sale manually
// POST /api/v1/sales
func (h *SaleHandler) CreateSale(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req models.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if _, err := h.products.GetByID(c.Request.Context(), owner, req.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(c, http.StatusBadRequest, "INVALID_PRODUCT", "Product not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to verify product")
		return
	}

	saleDate, err := parseSaleDate(req.SaleDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_DATE", "Unrecognized sale date format")
		return
	}

	sale := &models.Sale{
		OwnerID:       owner,
		ProductID:     req.ProductID,
		Price:         req.Price,
		Quantity:      req.Quantity,
		TotalAmount:   req.TotalAmount,
		SaleDate:      saleDate,
		Employee:      req.Employee,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
	}
	if err := h.repo.Create(c.Request.Context(), sale); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to record sale")
		return
	}

	h.analytics.InvalidateDashboard(c.Request.Context(), owner)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": sale})
}

// GetSales lists sales, newest first
// GET /api/v1/sales?productId=&categoryId=&from=&to=
func (h *SaleHandler) GetSales(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	filters, ok := saleFilters(c, owner)
	if !ok {
		return
	}
	filters.Page, filters.Limit = pagination(c, h.defaultPageSize, h.maxPageSize)

	sales, total, err := h.repo.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch sales")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       sales,
		"pagination": paginationInfo(filters.Page, filters.Limit, total),
	})
}

// GetSale retrieves a single sale
// GET /api/v1/sales/:id
func (h *SaleHandler) GetSale(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid sale ID")
		return
	}

	sale, err := h.repo.GetByID(c.Request.Context(), owner, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Sale not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch sale")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": sale})
}

// DeleteSale deletes a sale
// DELETE /api/v1/sales/:id
func (h *SaleHandler) DeleteSale(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid sale ID")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), owner, id); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Sale not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete sale")
		return
	}

	h.analytics.InvalidateDashboard(c.Request.Context(), owner)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sale deleted"})
}

func parseSaleDate(value string) (time.Time, error) {
	for _, layout := range saleDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}
