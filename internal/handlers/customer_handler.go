package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xdSharp/Dashly-sub000/internal/models"
	"github.com/xdSharp/Dashly-sub000/internal/repository"
)

type CustomerHandler struct {
	repo            *repository.CustomerRepository
	defaultPageSize int
	maxPageSize     int
}

func NewCustomerHandler(repo *repository.CustomerRepository, defaultPageSize, maxPageSize int) *CustomerHandler {
	return &CustomerHandler{
		repo:            repo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// CreateCustomer creates a customer record
// POST /api/v1/customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req models.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	existing, err := h.repo.FindByEmail(c.Request.Context(), owner, req.Email)
	if err == nil && existing != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": existing})
		return
	}

	customer := &models.Customer{
		OwnerID: owner,
		Email:   req.Email,
		Name:    req.Name,
		Phone:   req.Phone,
		Tags:    req.Tags,
	}
	if err := h.repo.Create(c.Request.Context(), customer); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": customer})
}

// GetCustomers lists customers with pagination
// GET /api/v1/customers
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	page, limit := pagination(c, h.defaultPageSize, h.maxPageSize)
	customers, total, err := h.repo.GetAll(c.Request.Context(), owner, limit, (page-1)*limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch customers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       customers,
		"pagination": paginationInfo(page, limit, total),
	})
}

// GetCustomer retrieves a single customer
// GET /api/v1/customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
		return
	}

	customer, err := h.repo.GetByID(c.Request.Context(), owner, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": customer})
}

// DeleteCustomer deletes a customer
// DELETE /api/v1/customers/:id
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), owner, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Customer deleted"})
}
