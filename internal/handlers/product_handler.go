package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xdSharp/Dashly-sub000/internal/models"
	"github.com/xdSharp/Dashly-sub000/internal/repository"
)

type ProductHandler struct {
	repo            *repository.ProductRepository
	categories      *repository.CategoryRepository
	defaultPageSize int
	maxPageSize     int
}

func NewProductHandler(repo *repository.ProductRepository, categories *repository.CategoryRepository, defaultPageSize, maxPageSize int) *ProductHandler {
	return &ProductHandler{
		repo:            repo,
		categories:      categories,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// CreateProduct creates a new product
// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	// The category must exist and belong to the owner
	if _, err := h.categories.GetByID(c.Request.Context(), owner, req.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			respondError(c, http.StatusBadRequest, "INVALID_CATEGORY", "Category not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to verify category")
		return
	}

	existing, err := h.repo.FindByName(c.Request.Context(), owner, req.Name)
	if err == nil && existing != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": existing})
		return
	}

	product := &models.Product{
		OwnerID:    owner,
		Name:       req.Name,
		CategoryID: req.CategoryID,
	}
	if err := h.repo.Create(c.Request.Context(), product); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": product})
}

// GetProducts lists products with pagination, optionally filtered by category
// GET /api/v1/products?categoryId=...
func (h *ProductHandler) GetProducts(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var categoryID *uuid.UUID
	if raw := c.Query("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid category ID")
			return
		}
		categoryID = &id
	}

	page, limit := pagination(c, h.defaultPageSize, h.maxPageSize)
	products, total, err := h.repo.GetAll(c.Request.Context(), owner, categoryID, limit, (page-1)*limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       products,
		"pagination": paginationInfo(page, limit, total),
	})
}

// GetProduct retrieves a single product
// GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
		return
	}

	product, err := h.repo.GetByID(c.Request.Context(), owner, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// UpdateProduct updates a product's name or category
// PUT /api/v1/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	product, err := h.repo.GetByID(c.Request.Context(), owner, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch product")
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.CategoryID != nil {
		if _, err := h.categories.GetByID(c.Request.Context(), owner, *req.CategoryID); err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_CATEGORY", "Category not found")
			return
		}
		product.CategoryID = *req.CategoryID
	}

	if err := h.repo.Update(c.Request.Context(), owner, product); err != nil {
		respondError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// DeleteProduct deletes a product
// DELETE /api/v1/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), owner, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
}
