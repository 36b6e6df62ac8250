package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xdSharp/Dashly-sub000/internal/models"
	"github.com/xdSharp/Dashly-sub000/internal/repository"
)

type CategoryHandler struct {
	repo            *repository.CategoryRepository
	defaultPageSize int
	maxPageSize     int
}

func NewCategoryHandler(repo *repository.CategoryRepository, defaultPageSize, maxPageSize int) *CategoryHandler {
	return &CategoryHandler{
		repo:            repo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// CreateCategory creates a new category
// POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	// Return the existing category instead of failing on duplicates
	existing, err := h.repo.FindByName(c.Request.Context(), owner, req.Name)
	if err == nil && existing != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": existing})
		return
	}

	category := &models.Category{
		OwnerID: owner,
		Name:    req.Name,
	}
	if err := h.repo.Create(c.Request.Context(), category); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": category})
}

// GetCategories lists categories with pagination
// GET /api/v1/categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	page, limit := pagination(c, h.defaultPageSize, h.maxPageSize)
	categories, total, err := h.repo.GetAll(c.Request.Context(), owner, limit, (page-1)*limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       categories,
		"pagination": paginationInfo(page, limit, total),
	})
}

// GetCategory retrieves a single category
// GET /api/v1/categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid category ID")
		return
	}

	category, err := h.repo.GetByID(c.Request.Context(), owner, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Category not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": category})
}

// UpdateCategory renames a category
// PUT /api/v1/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid category ID")
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	category, err := h.repo.GetByID(c.Request.Context(), owner, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Category not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch category")
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
	}

	if err := h.repo.Update(c.Request.Context(), owner, category); err != nil {
		respondError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": category})
}

// DeleteCategory deletes a category
// DELETE /api/v1/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid category ID")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), owner, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Category not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted"})
}
