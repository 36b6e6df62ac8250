package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xdSharp/Dashly-sub000/internal/models"
	"github.com/xdSharp/Dashly-sub000/internal/repository"
)

type BusinessHandler struct {
	repo *repository.BusinessRepository
}

func NewBusinessHandler(repo *repository.BusinessRepository) *BusinessHandler {
	return &BusinessHandler{repo: repo}
}

// GetBusiness returns the owner's business profile, creating the default
// profile on first access.
// GET /api/v1/business
func (h *BusinessHandler) GetBusiness(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	business, err := h.repo.GetOrCreate(c.Request.Context(), owner, "")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load business profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": business})
}

// UpdateBusiness applies a partial update to the business profile
// PUT /api/v1/business
func (h *BusinessHandler) UpdateBusiness(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req models.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	business, err := h.repo.GetOrCreate(c.Request.Context(), owner, "")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load business profile")
		return
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Address != nil {
		business.Address = *req.Address
	}
	if req.Phone != nil {
		business.Phone = *req.Phone
	}
	if req.Email != nil {
		business.Email = *req.Email
	}
	if req.Website != nil {
		business.Website = *req.Website
	}
	if req.Currency != nil {
		business.Currency = *req.Currency
	}
	if req.FooterText != nil {
		business.FooterText = *req.FooterText
	}

	if err := h.repo.Update(c.Request.Context(), business); err != nil {
		respondError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update business profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": business})
}
