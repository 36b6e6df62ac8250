package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xdSharp/Dashly-sub000/internal/models"
	"github.com/xdSharp/Dashly-sub000/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates a new account
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respondError(c, http.StatusConflict, "EMAIL_TAKEN", "An account with this email already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "REGISTER_FAILED", "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": resp})
}

// Login verifies credentials and issues a token
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		respondError(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": resp})
}

// Me returns the authenticated account
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication is required for this operation")
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "Account not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}
