package handler

import (
	"errors"
	"fmt"
	"net/http"

	"jobportal/internal/middleware"
	"jobportal/internal/model"
	"jobportal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler handles account and session requests
type AuthHandler struct {
	service          service.AuthService
	cookieMaxAgeDays int
	logger           *zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, cookieMaxAgeDays int, logger *zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service:          s,
		cookieMaxAgeDays: cookieMaxAgeDays,
		logger:           logger,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": service.ErrMissingFields.Error(),
			"success": false,
		})
		return
	}

	_, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "account created successfully",
		"success": true,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": service.ErrMissingFields.Error(),
			"success": false,
		})
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// The cookie outlives the token's signed expiry on purpose: once the
	// token itself expires, verification fails regardless of the cookie.
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, token, h.cookieMaxAgeDays*24*60*60, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("welcome back %s", user.FullName),
		"success": true,
		"user":    user,
	})
}

// Logout clears the session cookie. The token scheme is stateless, so there
// is no server-side session to tear down; logout always succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"message": "logged out successfully",
		"success": true,
	})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "user not authenticated",
			"success": false,
		})
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": service.ErrMissingFields.Error(),
			"success": false,
		})
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "profile updated successfully",
		"success": true,
		"user":    user,
	})
}

// respondError maps service errors onto the response envelope. Expected
// failures become 400 with their own message; anything else is logged and
// reported as a generic 500, so no code path leaves the caller hanging and
// no internal detail leaks.
func (h *AuthHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrRoleMismatch),
		errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": err.Error(),
			"success": false,
		})
	default:
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("internal error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "server error, please try again later",
			"success": false,
		})
	}
}

// RegisterAuthRoutes registers account and session routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	userGroup := rg.Group("/user")
	{
		userGroup.POST("/register", h.Register)
		userGroup.POST("/login", h.Login)
		userGroup.GET("/logout", h.Logout)
		userGroup.PUT("/profile/update", authMW, h.UpdateProfile)
	}
}
