package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimthedrew/jobsabroad/internal/config"
	"github.com/kimthedrew/jobsabroad/internal/domain"
	"github.com/kimthedrew/jobsabroad/internal/domain/dto"
	"github.com/kimthedrew/jobsabroad/internal/middleware"
	"github.com/kimthedrew/jobsabroad/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    dto.NewUserResponse(user),
	})
}

// Login handles POST /auth/login and sets the token cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookie(c, token, int(h.cfg.TokenTTL.Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    dto.NewUserResponse(user),
	})
}

// Logout handles POST /auth/logout by expiring the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me handles GET /auth/me. Unlike other endpoints it re-fetches the account
// to assert the subject still exists.
func (h *AuthHandler) Me(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.NewUserResponse(user)})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", h.cfg.CookieSecure, true)
}
