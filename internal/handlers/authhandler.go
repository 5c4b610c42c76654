package handlers

import (
	"net/http"

	"github.com/careerlane/job-portal/internal/auth"
	"github.com/careerlane/job-portal/internal/dtos"
	"github.com/careerlane/job-portal/internal/middleware"
	"github.com/careerlane/job-portal/internal/services"
	"github.com/gin-gonic/gin"
)

const tokenCookie = "token"

type AuthHandler struct {
	AuthService *services.AuthService
	// Secure flag for the token cookie, true behind TLS.
	CookieSecure bool
}

func NewAuthHandler(a *services.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		AuthService:  a,
		CookieSecure: cookieSecure,
	}
}

// Register is the POST /api/auth/register endpoint.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	if _, err := h.AuthService.Register(&req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login verifies credentials, sets the HTTP-only token cookie and also
// returns the token in the body for clients that prefer a header.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	user, token, err := h.AuthService.Login(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.SetCookie(tokenCookie, token, int(auth.TokenTTL.Seconds()), "/", "", h.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// Logout clears the token cookie. The token itself stays valid until
// expiry; there is no server-side revocation list.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(tokenCookie, "", -1, "/", "", h.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me returns the user behind the presented token, for SPA bootstrap.
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
		return
	}
	user, err := h.AuthService.GetUser(identity.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
