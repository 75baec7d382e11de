package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
	"github.com/s0ph13d3f45w/landlord-ai/internal/http/middleware"
)

// AuthHandlers handles dashboard authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// SignupRequest represents landlord registration
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents landlord login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ResetRequest starts the password reset flow
type ResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetConfirmRequest redeems a reset token
type ResetConfirmRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// Signup handles landlord registration
func (h *AuthHandlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	landlord, err := h.authSvc.Signup(c.Request.Context(), req.Email, req.Name, req.Phone, req.Password)
	if err != nil {
		if err == domain.ErrLandlordAlreadyExists {
			c.JSON(http.StatusConflict, gin.H{"error": "Account already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"landlord_id": landlord.ID,
			"message":     "Account created successfully",
		},
	})
}

// Login handles landlord login and issues the session cookie
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	maxAge := int(session.ExpiresAt.Sub(session.CreatedAt).Seconds())
	c.SetCookie(middleware.SessionCookieName, session.ID, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"landlord_id": session.LandlordID,
			"expires_at":  session.ExpiresAt,
		},
	})
}

// Logout invalidates the current session
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && sessionID != "" {
		_ = h.authSvc.Logout(c.Request.Context(), sessionID)
	}
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Logged out"}})
}

// RequestReset starts the password reset flow. The response does not
// reveal whether the email exists.
func (h *AuthHandlers) RequestReset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process reset request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "If the account exists, a reset email was sent"}})
}

// ConfirmReset redeems a reset token and sets the new password
func (h *AuthHandlers) ConfirmReset(c *gin.Context) {
	var req ResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.authSvc.ResetPassword(c.Request.Context(), req.Token, req.Password)
	switch err {
	case nil:
		c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Password updated"}})
	case domain.ErrResetTokenNotFound, domain.ErrResetTokenUsed, domain.ErrResetTokenExpired:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reset token is invalid or expired"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
	}
}
