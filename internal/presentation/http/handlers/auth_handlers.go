// Package handlers provides HTTP request handlers for the presentation layer.
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/application/services"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/security"
	"github.com/ShantiHimalaya/shanti-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// LoginRequest represents the structure for login requests
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AuthHandlers contains all authentication-related HTTP handlers
type AuthHandlers struct {
	authService *services.AuthService
	jwtSecret   string
	logger      *logging.ChanneledLogger
}

// NewAuthHandlers creates auth handlers with injected dependencies
func NewAuthHandlers(authService *services.AuthService, jwtSecret string, logger *logging.ChanneledLogger) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		jwtSecret:   jwtSecret,
		logger:      logger,
	}
}

// PostLogin handles POST /api/v1/auth/login - admin/editor authentication
func (h *AuthHandlers) PostLogin(c *gin.Context) {
	start := time.Now()
	h.logger.Auth().Debug("Received login request", "method", c.Request.Method, "path", c.Request.URL.Path)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Auth().Error("Login request JSON binding failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	token, role, err := h.authService.Login(req.Password)
	if err != nil {
		h.logger.Auth().Warn("Login attempt failed", "duration", time.Since(start))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	cookieName := "admin_auth"
	if role == services.RoleEditor {
		cookieName = "editor_auth"
	}
	c.SetCookie(cookieName, token, int(config.AdminTokenTTL.Seconds()), "/", "", false, true)

	h.logger.Auth().Info("Login successful", "role", role, "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"role":    role,
		"token":   token,
	})
}

// PostLogout handles POST /api/v1/auth/logout - clears authentication cookies
func (h *AuthHandlers) PostLogout(c *gin.Context) {
	c.SetCookie("admin_auth", "", -1, "/", "", false, true)
	c.SetCookie("editor_auth", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetAuthStatus handles GET /api/v1/auth/status
func (h *AuthHandlers) GetAuthStatus(c *gin.Context) {
	role := h.roleFromRequest(c)
	c.JSON(http.StatusOK, gin.H{
		"authenticated": role != "",
		"role":          role,
	})
}

// roleFromRequest extracts and validates a session token from the
// Authorization header or the auth cookies, returning the role or "".
func (h *AuthHandlers) roleFromRequest(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return h.roleFromToken(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if adminCookie, err := c.Cookie("admin_auth"); err == nil {
		if role := h.roleFromToken(adminCookie); role != "" {
			return role
		}
	}
	if editorCookie, err := c.Cookie("editor_auth"); err == nil {
		return h.roleFromToken(editorCookie)
	}
	return ""
}

func (h *AuthHandlers) roleFromToken(token string) string {
	claims, err := security.ValidateJWT(token, h.jwtSecret)
	if err != nil {
		return ""
	}
	role := security.RoleFromClaims(claims)
	if role != services.RoleAdmin && role != services.RoleEditor {
		return ""
	}
	return role
}

// AuthMiddleware guards back-office routes; admin and editor both pass.
func (h *AuthHandlers) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := h.roleFromRequest(c)
		if role == "" {
			h.logger.Auth().Warn("Unauthorized access attempt", "path", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		c.Set("role", role)
		c.Next()
	}
}

// AdminOnlyMiddleware restricts a route to the admin role.
func (h *AuthHandlers) AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.roleFromRequest(c) != services.RoleAdmin {
			h.logger.Auth().Warn("Unauthorized admin access attempt", "path", c.Request.URL.Path)
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
