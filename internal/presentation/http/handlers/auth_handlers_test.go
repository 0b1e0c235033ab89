package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ShantiHimalaya/shanti-go/internal/application/services"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/site"
	"github.com/gin-gonic/gin"
)

func testLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{DefaultLevel: slog.LevelError + 4})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	return logger
}

func newAuthRouter(t *testing.T) (*gin.Engine, *AuthHandlers) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	siteConfig := &site.Config{
		JWTSecret:      "test-secret",
		AdminPassword:  "admin-pass",
		EditorPassword: "editor-pass",
	}
	logger := testLogger(t)
	authHandlers := NewAuthHandlers(services.NewAuthService(siteConfig, logger), siteConfig.JWTSecret, logger)

	r := gin.New()
	r.POST("/auth/login", authHandlers.PostLogin)
	r.GET("/auth/status", authHandlers.GetAuthStatus)

	admin := r.Group("/admin", authHandlers.AuthMiddleware())
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
	})
	admin.GET("/admin-only", authHandlers.AdminOnlyMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, authHandlers
}

func login(t *testing.T, r *gin.Engine, password string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"`+password+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostLogin(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := login(t, r, "admin-pass")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool   `json:"success"`
		Role    string `json:"role"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Success || body.Role != services.RoleAdmin || body.Token == "" {
		t.Fatalf("unexpected login response: %+v", body)
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), "admin_auth=") {
		t.Fatalf("admin_auth cookie not set: %q", w.Header().Get("Set-Cookie"))
	}
}

func TestPostLogin_WrongPassword(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := login(t, r, "not-the-password")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	r, _ := newAuthRouter(t)

	// No credentials at all.
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(login(t, r, "editor-pass").Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+body.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with bearer token, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"role":"editor"`) {
		t.Fatalf("role not propagated: %s", w.Body.String())
	}
}

func TestAdminOnlyMiddleware_RejectsEditor(t *testing.T) {
	r, _ := newAuthRouter(t)

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(login(t, r, "editor-pass").Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+body.Token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for editor, got %d", w.Code)
	}
}

func TestGetAuthStatus(t *testing.T) {
	r, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"authenticated":false`) {
		t.Fatalf("expected unauthenticated status: %s", w.Body.String())
	}
}
