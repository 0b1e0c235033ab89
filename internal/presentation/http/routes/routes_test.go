package routes

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ShantiHimalaya/shanti-go/internal/application/container"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/database"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/site"
	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.NewTableCreator().CreateSchema(db); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{DefaultLevel: slog.LevelError + 4})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	siteConfig := &site.Config{
		JWTSecret:      "test-secret",
		AdminPassword:  "admin-pass",
		EditorPassword: "editor-pass",
	}
	appContainer, err := container.NewContainer(db, siteConfig, logger, t.TempDir())
	if err != nil {
		t.Fatalf("failed to build container: %v", err)
	}
	return SetupRoutes(appContainer)
}

func loginToken(t *testing.T, r *gin.Engine, password string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"password":"`+password+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	return body.Token
}

func doDelete(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDestructiveRoutesAreAdminOnly(t *testing.T) {
	r := testRouter(t)
	adminToken := loginToken(t, r, "admin-pass")
	editorToken := loginToken(t, r, "editor-pass")

	for _, path := range []string{"/api/v1/admin/categories/c1", "/api/v1/admin/enquiries/e1"} {
		t.Run(path, func(t *testing.T) {
			if w := doDelete(r, path, ""); w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 without a token, got %d", w.Code)
			}
			if w := doDelete(r, path, editorToken); w.Code != http.StatusForbidden {
				t.Fatalf("expected 403 for editor, got %d: %s", w.Code, w.Body.String())
			}
			if w := doDelete(r, path, adminToken); w.Code != http.StatusOK {
				t.Fatalf("expected 200 for admin, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestEditorKeepsContentRoutes(t *testing.T) {
	r := testRouter(t)
	editorToken := loginToken(t, r, "editor-pass")

	if w := doDelete(r, "/api/v1/admin/journeys/j1", editorToken); w.Code != http.StatusOK {
		t.Fatalf("editor must keep catalog CRUD, got %d: %s", w.Code, w.Body.String())
	}
}
