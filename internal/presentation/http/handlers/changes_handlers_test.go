package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/messaging"
	"github.com/ShantiHimalaya/shanti-go/pkg/config"
	"github.com/gin-gonic/gin"
)

func newChangesRouter(t *testing.T) (*gin.Engine, *messaging.ChangeBus) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := testLogger(t)
	bus := messaging.NewChangeBus(1, logger)
	changesHandlers := NewChangesHandlers(bus, messaging.NewAdminFeed(bus, logger), logger)

	r := gin.New()
	r.GET("/changes/sse", changesHandlers.GetSSE)
	return r, bus
}

func TestGetSSE_SendsConnectedEvent(t *testing.T) {
	r, _ := newChangesRouter(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // stream ends on the first select pass

	req := httptest.NewRequest(http.MethodGet, "/changes/sse?tables=journeys", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Fatalf("unexpected content type %q", got)
	}
	if !strings.Contains(w.Body.String(), "event: connected") {
		t.Fatalf("missing connected event: %s", w.Body.String())
	}
}

func TestGetSSE_RejectsWhenAtConnectionLimit(t *testing.T) {
	r, bus := newChangesRouter(t)

	for i := int64(0); i < config.MaxSSEConnections; i++ {
		_, cancel := bus.Subscribe("journeys")
		defer cancel()
	}

	req := httptest.NewRequest(http.MethodGet, "/changes/sse", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 at the connection limit, got %d", w.Code)
	}
	if bus.SubscriberCount() != int(config.MaxSSEConnections) {
		t.Fatalf("rejected request must not subscribe, count %d", bus.SubscriberCount())
	}
}
