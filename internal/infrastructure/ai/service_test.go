package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
)

func testLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		DefaultLevel: slog.LevelError + 4,
	})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return logger
}

// fakeCompletions serves the chat completions endpoint with a fixed
// message body.
func fakeCompletions(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			fmt.Fprint(w, `{"error": {"message": "upstream failure"}}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"id": "chatcmpl-test",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": %q}, "finish_reason": "stop"}]
		}`, content)
	})
	return httptest.NewServer(handler)
}

func newTestService(t *testing.T, upstream *httptest.Server) *ContentService {
	t.Helper()
	return NewContentService(Config{
		APIKey:  "test-key",
		BaseURL: upstream.URL,
		Timeout: 5 * time.Second,
	}, testLogger(t))
}

func TestGenerateContent_Success(t *testing.T) {
	upstream := fakeCompletions(t, `{"description": "Ridge walks above the clouds.", "duration": "5 Days"}`, http.StatusOK)
	defer upstream.Close()

	svc := newTestService(t, upstream)
	resp, err := svc.GenerateContent(context.Background(), ContentRequest{
		Title: "Pikey Peak",
		Type:  TypeJourney,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, ok := resp.Content.(map[string]any)
	if !ok {
		t.Fatalf("expected object content, got %T", resp.Content)
	}
	if content["duration"] != "5 Days" {
		t.Fatalf("unexpected duration: %v", content["duration"])
	}
	if len(resp.Suggestions) != 0 {
		t.Fatalf("expected no suggestions on success, got %v", resp.Suggestions)
	}
}

func TestGenerateContent_BlankTitle(t *testing.T) {
	upstream := fakeCompletions(t, "", http.StatusOK)
	defer upstream.Close()

	svc := newTestService(t, upstream)
	_, err := svc.GenerateContent(context.Background(), ContentRequest{
		Title: "   ",
		Type:  TypeJourney,
	})
	if !errors.Is(err, ErrBlankTitle) {
		t.Fatalf("expected ErrBlankTitle, got %v", err)
	}
}

func TestGenerateContent_UnknownType(t *testing.T) {
	upstream := fakeCompletions(t, "", http.StatusOK)
	defer upstream.Close()

	svc := newTestService(t, upstream)
	_, err := svc.GenerateContent(context.Background(), ContentRequest{
		Title: "Valid Title",
		Type:  ContentType("podcast"),
	})
	if !errors.Is(err, ErrUnknownContentType) {
		t.Fatalf("expected ErrUnknownContentType, got %v", err)
	}
}

func TestGenerateContent_UpstreamErrorFallsBack(t *testing.T) {
	upstream := fakeCompletions(t, "", http.StatusInternalServerError)
	defer upstream.Close()

	svc := newTestService(t, upstream)
	resp, err := svc.GenerateContent(context.Background(), ContentRequest{
		Title: "Annapurna Circuit",
		Type:  TypeJourney,
	})
	if err != nil {
		t.Fatalf("generation failure must not surface an error, got %v", err)
	}

	content := resp.Content.(map[string]any)
	if content["duration"] != "7 Days" {
		t.Fatalf("expected canned journey fallback, got %v", content)
	}
	if len(resp.Suggestions) != 1 || resp.Suggestions[0] != FallbackSuggestion {
		t.Fatalf("expected fallback suggestion, got %v", resp.Suggestions)
	}
}

func TestGenerateContent_GarbledOutputFallsBack(t *testing.T) {
	upstream := fakeCompletions(t, "Sorry, I cannot help with that.", http.StatusOK)
	defer upstream.Close()

	svc := newTestService(t, upstream)
	resp, err := svc.GenerateContent(context.Background(), ContentRequest{
		Title: "Mardi Himal",
		Type:  TypeItinerary,
	})
	if err != nil {
		t.Fatalf("parse failure must not surface an error, got %v", err)
	}

	if _, ok := resp.Content.([]any); !ok {
		t.Fatalf("itinerary fallback should be an array, got %T", resp.Content)
	}
	if len(resp.Suggestions) != 1 || resp.Suggestions[0] != FallbackSuggestion {
		t.Fatalf("expected fallback suggestion, got %v", resp.Suggestions)
	}
}
