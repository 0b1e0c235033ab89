package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/ai"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/messaging"
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

// recordingBus captures published changes for assertions.
type recordingBus struct {
	changes []messaging.Change
}

func (b *recordingBus) Publish(change messaging.Change) {
	b.changes = append(b.changes, change)
}

// countingGenerator returns a fixed payload and counts invocations.
type countingGenerator struct {
	calls   int
	content any
}

func (g *countingGenerator) GenerateContent(ctx context.Context, req ai.ContentRequest) (*ai.ContentResponse, error) {
	g.calls++
	return &ai.ContentResponse{Content: g.content, Suggestions: []string{}}, nil
}

func TestDraft_BlankTitleMakesNoGeneratorCalls(t *testing.T) {
	generator := &countingGenerator{content: map[string]any{}}
	svc := NewDraftService(generator, testLogger(t))

	_, err := svc.Draft(context.Background(), DraftRequest{
		Title:       "",
		ContentType: "journey",
	})
	if err == nil {
		t.Fatal("expected validation error for blank title")
	}
	if generator.calls != 0 {
		t.Fatalf("expected zero generator calls, got %d", generator.calls)
	}
}

func TestDraft_UnknownContentType(t *testing.T) {
	generator := &countingGenerator{content: map[string]any{}}
	svc := NewDraftService(generator, testLogger(t))

	_, err := svc.Draft(context.Background(), DraftRequest{
		Title:       "Pikey Peak",
		ContentType: "podcast",
	})
	if err == nil {
		t.Fatal("expected error for unknown content type")
	}
	if generator.calls != 0 {
		t.Fatalf("expected zero generator calls, got %d", generator.calls)
	}
}

func TestDraft_FillIfEmptyKeepsUserValues(t *testing.T) {
	generator := &countingGenerator{content: map[string]any{
		"description": "Generated description.",
		"duration":    "7 Days",
		"category":    "Trekking",
	}}
	svc := NewDraftService(generator, testLogger(t))

	resp, err := svc.Draft(context.Background(), DraftRequest{
		Title:       "Pikey Peak",
		ContentType: "journey",
		Existing: map[string]any{
			"description": "The editor already wrote this.",
			"duration":    "",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	merged := resp.Content.(map[string]any)
	if merged["description"] != "The editor already wrote this." {
		t.Fatalf("non-empty user value was overwritten: %v", merged["description"])
	}
	if merged["duration"] != "7 Days" {
		t.Fatalf("empty field was not filled: %v", merged["duration"])
	}
	if merged["category"] != "Trekking" {
		t.Fatalf("absent field was not filled: %v", merged["category"])
	}
}

func TestDraft_OverwriteReplacesUserValues(t *testing.T) {
	generator := &countingGenerator{content: map[string]any{
		"description": "Generated description.",
	}}
	svc := NewDraftService(generator, testLogger(t))

	resp, err := svc.Draft(context.Background(), DraftRequest{
		Title:       "Pikey Peak",
		ContentType: "journey",
		Existing:    map[string]any{"description": "Old text."},
		Overwrite:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	merged := resp.Content.(map[string]any)
	if merged["description"] != "Generated description." {
		t.Fatalf("overwrite did not replace the value: %v", merged["description"])
	}
}

func TestDraft_MergeIsIdempotent(t *testing.T) {
	generator := &countingGenerator{content: map[string]any{
		"description": "Generated description.",
		"duration":    "7 Days",
	}}
	svc := NewDraftService(generator, testLogger(t))

	req := DraftRequest{
		Title:       "Pikey Peak",
		ContentType: "journey",
		Existing:    map[string]any{"description": "Editor text."},
	}

	first, err := svc.Draft(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req.Existing = first.Content.(map[string]any)
	second, err := svc.Draft(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	firstMap := first.Content.(map[string]any)
	secondMap := second.Content.(map[string]any)
	if len(firstMap) != len(secondMap) {
		t.Fatalf("merge changed size on second pass: %d vs %d", len(firstMap), len(secondMap))
	}
	for key, value := range firstMap {
		if secondMap[key] != value {
			t.Fatalf("merge not idempotent at %q: %v vs %v", key, value, secondMap[key])
		}
	}
}

func TestDraft_RequestTokenAssignedAndEchoed(t *testing.T) {
	generator := &countingGenerator{content: map[string]any{}}
	svc := NewDraftService(generator, testLogger(t))

	resp, err := svc.Draft(context.Background(), DraftRequest{
		Title:       "Pikey Peak",
		ContentType: "journey",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.RequestToken == "" {
		t.Fatal("expected a generated request token")
	}

	echoed, err := svc.Draft(context.Background(), DraftRequest{
		Title:        "Pikey Peak",
		ContentType:  "journey",
		RequestToken: "client-token-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if echoed.RequestToken != "client-token-1" {
		t.Fatalf("client token was not echoed: %q", echoed.RequestToken)
	}
}

func TestDraft_ArrayContentPassesThroughUnmerged(t *testing.T) {
	generator := &countingGenerator{content: []any{
		map[string]any{"day": float64(1), "title": "Arrival"},
	}}
	svc := NewDraftService(generator, testLogger(t))

	resp, err := svc.Draft(context.Background(), DraftRequest{
		Title:       "Pikey Peak",
		ContentType: "itinerary",
		Existing:    map[string]any{"description": "should be ignored"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := resp.Content.([]any); !ok {
		t.Fatalf("expected array content to pass through, got %T", resp.Content)
	}
}
