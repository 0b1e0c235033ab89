package ai

import (
	"strings"
	"testing"
)

func TestRegistry_EveryTypeHasPromptAndFallback(t *testing.T) {
	types := AllContentTypes()
	if len(types) != 17 {
		t.Fatalf("expected 17 content types, got %d", len(types))
	}

	for _, contentType := range types {
		t.Run(string(contentType), func(t *testing.T) {
			prompt, err := BuildPrompt(contentType, "Test Title", nil)
			if err != nil {
				t.Fatalf("prompt build failed: %v", err)
			}
			if !strings.Contains(prompt, "Test Title") {
				t.Fatalf("prompt does not mention the title: %q", prompt)
			}

			fallback := contentType.Fallback()
			if fallback == nil {
				t.Fatal("fallback is nil")
			}

			shape, err := contentType.ShapeOf()
			if err != nil {
				t.Fatalf("shape lookup failed: %v", err)
			}
			switch shape {
			case ShapeObject:
				if _, ok := fallback.(map[string]any); !ok {
					t.Fatalf("object-shaped fallback is %T", fallback)
				}
			case ShapeArray:
				if _, ok := fallback.([]any); !ok {
					t.Fatalf("array-shaped fallback is %T", fallback)
				}
			}
		})
	}
}

func TestRegistry_ArrayShapes(t *testing.T) {
	for _, contentType := range AllContentTypes() {
		shape, err := contentType.ShapeOf()
		if err != nil {
			t.Fatalf("shape lookup failed for %s: %v", contentType, err)
		}
		isArray := contentType == TypeItinerary || contentType == TypeFAQ
		if isArray != (shape == ShapeArray) {
			t.Fatalf("unexpected shape for %s", contentType)
		}
	}
}

func TestFallback_ReturnsFreshCopy(t *testing.T) {
	first := TypeJourney.Fallback().(map[string]any)
	first["description"] = "mutated"

	second := TypeJourney.Fallback().(map[string]any)
	if second["description"] == "mutated" {
		t.Fatal("fallback payloads share state between calls")
	}
}

func TestContentType_Valid(t *testing.T) {
	if !TypeBlogPost.Valid() {
		t.Fatal("blogPost should be valid")
	}
	if ContentType("podcast").Valid() {
		t.Fatal("podcast should not be valid")
	}
}

func TestBuildPrompt_AppendsContext(t *testing.T) {
	prompt, err := BuildPrompt(TypeJourney, "Everest Base Camp", map[string]string{
		"difficulty": "Challenging",
		"category":   "Trekking",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(prompt, "Additional context:") {
		t.Fatal("expected context section in prompt")
	}
	if !strings.Contains(prompt, "difficulty: Challenging") {
		t.Fatal("expected difficulty context line")
	}
}

func TestBuildPrompt_UnknownType(t *testing.T) {
	if _, err := BuildPrompt(ContentType("podcast"), "Title", nil); err == nil {
		t.Fatal("expected error for unknown content type")
	}
}
