package ai

import (
	"testing"
)

func TestParseModelJSON_RawObject(t *testing.T) {
	got, err := parseModelJSON(`{"title": "Annapurna Trek", "duration": "7 Days"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", got)
	}
	if obj["title"] != "Annapurna Trek" {
		t.Fatalf("unexpected title: %v", obj["title"])
	}
}

func TestParseModelJSON_CodeFence(t *testing.T) {
	content := "```json\n{\"description\": \"A high valley\"}\n```"
	got, err := parseModelJSON(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := got.(map[string]any)
	if obj["description"] != "A high valley" {
		t.Fatalf("unexpected description: %v", obj["description"])
	}
}

func TestParseModelJSON_ProseWrapped(t *testing.T) {
	content := `Here is the itinerary you asked for:
[{"day": 1, "title": "Arrival"}, {"day": 2, "title": "Acclimatization"}]
Let me know if you need changes.`
	got, err := parseModelJSON(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, ok := got.([]any)
	if !ok {
		t.Fatalf("expected array, got %T", got)
	}
	if len(arr) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(arr))
	}
}

func TestParseModelJSON_ScalarRejected(t *testing.T) {
	if _, err := parseModelJSON(`"just a string"`); err == nil {
		t.Fatal("expected error for scalar JSON")
	}
	if _, err := parseModelJSON(`42`); err == nil {
		t.Fatal("expected error for numeric JSON")
	}
}

func TestParseModelJSON_NoJSON(t *testing.T) {
	if _, err := parseModelJSON("I could not generate content for that."); err == nil {
		t.Fatal("expected error for prose with no JSON")
	}
}

func TestStripCodeFences_NoFence(t *testing.T) {
	in := `{"a": 1}`
	if got := stripCodeFences(in); got != in {
		t.Fatalf("expected passthrough, got %q", got)
	}
}
