package catalog

import (
	"testing"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
)

func TestPostRepository_RoundTrip(t *testing.T) {
	repo := NewPostRepository(testDB(t), testLogger(t))

	published := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	post := &catalog.Post{
		ID:            "p1",
		Title:         "Packing for the Annapurna Circuit",
		Excerpt:       "What actually earns its place in the duffel.",
		Content:       "Layers beat bulk...",
		Category:      "trekking",
		Author:        "Maya Sherpa",
		Tags:          []string{"gear", "trekking"},
		ReadTime:      strPtr("6 min"),
		PublishedDate: &published,
		Featured:      true,
	}
	if err := repo.Store(post); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	loaded, err := repo.FindByID("p1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected post, got nil")
	}
	if loaded.Title != post.Title || loaded.Author != post.Author {
		t.Fatalf("unexpected post: %+v", loaded)
	}
	if len(loaded.Tags) != 2 || loaded.Tags[0] != "gear" {
		t.Fatalf("tags not round-tripped: %v", loaded.Tags)
	}
	if loaded.Views != 0 {
		t.Fatalf("new post must start at 0 views, got %d", loaded.Views)
	}
	if !loaded.Featured {
		t.Fatal("featured flag lost")
	}
}

func TestPostRepository_FindAllDefaultOrder(t *testing.T) {
	repo := NewPostRepository(testDB(t), testLogger(t))

	for i, id := range []string{"p1", "p2", "p3"} {
		published := time.Date(2025, 1, 1+i, 0, 0, 0, 0, time.UTC)
		post := &catalog.Post{
			ID: id, Title: "Post " + id, Excerpt: "e", Content: "c",
			Category: "trekking", Author: "Maya", PublishedDate: &published,
		}
		if err := repo.Store(post); err != nil {
			t.Fatalf("store failed: %v", err)
		}
	}

	posts, err := repo.FindAll(repositories.ListFilter{})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	// Newest first by published_date.
	if posts[0].ID != "p3" || posts[2].ID != "p1" {
		t.Fatalf("unexpected order: %s, %s, %s", posts[0].ID, posts[1].ID, posts[2].ID)
	}
}

func TestPostRepository_IncrementViews(t *testing.T) {
	repo := NewPostRepository(testDB(t), testLogger(t))

	post := &catalog.Post{ID: "p1", Title: "T", Excerpt: "e", Content: "c", Category: "trekking", Author: "Maya"}
	if err := repo.Store(post); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := repo.IncrementViews("p1"); err != nil {
			t.Fatalf("increment failed: %v", err)
		}
	}

	loaded, err := repo.FindByID("p1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if loaded.Views != 3 {
		t.Fatalf("expected 3 views, got %d", loaded.Views)
	}
	if loaded.UpdatedAt != nil {
		t.Fatal("view counting must not stamp updated_at")
	}
}
