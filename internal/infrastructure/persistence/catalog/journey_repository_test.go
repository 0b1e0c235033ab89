package catalog

import (
	"database/sql"
	"log/slog"
	"testing"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/database"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	_ "github.com/mattn/go-sqlite3"
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

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.NewTableCreator().CreateSchema(db); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func TestJourneyRepository_RoundTrip(t *testing.T) {
	repo := NewJourneyRepository(testDB(t), testLogger(t))

	journey := &catalog.Journey{
		ID:          "01TESTJOURNEY",
		Title:       "Langtang Valley Trek",
		Description: "Glacier valleys a day's drive from Kathmandu.",
		Duration:    "8 Days",
		Difficulty:  "Moderate",
		Category:    "Trekking",
		Activities:  []string{"Trekking", "Photography"},
		ImageURL:    strPtr("/media/journeys/langtang.jpg"),
		Featured:    true,
	}
	if err := repo.Store(journey); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	loaded, err := repo.FindByID("01TESTJOURNEY")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected journey, got nil")
	}
	if loaded.Title != journey.Title || loaded.Category != journey.Category {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
	if len(loaded.Activities) != 2 || loaded.Activities[0] != "Trekking" {
		t.Fatalf("activities did not survive the round trip: %v", loaded.Activities)
	}
	if !loaded.Featured {
		t.Fatal("featured flag lost")
	}
	if loaded.ImageURL == nil || *loaded.ImageURL != "/media/journeys/langtang.jpg" {
		t.Fatalf("image url mismatch: %v", loaded.ImageURL)
	}
}

func TestJourneyRepository_FindByIDMissing(t *testing.T) {
	repo := NewJourneyRepository(testDB(t), testLogger(t))

	journey, err := repo.FindByID("no-such-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if journey != nil {
		t.Fatalf("expected nil for missing row, got %+v", journey)
	}
}

func TestJourneyRepository_FeaturedAndCategoryFilters(t *testing.T) {
	db := testDB(t)
	logger := testLogger(t)
	repo := NewJourneyRepository(db, logger)

	seed := []*catalog.Journey{
		{ID: "j1", Title: "A", Description: "d", Category: "Trekking", Featured: true},
		{ID: "j2", Title: "B", Description: "d", Category: "Trekking", Featured: false},
		{ID: "j3", Title: "C", Description: "d", Category: "Wildlife", Featured: true},
	}
	for _, journey := range seed {
		if err := repo.Store(journey); err != nil {
			t.Fatalf("store failed: %v", err)
		}
	}

	featured, err := repo.FindAll(repositories.ListFilter{FeaturedOnly: true})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(featured) != 2 {
		t.Fatalf("expected 2 featured journeys, got %d", len(featured))
	}

	trekking, err := repo.FindAll(repositories.ListFilter{Category: "Trekking"})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(trekking) != 2 {
		t.Fatalf("expected 2 trekking journeys, got %d", len(trekking))
	}

	both, err := repo.FindAll(repositories.ListFilter{Category: "Trekking", FeaturedOnly: true})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(both) != 1 || both[0].ID != "j1" {
		t.Fatalf("expected only j1, got %+v", both)
	}
}

func TestJourneyRepository_OrderAndLimit(t *testing.T) {
	repo := NewJourneyRepository(testDB(t), testLogger(t))

	for _, journey := range []*catalog.Journey{
		{ID: "j1", Title: "Charlie", Description: "d"},
		{ID: "j2", Title: "Alpha", Description: "d"},
		{ID: "j3", Title: "Bravo", Description: "d"},
	} {
		if err := repo.Store(journey); err != nil {
			t.Fatalf("store failed: %v", err)
		}
	}

	journeys, err := repo.FindAll(repositories.ListFilter{OrderBy: "title", Ascending: true, Limit: 2})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(journeys) != 2 {
		t.Fatalf("expected 2 journeys, got %d", len(journeys))
	}
	if journeys[0].Title != "Alpha" || journeys[1].Title != "Bravo" {
		t.Fatalf("unexpected ordering: %s, %s", journeys[0].Title, journeys[1].Title)
	}
}

func TestJourneyRepository_DeleteCascadesDays(t *testing.T) {
	db := testDB(t)
	logger := testLogger(t)
	journeyRepo := NewJourneyRepository(db, logger)
	dayRepo := NewJourneyDayRepository(db, logger)

	journey := &catalog.Journey{ID: "j1", Title: "Trek", Description: "d"}
	if err := journeyRepo.Store(journey); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	day := &catalog.JourneyDay{ID: "d1", JourneyID: "j1", DayNumber: 1, Title: strPtr("Arrival")}
	if err := dayRepo.Store(day); err != nil {
		t.Fatalf("store day failed: %v", err)
	}

	if err := journeyRepo.Delete("j1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	days, err := dayRepo.FindByJourneyID("j1")
	if err != nil {
		t.Fatalf("find days failed: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("expected itinerary days to be removed, got %d", len(days))
	}
}
