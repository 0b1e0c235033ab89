package services

import (
	"testing"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/messaging"
)

type memJourneyRepo struct {
	rows map[string]*catalog.Journey
}

func newMemJourneyRepo() *memJourneyRepo {
	return &memJourneyRepo{rows: make(map[string]*catalog.Journey)}
}

func (r *memJourneyRepo) FindByID(id string) (*catalog.Journey, error) {
	return r.rows[id], nil
}

func (r *memJourneyRepo) FindAll(filter repositories.ListFilter) ([]*catalog.Journey, error) {
	journeys := []*catalog.Journey{}
	for _, journey := range r.rows {
		journeys = append(journeys, journey)
	}
	return journeys, nil
}

func (r *memJourneyRepo) Store(journey *catalog.Journey) error {
	r.rows[journey.ID] = journey
	return nil
}

func (r *memJourneyRepo) Update(journey *catalog.Journey) error {
	r.rows[journey.ID] = journey
	return nil
}

func (r *memJourneyRepo) Delete(id string) error {
	delete(r.rows, id)
	return nil
}

type memJourneyDayRepo struct {
	rows map[string]*catalog.JourneyDay
}

func newMemJourneyDayRepo() *memJourneyDayRepo {
	return &memJourneyDayRepo{rows: make(map[string]*catalog.JourneyDay)}
}

func (r *memJourneyDayRepo) FindByJourneyID(journeyID string) ([]*catalog.JourneyDay, error) {
	days := []*catalog.JourneyDay{}
	for _, day := range r.rows {
		if day.JourneyID == journeyID {
			days = append(days, day)
		}
	}
	return days, nil
}

func (r *memJourneyDayRepo) Store(day *catalog.JourneyDay) error {
	r.rows[day.ID] = day
	return nil
}

func (r *memJourneyDayRepo) Update(day *catalog.JourneyDay) error {
	r.rows[day.ID] = day
	return nil
}

func (r *memJourneyDayRepo) Delete(id string) error {
	delete(r.rows, id)
	return nil
}

func TestJourneyCreate_AssignsIDAndPublishes(t *testing.T) {
	bus := &recordingBus{}
	svc := NewJourneyService(newMemJourneyRepo(), newMemJourneyDayRepo(), bus)

	journey := &catalog.Journey{
		Title:       "Langtang Valley",
		Description: "A quieter alternative to the big circuits.",
	}
	if err := svc.Create(journey); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if journey.ID == "" {
		t.Fatal("expected an assigned ID")
	}

	if len(bus.changes) != 1 {
		t.Fatalf("expected 1 change event, got %d", len(bus.changes))
	}
	change := bus.changes[0]
	if change.Table != "journeys" || change.Op != messaging.OpInsert || change.RowID != journey.ID {
		t.Fatalf("unexpected change event: %+v", change)
	}
}

func TestJourneyCreate_RequiresTitle(t *testing.T) {
	bus := &recordingBus{}
	svc := NewJourneyService(newMemJourneyRepo(), newMemJourneyDayRepo(), bus)

	err := svc.Create(&catalog.Journey{Description: "No title"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(bus.changes) != 0 {
		t.Fatal("validation failure must not publish a change")
	}
}

func TestJourneyDelete_Publishes(t *testing.T) {
	bus := &recordingBus{}
	repo := newMemJourneyRepo()
	svc := NewJourneyService(repo, newMemJourneyDayRepo(), bus)

	journey := &catalog.Journey{Title: "Langtang Valley", Description: "desc"}
	if err := svc.Create(journey); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(journey.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	last := bus.changes[len(bus.changes)-1]
	if last.Op != messaging.OpDelete || last.RowID != journey.ID {
		t.Fatalf("unexpected final change event: %+v", last)
	}
	if _, ok := repo.rows[journey.ID]; ok {
		t.Fatal("journey still present after delete")
	}
}

func TestJourneyCreateDay_RequiresPositiveDayNumber(t *testing.T) {
	bus := &recordingBus{}
	svc := NewJourneyService(newMemJourneyRepo(), newMemJourneyDayRepo(), bus)

	err := svc.CreateDay(&catalog.JourneyDay{JourneyID: "j1", DayNumber: 0})
	if err == nil {
		t.Fatal("expected validation error for day number")
	}
}
