// Package services provides application-level services that orchestrate
// business logic and coordinate between repositories and domain entities.
package services

import (
	"fmt"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/messaging"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/security"
)

// JourneyService orchestrates journey and itinerary-day operations.
type JourneyService struct {
	journeyRepo repositories.JourneyRepository
	dayRepo     repositories.JourneyDayRepository
	bus         messaging.ChangePublisher
}

func NewJourneyService(journeyRepo repositories.JourneyRepository, dayRepo repositories.JourneyDayRepository, bus messaging.ChangePublisher) *JourneyService {
	return &JourneyService{
		journeyRepo: journeyRepo,
		dayRepo:     dayRepo,
		bus:         bus,
	}
}

func (s *JourneyService) GetAll(filter repositories.ListFilter) ([]*catalog.Journey, error) {
	journeys, err := s.journeyRepo.FindAll(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get journeys: %w", err)
	}
	return journeys, nil
}

func (s *JourneyService) GetByID(id string) (*catalog.Journey, error) {
	if id == "" {
		return nil, fmt.Errorf("journey ID cannot be empty")
	}
	journey, err := s.journeyRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get journey %s: %w", id, err)
	}
	return journey, nil
}

func (s *JourneyService) GetDays(journeyID string) ([]*catalog.JourneyDay, error) {
	if journeyID == "" {
		return nil, fmt.Errorf("journey ID cannot be empty")
	}
	days, err := s.dayRepo.FindByJourneyID(journeyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get journey days: %w", err)
	}
	return days, nil
}

func (s *JourneyService) Create(journey *catalog.Journey) error {
	if journey == nil {
		return fmt.Errorf("journey cannot be nil")
	}
	if journey.Title == "" {
		return fmt.Errorf("journey title cannot be empty")
	}
	if journey.Description == "" {
		return fmt.Errorf("journey description cannot be empty")
	}
	if journey.ID == "" {
		journey.ID = security.GenerateULID()
	}

	if err := s.journeyRepo.Store(journey); err != nil {
		return fmt.Errorf("failed to create journey %s: %w", journey.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "journeys", Op: messaging.OpInsert, RowID: journey.ID})
	return nil
}

func (s *JourneyService) Update(journey *catalog.Journey) error {
	if journey == nil {
		return fmt.Errorf("journey cannot be nil")
	}
	if journey.ID == "" {
		return fmt.Errorf("journey ID cannot be empty")
	}
	if journey.Title == "" {
		return fmt.Errorf("journey title cannot be empty")
	}

	if err := s.journeyRepo.Update(journey); err != nil {
		return fmt.Errorf("failed to update journey %s: %w", journey.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "journeys", Op: messaging.OpUpdate, RowID: journey.ID})
	return nil
}

func (s *JourneyService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("journey ID cannot be empty")
	}

	if err := s.journeyRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete journey %s: %w", id, err)
	}

	s.bus.Publish(messaging.Change{Table: "journeys", Op: messaging.OpDelete, RowID: id})
	return nil
}

func (s *JourneyService) CreateDay(day *catalog.JourneyDay) error {
	if day == nil {
		return fmt.Errorf("journey day cannot be nil")
	}
	if day.JourneyID == "" {
		return fmt.Errorf("journey day must reference a journey")
	}
	if day.DayNumber <= 0 {
		return fmt.Errorf("journey day number must be positive")
	}
	if day.ID == "" {
		day.ID = security.GenerateULID()
	}

	if err := s.dayRepo.Store(day); err != nil {
		return fmt.Errorf("failed to create journey day %s: %w", day.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "journey_days", Op: messaging.OpInsert, RowID: day.ID})
	return nil
}

func (s *JourneyService) UpdateDay(day *catalog.JourneyDay) error {
	if day == nil {
		return fmt.Errorf("journey day cannot be nil")
	}
	if day.ID == "" {
		return fmt.Errorf("journey day ID cannot be empty")
	}
	if day.DayNumber <= 0 {
		return fmt.Errorf("journey day number must be positive")
	}

	if err := s.dayRepo.Update(day); err != nil {
		return fmt.Errorf("failed to update journey day %s: %w", day.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "journey_days", Op: messaging.OpUpdate, RowID: day.ID})
	return nil
}

func (s *JourneyService) DeleteDay(id string) error {
	if id == "" {
		return fmt.Errorf("journey day ID cannot be empty")
	}

	if err := s.dayRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete journey day %s: %w", id, err)
	}

	s.bus.Publish(messaging.Change{Table: "journey_days", Op: messaging.OpDelete, RowID: id})
	return nil
}
