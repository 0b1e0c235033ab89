package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/messaging"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/security"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// DestinationService orchestrates destination catalog operations.
type DestinationService struct {
	destinationRepo repositories.DestinationRepository
	bus             messaging.ChangePublisher
}

func NewDestinationService(destinationRepo repositories.DestinationRepository, bus messaging.ChangePublisher) *DestinationService {
	return &DestinationService{destinationRepo: destinationRepo, bus: bus}
}

func (s *DestinationService) GetAll(filter repositories.ListFilter) ([]*catalog.Destination, error) {
	destinations, err := s.destinationRepo.FindAll(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get destinations: %w", err)
	}
	return destinations, nil
}

func (s *DestinationService) GetByID(id string) (*catalog.Destination, error) {
	if id == "" {
		return nil, fmt.Errorf("destination ID cannot be empty")
	}
	destination, err := s.destinationRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get destination %s: %w", id, err)
	}
	return destination, nil
}

func (s *DestinationService) GetBySlug(slug string) (*catalog.Destination, error) {
	if slug == "" {
		return nil, fmt.Errorf("destination slug cannot be empty")
	}
	destination, err := s.destinationRepo.FindBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get destination by slug %s: %w", slug, err)
	}
	return destination, nil
}

func (s *DestinationService) Create(destination *catalog.Destination) error {
	if destination == nil {
		return fmt.Errorf("destination cannot be nil")
	}
	if destination.Name == "" {
		return fmt.Errorf("destination name cannot be empty")
	}
	if destination.Description == "" {
		return fmt.Errorf("destination description cannot be empty")
	}
	if destination.ID == "" {
		destination.ID = security.GenerateULID()
	}
	if destination.Slug == nil || *destination.Slug == "" {
		slug := Slugify(destination.Name)
		destination.Slug = &slug
	}

	if err := s.destinationRepo.Store(destination); err != nil {
		return fmt.Errorf("failed to create destination %s: %w", destination.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "destinations", Op: messaging.OpInsert, RowID: destination.ID})
	return nil
}

func (s *DestinationService) Update(destination *catalog.Destination) error {
	if destination == nil {
		return fmt.Errorf("destination cannot be nil")
	}
	if destination.ID == "" {
		return fmt.Errorf("destination ID cannot be empty")
	}
	if destination.Name == "" {
		return fmt.Errorf("destination name cannot be empty")
	}

	if err := s.destinationRepo.Update(destination); err != nil {
		return fmt.Errorf("failed to update destination %s: %w", destination.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "destinations", Op: messaging.OpUpdate, RowID: destination.ID})
	return nil
}

func (s *DestinationService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("destination ID cannot be empty")
	}

	if err := s.destinationRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete destination %s: %w", id, err)
	}

	s.bus.Publish(messaging.Change{Table: "destinations", Op: messaging.OpDelete, RowID: id})
	return nil
}

// Slugify lowercases a name and collapses runs of non-alphanumerics to
// single hyphens.
func Slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
