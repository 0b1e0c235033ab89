package services

import (
	"fmt"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/messaging"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/security"
)

// ExperienceService orchestrates experience catalog operations.
type ExperienceService struct {
	experienceRepo repositories.ExperienceRepository
	bus            messaging.ChangePublisher
}

func NewExperienceService(experienceRepo repositories.ExperienceRepository, bus messaging.ChangePublisher) *ExperienceService {
	return &ExperienceService{experienceRepo: experienceRepo, bus: bus}
}

func (s *ExperienceService) GetAll(filter repositories.ListFilter) ([]*catalog.Experience, error) {
	experiences, err := s.experienceRepo.FindAll(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get experiences: %w", err)
	}
	return experiences, nil
}

func (s *ExperienceService) GetByID(id string) (*catalog.Experience, error) {
	if id == "" {
		return nil, fmt.Errorf("experience ID cannot be empty")
	}
	experience, err := s.experienceRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get experience %s: %w", id, err)
	}
	return experience, nil
}

func (s *ExperienceService) Create(experience *catalog.Experience) error {
	if experience == nil {
		return fmt.Errorf("experience cannot be nil")
	}
	if experience.Title == "" {
		return fmt.Errorf("experience title cannot be empty")
	}
	if experience.Description == "" {
		return fmt.Errorf("experience description cannot be empty")
	}
	if experience.ID == "" {
		experience.ID = security.GenerateULID()
	}

	if err := s.experienceRepo.Store(experience); err != nil {
		return fmt.Errorf("failed to create experience %s: %w", experience.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "experiences", Op: messaging.OpInsert, RowID: experience.ID})
	return nil
}

func (s *ExperienceService) Update(experience *catalog.Experience) error {
	if experience == nil {
		return fmt.Errorf("experience cannot be nil")
	}
	if experience.ID == "" {
		return fmt.Errorf("experience ID cannot be empty")
	}
	if experience.Title == "" {
		return fmt.Errorf("experience title cannot be empty")
	}

	if err := s.experienceRepo.Update(experience); err != nil {
		return fmt.Errorf("failed to update experience %s: %w", experience.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "experiences", Op: messaging.OpUpdate, RowID: experience.ID})
	return nil
}

func (s *ExperienceService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("experience ID cannot be empty")
	}

	if err := s.experienceRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete experience %s: %w", id, err)
	}

	s.bus.Publish(messaging.Change{Table: "experiences", Op: messaging.OpDelete, RowID: id})
	return nil
}
