package services

import (
	"fmt"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/messaging"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/security"
)

// CategoryService manages the journey category vocabulary.
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	bus          messaging.ChangePublisher
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, bus messaging.ChangePublisher) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, bus: bus}
}

func (s *CategoryService) GetAll() ([]*catalog.Category, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) Create(category *catalog.Category) error {
	if category == nil {
		return fmt.Errorf("category cannot be nil")
	}
	if category.Name == "" {
		return fmt.Errorf("category name cannot be empty")
	}
	if category.ID == "" {
		category.ID = security.GenerateULID()
	}

	if err := s.categoryRepo.Store(category); err != nil {
		return fmt.Errorf("failed to create category %s: %w", category.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "categories", Op: messaging.OpInsert, RowID: category.ID})
	return nil
}

func (s *CategoryService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("category ID cannot be empty")
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}

	s.bus.Publish(messaging.Change{Table: "categories", Op: messaging.OpDelete, RowID: id})
	return nil
}
