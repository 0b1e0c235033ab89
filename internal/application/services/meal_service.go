package services

import (
	"fmt"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/messaging"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/security"
)

var validSpiceLevels = map[string]bool{
	"mild": true, "medium": true, "spicy": true, "very_spicy": true,
}

// MealService orchestrates menu items and the dining schedule.
type MealService struct {
	itemRepo     repositories.MealItemRepository
	scheduleRepo repositories.DiningScheduleRepository
	bus          messaging.ChangePublisher
}

func NewMealService(itemRepo repositories.MealItemRepository, scheduleRepo repositories.DiningScheduleRepository, bus messaging.ChangePublisher) *MealService {
	return &MealService{itemRepo: itemRepo, scheduleRepo: scheduleRepo, bus: bus}
}

func (s *MealService) GetAllItems(filter repositories.ListFilter) ([]*catalog.MealItem, error) {
	items, err := s.itemRepo.FindAll(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get meal items: %w", err)
	}
	return items, nil
}

func (s *MealService) GetItemByID(id string) (*catalog.MealItem, error) {
	if id == "" {
		return nil, fmt.Errorf("meal item ID cannot be empty")
	}
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get meal item %s: %w", id, err)
	}
	return item, nil
}

func (s *MealService) GetItemsByMealTime(mealTime string) ([]*catalog.MealItem, error) {
	items, err := s.itemRepo.FindByMealTime(mealTime)
	if err != nil {
		return nil, fmt.Errorf("failed to get meal items for %s: %w", mealTime, err)
	}
	return items, nil
}

func (s *MealService) CreateItem(item *catalog.MealItem) error {
	if item == nil {
		return fmt.Errorf("meal item cannot be nil")
	}
	if item.Name == "" {
		return fmt.Errorf("meal item name cannot be empty")
	}
	if item.SpiceLevel == "" {
		item.SpiceLevel = "medium"
	}
	if !validSpiceLevels[item.SpiceLevel] {
		return fmt.Errorf("invalid spice level: %s", item.SpiceLevel)
	}
	if item.ID == "" {
		item.ID = security.GenerateULID()
	}

	if err := s.itemRepo.Store(item); err != nil {
		return fmt.Errorf("failed to create meal item %s: %w", item.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "meal_items", Op: messaging.OpInsert, RowID: item.ID})
	return nil
}

func (s *MealService) UpdateItem(item *catalog.MealItem) error {
	if item == nil {
		return fmt.Errorf("meal item cannot be nil")
	}
	if item.ID == "" {
		return fmt.Errorf("meal item ID cannot be empty")
	}
	if item.Name == "" {
		return fmt.Errorf("meal item name cannot be empty")
	}
	if !validSpiceLevels[item.SpiceLevel] {
		return fmt.Errorf("invalid spice level: %s", item.SpiceLevel)
	}

	if err := s.itemRepo.Update(item); err != nil {
		return fmt.Errorf("failed to update meal item %s: %w", item.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "meal_items", Op: messaging.OpUpdate, RowID: item.ID})
	return nil
}

func (s *MealService) DeleteItem(id string) error {
	if id == "" {
		return fmt.Errorf("meal item ID cannot be empty")
	}

	if err := s.itemRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete meal item %s: %w", id, err)
	}

	s.bus.Publish(messaging.Change{Table: "meal_items", Op: messaging.OpDelete, RowID: id})
	return nil
}

func (s *MealService) GetSchedule() ([]*catalog.DiningSchedule, error) {
	entries, err := s.scheduleRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get dining schedule: %w", err)
	}
	return entries, nil
}

func (s *MealService) UpdateScheduleEntry(entry *catalog.DiningSchedule) error {
	if entry == nil {
		return fmt.Errorf("dining schedule entry cannot be nil")
	}
	if entry.ID == "" {
		return fmt.Errorf("dining schedule entry ID cannot be empty")
	}
	if entry.Time == "" {
		return fmt.Errorf("dining schedule time cannot be empty")
	}

	if err := s.scheduleRepo.Update(entry); err != nil {
		return fmt.Errorf("failed to update dining schedule %s: %w", entry.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "dining_schedule", Op: messaging.OpUpdate, RowID: entry.ID})
	return nil
}
