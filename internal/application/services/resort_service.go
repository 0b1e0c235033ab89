package services

import (
	"fmt"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/messaging"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/security"
)

// ResortService orchestrates on-site resort activities and stay packages.
type ResortService struct {
	activityRepo repositories.ResortActivityRepository
	packageRepo  repositories.ResortPackageRepository
	bus          messaging.ChangePublisher
}

func NewResortService(activityRepo repositories.ResortActivityRepository, packageRepo repositories.ResortPackageRepository, bus messaging.ChangePublisher) *ResortService {
	return &ResortService{activityRepo: activityRepo, packageRepo: packageRepo, bus: bus}
}

func (s *ResortService) GetAllActivities(filter repositories.ListFilter) ([]*catalog.ResortActivity, error) {
	activities, err := s.activityRepo.FindAll(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get resort activities: %w", err)
	}
	return activities, nil
}

func (s *ResortService) GetActivityByID(id string) (*catalog.ResortActivity, error) {
	if id == "" {
		return nil, fmt.Errorf("resort activity ID cannot be empty")
	}
	activity, err := s.activityRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get resort activity %s: %w", id, err)
	}
	return activity, nil
}

func (s *ResortService) CreateActivity(activity *catalog.ResortActivity) error {
	if activity == nil {
		return fmt.Errorf("resort activity cannot be nil")
	}
	if activity.Title == "" {
		return fmt.Errorf("resort activity title cannot be empty")
	}
	if activity.Icon == "" {
		activity.Icon = "Mountain"
	}
	if activity.ID == "" {
		activity.ID = security.GenerateULID()
	}

	if err := s.activityRepo.Store(activity); err != nil {
		return fmt.Errorf("failed to create resort activity %s: %w", activity.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "resort_activities", Op: messaging.OpInsert, RowID: activity.ID})
	return nil
}

func (s *ResortService) UpdateActivity(activity *catalog.ResortActivity) error {
	if activity == nil {
		return fmt.Errorf("resort activity cannot be nil")
	}
	if activity.ID == "" {
		return fmt.Errorf("resort activity ID cannot be empty")
	}
	if activity.Title == "" {
		return fmt.Errorf("resort activity title cannot be empty")
	}

	if err := s.activityRepo.Update(activity); err != nil {
		return fmt.Errorf("failed to update resort activity %s: %w", activity.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "resort_activities", Op: messaging.OpUpdate, RowID: activity.ID})
	return nil
}

func (s *ResortService) DeleteActivity(id string) error {
	if id == "" {
		return fmt.Errorf("resort activity ID cannot be empty")
	}

	if err := s.activityRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete resort activity %s: %w", id, err)
	}

	s.bus.Publish(messaging.Change{Table: "resort_activities", Op: messaging.OpDelete, RowID: id})
	return nil
}

func (s *ResortService) GetAllPackages(filter repositories.ListFilter) ([]*catalog.ResortPackage, error) {
	packages, err := s.packageRepo.FindAll(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get resort packages: %w", err)
	}
	return packages, nil
}

func (s *ResortService) GetPackageByID(id string) (*catalog.ResortPackage, error) {
	if id == "" {
		return nil, fmt.Errorf("resort package ID cannot be empty")
	}
	pkg, err := s.packageRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get resort package %s: %w", id, err)
	}
	return pkg, nil
}

func (s *ResortService) CreatePackage(pkg *catalog.ResortPackage) error {
	if pkg == nil {
		return fmt.Errorf("resort package cannot be nil")
	}
	if pkg.Name == "" {
		return fmt.Errorf("resort package name cannot be empty")
	}
	if pkg.Price == "" {
		return fmt.Errorf("resort package price cannot be empty")
	}
	if pkg.ID == "" {
		pkg.ID = security.GenerateULID()
	}

	if err := s.packageRepo.Store(pkg); err != nil {
		return fmt.Errorf("failed to create resort package %s: %w", pkg.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "resort_packages", Op: messaging.OpInsert, RowID: pkg.ID})
	return nil
}

func (s *ResortService) UpdatePackage(pkg *catalog.ResortPackage) error {
	if pkg == nil {
		return fmt.Errorf("resort package cannot be nil")
	}
	if pkg.ID == "" {
		return fmt.Errorf("resort package ID cannot be empty")
	}
	if pkg.Name == "" {
		return fmt.Errorf("resort package name cannot be empty")
	}

	if err := s.packageRepo.Update(pkg); err != nil {
		return fmt.Errorf("failed to update resort package %s: %w", pkg.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "resort_packages", Op: messaging.OpUpdate, RowID: pkg.ID})
	return nil
}

func (s *ResortService) DeletePackage(id string) error {
	if id == "" {
		return fmt.Errorf("resort package ID cannot be empty")
	}

	if err := s.packageRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete resort package %s: %w", id, err)
	}

	s.bus.Publish(messaging.Change{Table: "resort_packages", Op: messaging.OpDelete, RowID: id})
	return nil
}
