// Package repositories defines the repository interfaces for catalog entities.
// These repositories abstract the data persistence details, ensuring the core
// application is clean and decoupled from the database.
package repositories

import (
	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
)

// ListFilter narrows and orders a list fetch. Zero value means "everything,
// newest first".
type ListFilter struct {
	Category     string
	Status       string
	FeaturedOnly bool
	OrderBy      string // column name; defaults to created_at
	Ascending    bool
	Limit        int
}

type JourneyRepository interface {
	FindByID(id string) (*catalog.Journey, error)
	FindAll(filter ListFilter) ([]*catalog.Journey, error)
	Store(journey *catalog.Journey) error
	Update(journey *catalog.Journey) error
	Delete(id string) error
}

type JourneyDayRepository interface {
	FindByJourneyID(journeyID string) ([]*catalog.JourneyDay, error)
	Store(day *catalog.JourneyDay) error
	Update(day *catalog.JourneyDay) error
	Delete(id string) error
}

type DestinationRepository interface {
	FindByID(id string) (*catalog.Destination, error)
	FindBySlug(slug string) (*catalog.Destination, error)
	FindAll(filter ListFilter) ([]*catalog.Destination, error)
	Store(destination *catalog.Destination) error
	Update(destination *catalog.Destination) error
	Delete(id string) error
}

type ExperienceRepository interface {
	FindByID(id string) (*catalog.Experience, error)
	FindAll(filter ListFilter) ([]*catalog.Experience, error)
	Store(experience *catalog.Experience) error
	Update(experience *catalog.Experience) error
	Delete(id string) error
}

type MealItemRepository interface {
	FindByID(id string) (*catalog.MealItem, error)
	FindAll(filter ListFilter) ([]*catalog.MealItem, error)
	FindByMealTime(mealTime string) ([]*catalog.MealItem, error)
	Store(item *catalog.MealItem) error
	Update(item *catalog.MealItem) error
	Delete(id string) error
}

type DiningScheduleRepository interface {
	FindAll() ([]*catalog.DiningSchedule, error)
	Update(entry *catalog.DiningSchedule) error
}

type ResortActivityRepository interface {
	FindByID(id string) (*catalog.ResortActivity, error)
	FindAll(filter ListFilter) ([]*catalog.ResortActivity, error)
	Store(activity *catalog.ResortActivity) error
	Update(activity *catalog.ResortActivity) error
	Delete(id string) error
}

type ResortPackageRepository interface {
	FindByID(id string) (*catalog.ResortPackage, error)
	FindAll(filter ListFilter) ([]*catalog.ResortPackage, error)
	Store(pkg *catalog.ResortPackage) error
	Update(pkg *catalog.ResortPackage) error
	Delete(id string) error
}

type PostRepository interface {
	FindByID(id string) (*catalog.Post, error)
	FindAll(filter ListFilter) ([]*catalog.Post, error)
	Store(post *catalog.Post) error
	Update(post *catalog.Post) error
	Delete(id string) error
	IncrementViews(id string) error
}

type GalleryRepository interface {
	FindByID(id string) (*catalog.GalleryImage, error)
	FindAll() ([]*catalog.GalleryImage, error)
	Store(image *catalog.GalleryImage) error
	Update(image *catalog.GalleryImage) error
	Delete(id string) error
}

type EnquiryRepository interface {
	FindByID(id string) (*catalog.Enquiry, error)
	FindAll(filter ListFilter) ([]*catalog.Enquiry, error)
	Store(enquiry *catalog.Enquiry) error
	Update(enquiry *catalog.Enquiry) error
	Delete(id string) error
}

type CategoryRepository interface {
	FindAll() ([]*catalog.Category, error)
	Store(category *catalog.Category) error
	Delete(id string) error
}
