package services

import (
	"fmt"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/media"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/messaging"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/security"
)

// GalleryService manages resort gallery images and their stored files.
type GalleryService struct {
	galleryRepo repositories.GalleryRepository
	processor   *media.ImageProcessor
	bus         messaging.ChangePublisher
	logger      *logging.ChanneledLogger
}

func NewGalleryService(galleryRepo repositories.GalleryRepository, processor *media.ImageProcessor, bus messaging.ChangePublisher, logger *logging.ChanneledLogger) *GalleryService {
	return &GalleryService{galleryRepo: galleryRepo, processor: processor, bus: bus, logger: logger}
}

func (s *GalleryService) GetAll() ([]*catalog.GalleryImage, error) {
	images, err := s.galleryRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get gallery images: %w", err)
	}
	return images, nil
}

func (s *GalleryService) GetByID(id string) (*catalog.GalleryImage, error) {
	if id == "" {
		return nil, fmt.Errorf("gallery image ID cannot be empty")
	}
	image, err := s.galleryRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get gallery image %s: %w", id, err)
	}
	return image, nil
}

// Create accepts a base64 data URI, writes the original plus WebP variants,
// and records the image row. imageData may be empty when the caller supplies
// an already-hosted URL in image.ImageURL. The variant URLs are returned for
// the upload response.
func (s *GalleryService) Create(image *catalog.GalleryImage, imageData string) ([]string, error) {
	if image == nil {
		return nil, fmt.Errorf("gallery image cannot be nil")
	}
	if imageData == "" && image.ImageURL == "" {
		return nil, fmt.Errorf("gallery image data cannot be empty")
	}
	if image.ID == "" {
		image.ID = security.GenerateULID()
	}

	var variants []string
	if imageData != "" {
		originalPath, variantPaths, err := s.processor.ProcessGalleryImage(imageData, image.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to process gallery image %s: %w", image.ID, err)
		}
		image.ImageURL = originalPath
		variants = variantPaths
	}

	if err := s.galleryRepo.Store(image); err != nil {
		if len(variants) > 0 {
			if cleanupErr := s.processor.DeleteGalleryImage(image.ImageURL); cleanupErr != nil {
				s.logger.System().Warn("Failed to clean up orphaned gallery files", "imageId", image.ID, "error", cleanupErr.Error())
			}
		}
		return nil, fmt.Errorf("failed to create gallery image %s: %w", image.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "resort_gallery", Op: messaging.OpInsert, RowID: image.ID})
	return variants, nil
}

func (s *GalleryService) Update(image *catalog.GalleryImage) error {
	if image == nil {
		return fmt.Errorf("gallery image cannot be nil")
	}
	if image.ID == "" {
		return fmt.Errorf("gallery image ID cannot be empty")
	}

	if err := s.galleryRepo.Update(image); err != nil {
		return fmt.Errorf("failed to update gallery image %s: %w", image.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "resort_gallery", Op: messaging.OpUpdate, RowID: image.ID})
	return nil
}

func (s *GalleryService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("gallery image ID cannot be empty")
	}

	image, err := s.galleryRepo.FindByID(id)
	if err != nil {
		return fmt.Errorf("failed to load gallery image %s: %w", id, err)
	}
	if image == nil {
		return nil
	}

	if err := s.galleryRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete gallery image %s: %w", id, err)
	}

	// Row is gone; leftover files are logged, not fatal.
	if image.ImageURL != "" {
		if err := s.processor.DeleteGalleryImage(image.ImageURL); err != nil {
			s.logger.System().Warn("Failed to delete gallery files", "imageId", id, "error", err.Error())
		}
	}

	s.bus.Publish(messaging.Change{Table: "resort_gallery", Op: messaging.OpDelete, RowID: id})
	return nil
}
