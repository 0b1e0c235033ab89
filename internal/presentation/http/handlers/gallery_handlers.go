package handlers

import (
	"net/http"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/application/services"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// CreateGalleryImageRequest carries gallery metadata plus the image
// payload as a base64 data URI.
type CreateGalleryImageRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"displayOrder"`
	ImageData    string  `json:"imageData"`
	ImageURL     string  `json:"imageUrl"`
}

// GalleryHandlers contains all gallery HTTP handlers
type GalleryHandlers struct {
	galleryService *services.GalleryService
	logger         *logging.ChanneledLogger
}

// NewGalleryHandlers creates gallery handlers with injected dependencies
func NewGalleryHandlers(galleryService *services.GalleryService, logger *logging.ChanneledLogger) *GalleryHandlers {
	return &GalleryHandlers{galleryService: galleryService, logger: logger}
}

// GetGalleryImages returns gallery images ordered for display
func (h *GalleryHandlers) GetGalleryImages(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get gallery images request", "method", c.Request.Method, "path", c.Request.URL.Path)

	images, err := h.galleryService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Get gallery images request completed", "count", len(images), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"images": images,
		"count":  len(images),
	})
}

// GetGalleryImageByID returns a specific gallery image by ID
func (h *GalleryHandlers) GetGalleryImageByID(c *gin.Context) {
	imageID := c.Param("id")

	image, err := h.galleryService.GetByID(imageID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if image == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "gallery image not found"})
		return
	}

	c.JSON(http.StatusOK, image)
}

// CreateGalleryImage uploads a new gallery image and generates webp variants
func (h *GalleryHandlers) CreateGalleryImage(c *gin.Context) {
	start := time.Now()

	var req CreateGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	image := &catalog.GalleryImage{
		Title:        req.Title,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		ImageURL:     req.ImageURL,
	}

	variants, err := h.galleryService.Create(image, req.ImageData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Create gallery image request completed", "imageId", image.ID, "variants", len(variants), "duration", time.Since(start))
	c.JSON(http.StatusCreated, gin.H{
		"message":  "gallery image created successfully",
		"imageId":  image.ID,
		"imageUrl": image.ImageURL,
		"variants": variants,
	})
}

// UpdateGalleryImage updates gallery image metadata
func (h *GalleryHandlers) UpdateGalleryImage(c *gin.Context) {
	imageID := c.Param("id")

	var image catalog.GalleryImage
	if err := c.ShouldBindJSON(&image); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	image.ID = imageID

	if err := h.galleryService.Update(&image); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "gallery image updated successfully",
		"imageId": imageID,
	})
}

// DeleteGalleryImage deletes a gallery image row and its files
func (h *GalleryHandlers) DeleteGalleryImage(c *gin.Context) {
	imageID := c.Param("id")

	if err := h.galleryService.Delete(imageID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "gallery image deleted successfully",
		"imageId": imageID,
	})
}
