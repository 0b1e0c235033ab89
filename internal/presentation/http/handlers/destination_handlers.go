package handlers

import (
	"net/http"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/application/services"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// DestinationHandlers contains all destination-related HTTP handlers
type DestinationHandlers struct {
	destinationService *services.DestinationService
	logger             *logging.ChanneledLogger
}

// NewDestinationHandlers creates destination handlers with injected dependencies
func NewDestinationHandlers(destinationService *services.DestinationService, logger *logging.ChanneledLogger) *DestinationHandlers {
	return &DestinationHandlers{destinationService: destinationService, logger: logger}
}

// GetDestinations returns destinations matching the list query parameters
func (h *DestinationHandlers) GetDestinations(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get destinations request", "method", c.Request.Method, "path", c.Request.URL.Path)

	destinations, err := h.destinationService.GetAll(listFilterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Get destinations request completed", "count", len(destinations), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"destinations": destinations,
		"count":        len(destinations),
	})
}

// GetDestinationByID returns a specific destination by ID
func (h *DestinationHandlers) GetDestinationByID(c *gin.Context) {
	destinationID := c.Param("id")

	destination, err := h.destinationService.GetByID(destinationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if destination == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "destination not found"})
		return
	}

	c.JSON(http.StatusOK, destination)
}

// GetDestinationBySlug returns a specific destination by slug
func (h *DestinationHandlers) GetDestinationBySlug(c *gin.Context) {
	slug := c.Param("slug")

	destination, err := h.destinationService.GetBySlug(slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if destination == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "destination not found"})
		return
	}

	c.JSON(http.StatusOK, destination)
}

// CreateDestination creates a new destination
func (h *DestinationHandlers) CreateDestination(c *gin.Context) {
	start := time.Now()

	var destination catalog.Destination
	if err := c.ShouldBindJSON(&destination); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.destinationService.Create(&destination); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Create destination request completed", "destinationId", destination.ID, "slug", destination.Slug, "duration", time.Since(start))
	c.JSON(http.StatusCreated, gin.H{
		"message":       "destination created successfully",
		"destinationId": destination.ID,
		"slug":          destination.Slug,
	})
}

// UpdateDestination updates an existing destination
func (h *DestinationHandlers) UpdateDestination(c *gin.Context) {
	start := time.Now()
	destinationID := c.Param("id")

	var destination catalog.Destination
	if err := c.ShouldBindJSON(&destination); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	destination.ID = destinationID

	if err := h.destinationService.Update(&destination); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Update destination request completed", "destinationId", destinationID, "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"message":       "destination updated successfully",
		"destinationId": destinationID,
	})
}

// DeleteDestination deletes a destination
func (h *DestinationHandlers) DeleteDestination(c *gin.Context) {
	destinationID := c.Param("id")

	if err := h.destinationService.Delete(destinationID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "destination deleted successfully",
		"destinationId": destinationID,
	})
}
