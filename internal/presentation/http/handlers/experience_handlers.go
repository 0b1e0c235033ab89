package handlers

import (
	"net/http"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/application/services"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// ExperienceHandlers contains all experience-related HTTP handlers
type ExperienceHandlers struct {
	experienceService *services.ExperienceService
	logger            *logging.ChanneledLogger
}

// NewExperienceHandlers creates experience handlers with injected dependencies
func NewExperienceHandlers(experienceService *services.ExperienceService, logger *logging.ChanneledLogger) *ExperienceHandlers {
	return &ExperienceHandlers{experienceService: experienceService, logger: logger}
}

// GetExperiences returns experiences matching the list query parameters
func (h *ExperienceHandlers) GetExperiences(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get experiences request", "method", c.Request.Method, "path", c.Request.URL.Path)

	experiences, err := h.experienceService.GetAll(listFilterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Get experiences request completed", "count", len(experiences), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"experiences": experiences,
		"count":       len(experiences),
	})
}

// GetExperienceByID returns a specific experience by ID
func (h *ExperienceHandlers) GetExperienceByID(c *gin.Context) {
	experienceID := c.Param("id")

	experience, err := h.experienceService.GetByID(experienceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if experience == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "experience not found"})
		return
	}

	c.JSON(http.StatusOK, experience)
}

// CreateExperience creates a new experience
func (h *ExperienceHandlers) CreateExperience(c *gin.Context) {
	var experience catalog.Experience
	if err := c.ShouldBindJSON(&experience); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.experienceService.Create(&experience); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "experience created successfully",
		"experienceId": experience.ID,
	})
}

// UpdateExperience updates an existing experience
func (h *ExperienceHandlers) UpdateExperience(c *gin.Context) {
	experienceID := c.Param("id")

	var experience catalog.Experience
	if err := c.ShouldBindJSON(&experience); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	experience.ID = experienceID

	if err := h.experienceService.Update(&experience); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "experience updated successfully",
		"experienceId": experienceID,
	})
}

// DeleteExperience deletes an experience
func (h *ExperienceHandlers) DeleteExperience(c *gin.Context) {
	experienceID := c.Param("id")

	if err := h.experienceService.Delete(experienceID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "experience deleted successfully",
		"experienceId": experienceID,
	})
}
