package handlers

import (
	"net/http"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/application/services"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// JourneyHandlers contains all journey-related HTTP handlers
type JourneyHandlers struct {
	journeyService *services.JourneyService
	logger         *logging.ChanneledLogger
}

// NewJourneyHandlers creates journey handlers with injected dependencies
func NewJourneyHandlers(journeyService *services.JourneyService, logger *logging.ChanneledLogger) *JourneyHandlers {
	return &JourneyHandlers{journeyService: journeyService, logger: logger}
}

// GetJourneys returns journeys matching the list query parameters
func (h *JourneyHandlers) GetJourneys(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get journeys request", "method", c.Request.Method, "path", c.Request.URL.Path)

	journeys, err := h.journeyService.GetAll(listFilterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Get journeys request completed", "count", len(journeys), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"journeys": journeys,
		"count":    len(journeys),
	})
}

// GetJourneyByID returns a specific journey with its itinerary days
func (h *JourneyHandlers) GetJourneyByID(c *gin.Context) {
	start := time.Now()
	journeyID := c.Param("id")
	h.logger.Content().Debug("Received get journey by ID request", "journeyId", journeyID)

	journey, err := h.journeyService.GetByID(journeyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if journey == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "journey not found"})
		return
	}

	days, err := h.journeyService.GetDays(journeyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Get journey by ID request completed", "journeyId", journeyID, "days", len(days), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"journey": journey,
		"days":    days,
	})
}

// CreateJourney creates a new journey
func (h *JourneyHandlers) CreateJourney(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received create journey request", "method", c.Request.Method, "path", c.Request.URL.Path)

	var journey catalog.Journey
	if err := c.ShouldBindJSON(&journey); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.journeyService.Create(&journey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Create journey request completed", "journeyId", journey.ID, "title", journey.Title, "duration", time.Since(start))
	c.JSON(http.StatusCreated, gin.H{
		"message":   "journey created successfully",
		"journeyId": journey.ID,
	})
}

// UpdateJourney updates an existing journey
func (h *JourneyHandlers) UpdateJourney(c *gin.Context) {
	start := time.Now()
	journeyID := c.Param("id")
	h.logger.Content().Debug("Received update journey request", "journeyId", journeyID)

	var journey catalog.Journey
	if err := c.ShouldBindJSON(&journey); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	journey.ID = journeyID

	if err := h.journeyService.Update(&journey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Update journey request completed", "journeyId", journeyID, "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"message":   "journey updated successfully",
		"journeyId": journeyID,
	})
}

// DeleteJourney deletes a journey and its itinerary days
func (h *JourneyHandlers) DeleteJourney(c *gin.Context) {
	start := time.Now()
	journeyID := c.Param("id")
	h.logger.Content().Debug("Received delete journey request", "journeyId", journeyID)

	if err := h.journeyService.Delete(journeyID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Delete journey request completed", "journeyId", journeyID, "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"message":   "journey deleted successfully",
		"journeyId": journeyID,
	})
}

// GetJourneyDays returns the itinerary days for a journey
func (h *JourneyHandlers) GetJourneyDays(c *gin.Context) {
	journeyID := c.Param("id")

	days, err := h.journeyService.GetDays(journeyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":  days,
		"count": len(days),
	})
}

// CreateJourneyDay adds an itinerary day to a journey
func (h *JourneyHandlers) CreateJourneyDay(c *gin.Context) {
	journeyID := c.Param("id")

	var day catalog.JourneyDay
	if err := c.ShouldBindJSON(&day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	day.JourneyID = journeyID

	if err := h.journeyService.CreateDay(&day); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "journey day created successfully",
		"dayId":   day.ID,
	})
}

// UpdateJourneyDay updates an itinerary day
func (h *JourneyHandlers) UpdateJourneyDay(c *gin.Context) {
	var day catalog.JourneyDay
	if err := c.ShouldBindJSON(&day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	day.ID = c.Param("dayId")
	day.JourneyID = c.Param("id")

	if err := h.journeyService.UpdateDay(&day); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "journey day updated successfully",
		"dayId":   day.ID,
	})
}

// DeleteJourneyDay removes an itinerary day
func (h *JourneyHandlers) DeleteJourneyDay(c *gin.Context) {
	dayID := c.Param("dayId")

	if err := h.journeyService.DeleteDay(dayID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "journey day deleted successfully",
		"dayId":   dayID,
	})
}
