package handlers

import (
	"net/http"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/application/services"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// MealHandlers contains menu item and dining schedule HTTP handlers
type MealHandlers struct {
	mealService *services.MealService
	logger      *logging.ChanneledLogger
}

// NewMealHandlers creates meal handlers with injected dependencies
func NewMealHandlers(mealService *services.MealService, logger *logging.ChanneledLogger) *MealHandlers {
	return &MealHandlers{mealService: mealService, logger: logger}
}

// GetMealItems returns meal items, optionally scoped to one meal time
// via ?mealTime=breakfast|lunch|dinner.
func (h *MealHandlers) GetMealItems(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get meal items request", "method", c.Request.Method, "path", c.Request.URL.Path)

	var items []*catalog.MealItem
	var err error
	if mealTime := c.Query("mealTime"); mealTime != "" {
		items, err = h.mealService.GetItemsByMealTime(mealTime)
	} else {
		items, err = h.mealService.GetAllItems(listFilterFromQuery(c))
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Get meal items request completed", "count", len(items), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// GetMealItemByID returns a specific meal item by ID
func (h *MealHandlers) GetMealItemByID(c *gin.Context) {
	itemID := c.Param("id")

	item, err := h.mealService.GetItemByID(itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal item not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreateMealItem creates a new meal item
func (h *MealHandlers) CreateMealItem(c *gin.Context) {
	var item catalog.MealItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.mealService.CreateItem(&item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "meal item created successfully",
		"itemId":  item.ID,
	})
}

// UpdateMealItem updates an existing meal item
func (h *MealHandlers) UpdateMealItem(c *gin.Context) {
	itemID := c.Param("id")

	var item catalog.MealItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	item.ID = itemID

	if err := h.mealService.UpdateItem(&item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "meal item updated successfully",
		"itemId":  itemID,
	})
}

// DeleteMealItem deletes a meal item
func (h *MealHandlers) DeleteMealItem(c *gin.Context) {
	itemID := c.Param("id")

	if err := h.mealService.DeleteItem(itemID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "meal item deleted successfully",
		"itemId":  itemID,
	})
}

// GetDiningSchedule returns the fixed dining schedule
func (h *MealHandlers) GetDiningSchedule(c *gin.Context) {
	schedule, err := h.mealService.GetSchedule()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schedule": schedule,
		"count":    len(schedule),
	})
}

// UpdateDiningSchedule updates one dining schedule entry's time window
func (h *MealHandlers) UpdateDiningSchedule(c *gin.Context) {
	var entry catalog.DiningSchedule
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	entry.ID = c.Param("id")

	if err := h.mealService.UpdateScheduleEntry(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "dining schedule updated successfully",
		"id":      entry.ID,
	})
}
