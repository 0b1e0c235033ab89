package handlers

import (
	"net/http"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/application/services"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// ResortHandlers contains resort activity and resort package HTTP handlers
type ResortHandlers struct {
	resortService *services.ResortService
	logger        *logging.ChanneledLogger
}

// NewResortHandlers creates resort handlers with injected dependencies
func NewResortHandlers(resortService *services.ResortService, logger *logging.ChanneledLogger) *ResortHandlers {
	return &ResortHandlers{resortService: resortService, logger: logger}
}

// GetResortActivities returns resort activities
func (h *ResortHandlers) GetResortActivities(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get resort activities request", "method", c.Request.Method, "path", c.Request.URL.Path)

	activities, err := h.resortService.GetAllActivities(listFilterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Get resort activities request completed", "count", len(activities), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"activities": activities,
		"count":      len(activities),
	})
}

// GetResortActivityByID returns a specific resort activity by ID
func (h *ResortHandlers) GetResortActivityByID(c *gin.Context) {
	activityID := c.Param("id")

	activity, err := h.resortService.GetActivityByID(activityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if activity == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "resort activity not found"})
		return
	}

	c.JSON(http.StatusOK, activity)
}

// CreateResortActivity creates a new resort activity
func (h *ResortHandlers) CreateResortActivity(c *gin.Context) {
	var activity catalog.ResortActivity
	if err := c.ShouldBindJSON(&activity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.resortService.CreateActivity(&activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "resort activity created successfully",
		"activityId": activity.ID,
	})
}

// UpdateResortActivity updates an existing resort activity
func (h *ResortHandlers) UpdateResortActivity(c *gin.Context) {
	activityID := c.Param("id")

	var activity catalog.ResortActivity
	if err := c.ShouldBindJSON(&activity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	activity.ID = activityID

	if err := h.resortService.UpdateActivity(&activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "resort activity updated successfully",
		"activityId": activityID,
	})
}

// DeleteResortActivity deletes a resort activity
func (h *ResortHandlers) DeleteResortActivity(c *gin.Context) {
	activityID := c.Param("id")

	if err := h.resortService.DeleteActivity(activityID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "resort activity deleted successfully",
		"activityId": activityID,
	})
}

// GetResortPackages returns resort packages
func (h *ResortHandlers) GetResortPackages(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get resort packages request", "method", c.Request.Method, "path", c.Request.URL.Path)

	packages, err := h.resortService.GetAllPackages(listFilterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Get resort packages request completed", "count", len(packages), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"packages": packages,
		"count":    len(packages),
	})
}

// GetResortPackageByID returns a specific resort package by ID
func (h *ResortHandlers) GetResortPackageByID(c *gin.Context) {
	packageID := c.Param("id")

	pkg, err := h.resortService.GetPackageByID(packageID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if pkg == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "resort package not found"})
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// CreateResortPackage creates a new resort package
func (h *ResortHandlers) CreateResortPackage(c *gin.Context) {
	var pkg catalog.ResortPackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.resortService.CreatePackage(&pkg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "resort package created successfully",
		"packageId": pkg.ID,
	})
}

// UpdateResortPackage updates an existing resort package
func (h *ResortHandlers) UpdateResortPackage(c *gin.Context) {
	packageID := c.Param("id")

	var pkg catalog.ResortPackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	pkg.ID = packageID

	if err := h.resortService.UpdatePackage(&pkg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "resort package updated successfully",
		"packageId": packageID,
	})
}

// DeleteResortPackage deletes a resort package
func (h *ResortHandlers) DeleteResortPackage(c *gin.Context) {
	packageID := c.Param("id")

	if err := h.resortService.DeletePackage(packageID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "resort package deleted successfully",
		"packageId": packageID,
	})
}
