package handlers

import (
	"net/http"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/application/services"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// CreateEnquiryRequest is the public enquiry submission payload
type CreateEnquiryRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required"`
	Phone        *string `json:"phone"`
	Subject      string  `json:"subject" binding:"required"`
	Message      string  `json:"message" binding:"required"`
	TripInterest *string `json:"tripInterest"`
	TravelDates  *string `json:"travelDates"`
	JourneyID    *string `json:"journeyId"`
	JourneyTitle *string `json:"journeyTitle"`
}

// UpdateEnquiryStatusRequest transitions an enquiry through triage
type UpdateEnquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// EnquiryHandlers contains enquiry intake and triage HTTP handlers
type EnquiryHandlers struct {
	enquiryService *services.EnquiryService
	logger         *logging.ChanneledLogger
}

// NewEnquiryHandlers creates enquiry handlers with injected dependencies
func NewEnquiryHandlers(enquiryService *services.EnquiryService, logger *logging.ChanneledLogger) *EnquiryHandlers {
	return &EnquiryHandlers{enquiryService: enquiryService, logger: logger}
}

// PostEnquiry handles the public enquiry form submission
func (h *EnquiryHandlers) PostEnquiry(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received enquiry submission", "method", c.Request.Method, "path", c.Request.URL.Path)

	var req CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	enquiry := &catalog.Enquiry{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Subject:      req.Subject,
		Message:      req.Message,
		TripInterest: req.TripInterest,
		TravelDates:  req.TravelDates,
		JourneyID:    req.JourneyID,
		JourneyTitle: req.JourneyTitle,
	}

	if err := h.enquiryService.Create(enquiry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Enquiry submission completed", "enquiryId", enquiry.ID, "duration", time.Since(start))
	c.JSON(http.StatusCreated, gin.H{
		"message":   "enquiry submitted successfully",
		"enquiryId": enquiry.ID,
	})
}

// GetEnquiries lists enquiries for the back office, optionally by status
func (h *EnquiryHandlers) GetEnquiries(c *gin.Context) {
	enquiries, err := h.enquiryService.GetAll(listFilterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"enquiries": enquiries,
		"count":     len(enquiries),
	})
}

// GetEnquiryByID returns a specific enquiry
func (h *EnquiryHandlers) GetEnquiryByID(c *gin.Context) {
	enquiryID := c.Param("id")

	enquiry, err := h.enquiryService.GetByID(enquiryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if enquiry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "enquiry not found"})
		return
	}

	c.JSON(http.StatusOK, enquiry)
}

// UpdateEnquiryStatus moves an enquiry to a new triage status
func (h *EnquiryHandlers) UpdateEnquiryStatus(c *gin.Context) {
	enquiryID := c.Param("id")

	var req UpdateEnquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	enquiry, err := h.enquiryService.UpdateStatus(enquiryID, req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if enquiry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "enquiry not found"})
		return
	}

	c.JSON(http.StatusOK, enquiry)
}

// MarkEnquiryRead flags an enquiry as read
func (h *EnquiryHandlers) MarkEnquiryRead(c *gin.Context) {
	enquiryID := c.Param("id")

	if err := h.enquiryService.MarkRead(enquiryID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "enquiry marked as read",
		"enquiryId": enquiryID,
	})
}

// DeleteEnquiry deletes an enquiry
func (h *EnquiryHandlers) DeleteEnquiry(c *gin.Context) {
	enquiryID := c.Param("id")

	if err := h.enquiryService.Delete(enquiryID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "enquiry deleted successfully",
		"enquiryId": enquiryID,
	})
}
