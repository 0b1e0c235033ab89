package handlers

import (
	"net/http"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/application/services"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// DraftHandlers exposes AI content drafting to the back office
type DraftHandlers struct {
	draftService *services.DraftService
	logger       *logging.ChanneledLogger
}

// NewDraftHandlers creates draft handlers with injected dependencies
func NewDraftHandlers(draftService *services.DraftService, logger *logging.ChanneledLogger) *DraftHandlers {
	return &DraftHandlers{draftService: draftService, logger: logger}
}

// PostDraft handles POST /api/v1/admin/draft - generates draft content
// for a titled entity and merges it with the editor's current form state
func (h *DraftHandlers) PostDraft(c *gin.Context) {
	start := time.Now()
	h.logger.AI().Debug("Received draft request", "method", c.Request.Method, "path", c.Request.URL.Path)

	var req services.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.draftService.Draft(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.AI().Info("Draft request completed", "contentType", req.ContentType, "duration", time.Since(start))
	c.JSON(http.StatusOK, resp)
}
