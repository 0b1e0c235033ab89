package handlers

import (
	"net/http"

	"github.com/ShantiHimalaya/shanti-go/internal/application/services"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// CategoryHandlers contains category HTTP handlers
type CategoryHandlers struct {
	categoryService *services.CategoryService
	logger          *logging.ChanneledLogger
}

// NewCategoryHandlers creates category handlers with injected dependencies
func NewCategoryHandlers(categoryService *services.CategoryService, logger *logging.ChanneledLogger) *CategoryHandlers {
	return &CategoryHandlers{categoryService: categoryService, logger: logger}
}

// GetCategories returns all journey categories
func (h *CategoryHandlers) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// CreateCategory creates a new category
func (h *CategoryHandlers) CreateCategory(c *gin.Context) {
	var category catalog.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.categoryService.Create(&category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Create category request completed", "categoryId", category.ID, "name", category.Name)
	c.JSON(http.StatusCreated, gin.H{
		"message":    "category created successfully",
		"categoryId": category.ID,
	})
}

// DeleteCategory deletes a category
func (h *CategoryHandlers) DeleteCategory(c *gin.Context) {
	categoryID := c.Param("id")

	if err := h.categoryService.Delete(categoryID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "category deleted successfully",
		"categoryId": categoryID,
	})
}
