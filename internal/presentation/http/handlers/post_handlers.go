package handlers

import (
	"net/http"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/application/services"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// PostHandlers contains all blog post HTTP handlers
type PostHandlers struct {
	postService *services.PostService
	logger      *logging.ChanneledLogger
}

// NewPostHandlers creates post handlers with injected dependencies
func NewPostHandlers(postService *services.PostService, logger *logging.ChanneledLogger) *PostHandlers {
	return &PostHandlers{postService: postService, logger: logger}
}

// GetPosts returns blog posts matching the list query parameters
func (h *PostHandlers) GetPosts(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get posts request", "method", c.Request.Method, "path", c.Request.URL.Path)

	posts, err := h.postService.GetAll(listFilterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Get posts request completed", "count", len(posts), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"count": len(posts),
	})
}

// GetPostByID returns a specific post. Public reads count a view;
// back-office reads pass ?countView=false to leave the number alone.
func (h *PostHandlers) GetPostByID(c *gin.Context) {
	postID := c.Param("id")
	countView := c.Query("countView") != "false"

	post, err := h.postService.GetByID(postID, countView)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost creates a new blog post
func (h *PostHandlers) CreatePost(c *gin.Context) {
	start := time.Now()

	var post catalog.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.postService.Create(&post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Create post request completed", "postId", post.ID, "title", post.Title, "duration", time.Since(start))
	c.JSON(http.StatusCreated, gin.H{
		"message": "post created successfully",
		"postId":  post.ID,
	})
}

// UpdatePost updates an existing blog post
func (h *PostHandlers) UpdatePost(c *gin.Context) {
	postID := c.Param("id")

	var post catalog.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	post.ID = postID

	if err := h.postService.Update(&post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "post updated successfully",
		"postId":  postID,
	})
}

// DeletePost deletes a blog post
func (h *PostHandlers) DeletePost(c *gin.Context) {
	postID := c.Param("id")

	if err := h.postService.Delete(postID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "post deleted successfully",
		"postId":  postID,
	})
}
