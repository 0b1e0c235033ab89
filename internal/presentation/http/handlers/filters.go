package handlers

import (
	"strconv"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
	"github.com/gin-gonic/gin"
)

// listFilterFromQuery maps the shared list query parameters onto a
// repository filter: ?category=, ?status=, ?featured=true, ?orderBy=,
// ?order=asc|desc, ?limit=.
func listFilterFromQuery(c *gin.Context) repositories.ListFilter {
	filter := repositories.ListFilter{
		Category:     c.Query("category"),
		Status:       c.Query("status"),
		FeaturedOnly: c.Query("featured") == "true",
		OrderBy:      c.Query("orderBy"),
		Ascending:    c.Query("order") == "asc",
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	return filter
}
