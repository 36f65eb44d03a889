package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	DefaultPage     = 1 // page numbers are 1-based
)

// ParsePaginationParams extracts page and pageSize query parameters,
// falling back to the defaults when absent or malformed. No upper bound
// is applied to pageSize.
func ParsePaginationParams(c *gin.Context) (page, pageSize int) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	sizeStr := c.DefaultQuery("pageSize", "10")
	pageSize, err = strconv.Atoi(sizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return page, pageSize
}

// CalculateOffset converts a 1-based page number to a 0-based row offset.
func CalculateOffset(page, pageSize int) int {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return (page - 1) * pageSize
}
