package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ParsePagination reads page and limit, falling back to 1 and the
// default page size on anything out of range.
func ParsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	return page, limit
}

// Paginate returns the page-th window of items. Pages past the end are empty.
// Page and limit are checked against the page count before multiplying so
// huge page numbers cannot overflow the offset.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 1 || limit < 1 {
		return []T{}
	}
	pages := len(items) / limit
	if len(items)%limit != 0 {
		pages++
	}
	if page-1 >= pages {
		return []T{}
	}
	offset := (page - 1) * limit
	if limit >= len(items)-offset {
		return items[offset:]
	}
	return items[offset : offset+limit]
}
