package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// MustParseUint parses s as an unsigned integer, returning 0 when it is invalid.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// ParsePage reads page/limit query parameters, falling back to defaults for
// missing or invalid values and capping limit at MaxLimit.
func ParsePage(c *gin.Context) (page, limit int) {
	page, limit = DefaultPage, DefaultLimit
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}
