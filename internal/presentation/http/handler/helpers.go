package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GetAdminID extracts the authenticated admin ID from the Gin context
func GetAdminID(c *gin.Context) uint {
	idVal, exists := c.Get("admin_id")
	if !exists {
		return 0
	}
	id, ok := idVal.(uint)
	if !ok {
		return 0
	}
	return id
}

// GetAdminEmail extracts the authenticated admin email from the Gin context
func GetAdminEmail(c *gin.Context) string {
	email, exists := c.Get("admin_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// parseDateParam parses a YYYY-MM-DD query value. Unparsable or empty values
// return nil so the filter is simply skipped.
func parseDateParam(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil
	}
	return &t
}
