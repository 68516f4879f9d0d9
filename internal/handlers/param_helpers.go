package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cisnebranco/grooming-os/internal/timezone"
)

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(400, gin.H{"error": "invalid_" + name})
		return 0, false
	}
	return uint(id), true
}

func parseUintQuery(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseDate interprets a "2006-01-02" value in the shop timezone.
func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(timezone.DefaultTimezone),
	)
}
