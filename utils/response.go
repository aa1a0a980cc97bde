package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// JSONServerError logs err and answers with a fixed message so internal detail
// never reaches the caller.
func JSONServerError(c *gin.Context, code int, message string, err error) {
	zap.L().Error(message,
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(code, gin.H{"error": message})
}

// ParseID reads a positive numeric id. Anything else cannot match a row.
func ParseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
