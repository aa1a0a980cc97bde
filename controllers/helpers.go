package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"comfyinn-backend/utils"
)

// bindBody decodes the JSON body into dst, answering 400 when it cannot.
func bindBody(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		zap.L().Info("rejected request body", zap.String("path", c.Request.URL.Path), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// pathID returns the :id parameter. Ids that cannot exist are answered with
// notFound right away.
func pathID(c *gin.Context, notFound string) (uint, bool) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, notFound)
		return 0, false
	}
	return id, true
}

func deleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
