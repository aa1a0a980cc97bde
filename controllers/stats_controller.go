package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comfyinn-backend/services"
	"comfyinn-backend/utils"
)

type StatsController struct {
	StatsSvc *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{StatsSvc: svc}
}

// GetStats (GET /api/stats) feeds the admin dashboard counters.
func (ctrl *StatsController) GetStats(c *gin.Context) {
	stats, err := ctrl.StatsSvc.Dashboard(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
