package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"comfyinn-backend/models"
	"comfyinn-backend/services"
	"comfyinn-backend/utils"
)

type ConferenceHallController struct {
	HallSvc *services.ConferenceHallService
}

func NewConferenceHallController(svc *services.ConferenceHallService) *ConferenceHallController {
	return &ConferenceHallController{HallSvc: svc}
}

// GET /api/conference-halls (admin: every hall)
func (ctrl *ConferenceHallController) GetHalls(c *gin.Context) {
	halls, err := ctrl.HallSvc.List(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch conference halls", err)
		return
	}
	c.JSON(http.StatusOK, halls)
}

// GET /api/conference-halls/available
func (ctrl *ConferenceHallController) GetAvailableHalls(c *gin.Context) {
	halls, err := ctrl.HallSvc.ListAvailable(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch conference halls", err)
		return
	}
	c.JSON(http.StatusOK, halls)
}

// GET /api/conference-halls/:id
func (ctrl *ConferenceHallController) GetHall(c *gin.Context) {
	id, ok := pathID(c, "Conference hall not found")
	if !ok {
		return
	}
	hall, err := ctrl.HallSvc.GetByID(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Conference hall not found")
		return
	}
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch conference hall", err)
		return
	}
	c.JSON(http.StatusOK, hall)
}

// POST /api/conference-halls
func (ctrl *ConferenceHallController) CreateHall(c *gin.Context) {
	var in models.ConferenceHallInput
	if !bindBody(c, &in) {
		return
	}
	hall, err := ctrl.HallSvc.Create(c.Request.Context(), in)
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to create conference hall", err)
		return
	}
	c.JSON(http.StatusOK, hall)
}

// PUT /api/conference-halls/:id
func (ctrl *ConferenceHallController) UpdateHall(c *gin.Context) {
	id, ok := pathID(c, "Conference hall not found")
	if !ok {
		return
	}
	var patch models.ConferenceHallPatch
	if !bindBody(c, &patch) {
		return
	}
	hall, err := ctrl.HallSvc.Update(c.Request.Context(), id, patch)
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Conference hall not found")
		return
	}
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to update conference hall", err)
		return
	}
	c.JSON(http.StatusOK, hall)
}

// DELETE /api/conference-halls/:id
func (ctrl *ConferenceHallController) DeleteHall(c *gin.Context) {
	id, ok := pathID(c, "Conference hall not found")
	if !ok {
		return
	}
	removed, err := ctrl.HallSvc.Delete(c.Request.Context(), id)
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to delete conference hall", err)
		return
	}
	if !removed {
		utils.JSONError(c, http.StatusNotFound, "Conference hall not found")
		return
	}
	deleted(c)
}
