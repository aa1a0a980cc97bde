package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"comfyinn-backend/models"
	"comfyinn-backend/services"
	"comfyinn-backend/utils"
)

type ServiceController struct {
	ServiceSvc *services.ServiceService
}

func NewServiceController(svc *services.ServiceService) *ServiceController {
	return &ServiceController{ServiceSvc: svc}
}

func (ctrl *ServiceController) GetServices(c *gin.Context) {
	list, err := ctrl.ServiceSvc.List(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch services", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *ServiceController) GetAvailableServices(c *gin.Context) {
	list, err := ctrl.ServiceSvc.ListAvailable(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch services", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *ServiceController) GetService(c *gin.Context) {
	id, ok := pathID(c, "Service not found")
	if !ok {
		return
	}
	svc, err := ctrl.ServiceSvc.GetByID(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Service not found")
		return
	}
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch service", err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (ctrl *ServiceController) CreateService(c *gin.Context) {
	var in models.ServiceInput
	if !bindBody(c, &in) {
		return
	}
	svc, err := ctrl.ServiceSvc.Create(c.Request.Context(), in)
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to create service", err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (ctrl *ServiceController) UpdateService(c *gin.Context) {
	id, ok := pathID(c, "Service not found")
	if !ok {
		return
	}
	var patch models.ServicePatch
	if !bindBody(c, &patch) {
		return
	}
	svc, err := ctrl.ServiceSvc.Update(c.Request.Context(), id, patch)
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Service not found")
		return
	}
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to update service", err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (ctrl *ServiceController) DeleteService(c *gin.Context) {
	id, ok := pathID(c, "Service not found")
	if !ok {
		return
	}
	removed, err := ctrl.ServiceSvc.Delete(c.Request.Context(), id)
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to delete service", err)
		return
	}
	if !removed {
		utils.JSONError(c, http.StatusNotFound, "Service not found")
		return
	}
	deleted(c)
}
