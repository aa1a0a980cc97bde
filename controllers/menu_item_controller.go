package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"comfyinn-backend/models"
	"comfyinn-backend/services"
	"comfyinn-backend/utils"
)

type MenuItemController struct {
	MenuItemSvc *services.MenuItemService
}

func NewMenuItemController(svc *services.MenuItemService) *MenuItemController {
	return &MenuItemController{MenuItemSvc: svc}
}

// GET /api/menu-items
func (ctrl *MenuItemController) GetMenuItems(c *gin.Context) {
	items, err := ctrl.MenuItemSvc.List(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch menu items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/menu-items/:id
func (ctrl *MenuItemController) GetMenuItem(c *gin.Context) {
	id, ok := pathID(c, "Menu item not found")
	if !ok {
		return
	}
	item, err := ctrl.MenuItemSvc.GetByID(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Menu item not found")
		return
	}
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch menu item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// POST /api/menu-items
func (ctrl *MenuItemController) CreateMenuItem(c *gin.Context) {
	var in models.MenuItemInput
	if !bindBody(c, &in) {
		return
	}
	item, err := ctrl.MenuItemSvc.Create(c.Request.Context(), in)
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to create menu item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// PUT /api/menu-items/:id
func (ctrl *MenuItemController) UpdateMenuItem(c *gin.Context) {
	id, ok := pathID(c, "Menu item not found")
	if !ok {
		return
	}
	var patch models.MenuItemPatch
	if !bindBody(c, &patch) {
		return
	}
	item, err := ctrl.MenuItemSvc.Update(c.Request.Context(), id, patch)
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Menu item not found")
		return
	}
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to update menu item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /api/menu-items/:id
func (ctrl *MenuItemController) DeleteMenuItem(c *gin.Context) {
	id, ok := pathID(c, "Menu item not found")
	if !ok {
		return
	}
	removed, err := ctrl.MenuItemSvc.Delete(c.Request.Context(), id)
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to delete menu item", err)
		return
	}
	if !removed {
		utils.JSONError(c, http.StatusNotFound, "Menu item not found")
		return
	}
	deleted(c)
}
