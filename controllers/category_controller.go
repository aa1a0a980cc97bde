package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"comfyinn-backend/models"
	"comfyinn-backend/services"
	"comfyinn-backend/utils"
)

type CategoryController struct {
	CategorySvc *services.CategoryService
	MenuItemSvc *services.MenuItemService
}

func NewCategoryController(categories *services.CategoryService, items *services.MenuItemService) *CategoryController {
	return &CategoryController{CategorySvc: categories, MenuItemSvc: items}
}

// GET /api/categories
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.CategorySvc.List(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GET /api/menu
func (ctrl *CategoryController) GetMenu(c *gin.Context) {
	menu, err := ctrl.CategorySvc.Menu(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch menu", err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// GET /api/categories/:id
func (ctrl *CategoryController) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "Category not found")
	if !ok {
		return
	}
	category, err := ctrl.CategorySvc.GetByID(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Category not found")
		return
	}
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch category", err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// GET /api/categories/:id/items lists the available items of one category.
func (ctrl *CategoryController) GetCategoryItems(c *gin.Context) {
	id, ok := pathID(c, "Category not found")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := ctrl.CategorySvc.GetByID(ctx, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Category not found")
			return
		}
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch menu items", err)
		return
	}
	items, err := ctrl.MenuItemSvc.ListAvailableByCategory(ctx, id)
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch menu items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/categories
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var in models.CategoryInput
	if !bindBody(c, &in) {
		return
	}
	category, err := ctrl.CategorySvc.Create(c.Request.Context(), in)
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to create category", err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// PUT /api/categories/:id
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "Category not found")
	if !ok {
		return
	}
	var patch models.CategoryPatch
	if !bindBody(c, &patch) {
		return
	}
	category, err := ctrl.CategorySvc.Update(c.Request.Context(), id, patch)
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Category not found")
		return
	}
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to update category", err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DELETE /api/categories/:id also removes the category's menu items.
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "Category not found")
	if !ok {
		return
	}
	removed, err := ctrl.CategorySvc.Delete(c.Request.Context(), id)
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to delete category", err)
		return
	}
	if !removed {
		utils.JSONError(c, http.StatusNotFound, "Category not found")
		return
	}
	deleted(c)
}
