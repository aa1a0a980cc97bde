package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"comfyinn-backend/models"
	"comfyinn-backend/services"
	"comfyinn-backend/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GetRooms (GET /api/rooms) lists every room, available or not.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.List(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch rooms", err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetAvailableRooms (GET /api/rooms/available)
func (ctrl *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.ListAvailable(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch rooms", err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomFacets (GET /api/rooms/facets)
func (ctrl *RoomController) GetRoomFacets(c *gin.Context) {
	facets, err := ctrl.RoomSvc.Facets(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch room filters", err)
		return
	}
	c.JSON(http.StatusOK, facets)
}

// SearchRooms (GET /api/rooms/search?room_type=Deluxe&bed_type=Twin&min_price=0&max_price=3000)
func (ctrl *RoomController) SearchRooms(c *gin.Context) {
	filter := models.RoomFilter{
		RoomTypes: queryList(c, "room_type"),
		BedTypes:  queryList(c, "bed_type"),
		MealPlans: queryList(c, "meal_plan"),
	}
	var ok bool
	if filter.MinPrice, ok = queryPrice(c, "min_price"); !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid min_price")
		return
	}
	if filter.MaxPrice, ok = queryPrice(c, "max_price"); !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid max_price")
		return
	}

	rooms, err := ctrl.RoomSvc.Search(c.Request.Context(), filter)
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch rooms", err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom (GET /api/rooms/:id)
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := pathID(c, "Room not found")
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.GetByID(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to fetch room", err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoom (POST /api/rooms)
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var in models.RoomInput
	if !bindBody(c, &in) {
		return
	}
	room, err := ctrl.RoomSvc.Create(c.Request.Context(), in)
	if errors.Is(err, services.ErrInvalidFacet) {
		facetError(c, err)
		return
	}
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to create room", err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// UpdateRoom (PUT /api/rooms/:id)
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c, "Room not found")
	if !ok {
		return
	}
	var patch models.RoomPatch
	if !bindBody(c, &patch) {
		return
	}
	room, err := ctrl.RoomSvc.Update(c.Request.Context(), id, patch)
	if errors.Is(err, services.ErrInvalidFacet) {
		facetError(c, err)
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to update room", err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom (DELETE /api/rooms/:id)
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c, "Room not found")
	if !ok {
		return
	}
	removed, err := ctrl.RoomSvc.Delete(c.Request.Context(), id)
	if err != nil {
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to delete room", err)
		return
	}
	if !removed {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}
	deleted(c)
}

// facetError answers 400 with every rejected facet on one line.
func facetError(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, strings.ReplaceAll(err.Error(), "\n", "; "))
}

// queryList accepts both repeated keys and comma-separated values.
func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func queryPrice(c *gin.Context, key string) (*float64, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}
