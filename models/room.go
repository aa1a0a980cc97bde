package models

import (
	"time"

	"gorm.io/datatypes"
)

type Room struct {
	ID            uint                        `gorm:"primaryKey" json:"id"`
	Name          string                      `gorm:"size:255;not null" json:"name"`
	Description   *string                     `gorm:"type:text" json:"description"`
	PricePerNight float64                     `gorm:"not null" json:"price_per_night"`
	ImageURL      *string                     `gorm:"size:1024" json:"image_url"`
	Capacity      int                         `gorm:"not null" json:"capacity"`
	Amenities     datatypes.JSONSlice[string] `json:"amenities"`
	IsAvailable   bool                        `gorm:"not null" json:"is_available"`
	SortOrder     int                         `gorm:"not null;index" json:"sort_order"`

	// Explicit facets. Empty means the facet is read from Name.
	RoomType string `gorm:"size:50" json:"room_type"`
	BedType  string `gorm:"size:50" json:"bed_type"`
	MealPlan string `gorm:"size:50" json:"meal_plan"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RoomInput struct {
	Name          string   `json:"name" binding:"required"`
	Description   *string  `json:"description"`
	PricePerNight *float64 `json:"price_per_night" binding:"required"`
	ImageURL      *string  `json:"image_url"`
	Capacity      *int     `json:"capacity"`
	Amenities     []string `json:"amenities"`
	IsAvailable   *bool    `json:"is_available"`
	SortOrder     *int     `json:"sort_order"`
	RoomType      string   `json:"room_type"`
	BedType       string   `json:"bed_type"`
	MealPlan      string   `json:"meal_plan"`
}

type RoomPatch struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	PricePerNight *float64  `json:"price_per_night"`
	ImageURL      *string   `json:"image_url"`
	Capacity      *int      `json:"capacity"`
	Amenities     *[]string `json:"amenities"`
	IsAvailable   *bool     `json:"is_available"`
	SortOrder     *int      `json:"sort_order"`
	RoomType      *string   `json:"room_type"`
	BedType       *string   `json:"bed_type"`
	MealPlan      *string   `json:"meal_plan"`
	Clear         []string  `json:"clear"`
}

// RoomFacets lists the filter options present in a set of rooms.
type RoomFacets struct {
	RoomTypes []string `json:"room_types"`
	BedTypes  []string `json:"bed_types"`
	MealPlans []string `json:"meal_plans"`
	MinPrice  float64  `json:"min_price"`
	MaxPrice  float64  `json:"max_price"`
}

// RoomFilter selects rooms. Values inside one group are OR-ed, groups are AND-ed,
// and a nil price bound is open.
type RoomFilter struct {
	RoomTypes []string
	BedTypes  []string
	MealPlans []string
	MinPrice  *float64
	MaxPrice  *float64
}
