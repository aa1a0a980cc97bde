package models

import (
	"time"

	"gorm.io/datatypes"
)

type HallDimensions struct {
	SquareMeters  float64 `json:"square_meters"`
	Length        float64 `json:"length"`
	Width         float64 `json:"width"`
	CeilingHeight float64 `json:"ceiling_height"`
}

type ConferenceHall struct {
	ID               uint     `gorm:"primaryKey" json:"id"`
	Name             string   `gorm:"size:255;not null" json:"name"`
	Description      *string  `gorm:"type:text" json:"description"`
	ShortDescription *string  `gorm:"size:500" json:"short_description"`
	ImageURL         *string  `gorm:"size:1024" json:"image_url"`
	Capacity         int      `gorm:"not null" json:"capacity"`
	PricePerHour     float64  `gorm:"not null" json:"price_per_hour"`
	PriceHalfDay     *float64 `json:"price_half_day"`
	PriceFullDay     *float64 `json:"price_full_day"`

	PriceWeekendSurcharge float64 `gorm:"not null" json:"price_weekend_surcharge"`

	Amenities        datatypes.JSONSlice[string] `json:"amenities"`
	Features         datatypes.JSONSlice[string] `json:"features"`
	IncludedServices datatypes.JSONSlice[string] `json:"included_services"`

	Dimensions      HallDimensions `gorm:"embedded;embeddedPrefix:dim_" json:"dimensions"`
	HasNaturalLight bool           `gorm:"not null" json:"has_natural_light"`
	FloorType       *string        `gorm:"size:100" json:"floor_type"`

	TechnicalEquipment datatypes.JSONSlice[string] `json:"technical_equipment"`
	SeatingStyles      datatypes.JSONSlice[string] `json:"seating_styles"`

	MaxPresenters int  `gorm:"not null" json:"max_presenters"`
	IsAvailable   bool `gorm:"not null" json:"is_available"`
	IsFeatured    bool `gorm:"not null" json:"is_featured"`
	DisplayOrder  int  `gorm:"not null;index" json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ConferenceHallInput struct {
	Name                  string          `json:"name" binding:"required"`
	Description           *string         `json:"description"`
	ShortDescription      *string         `json:"short_description"`
	ImageURL              *string         `json:"image_url"`
	Capacity              int             `json:"capacity"`
	PricePerHour          float64         `json:"price_per_hour"`
	PriceHalfDay          *float64        `json:"price_half_day"`
	PriceFullDay          *float64        `json:"price_full_day"`
	PriceWeekendSurcharge float64         `json:"price_weekend_surcharge"`
	Amenities             []string        `json:"amenities"`
	Features              []string        `json:"features"`
	IncludedServices      []string        `json:"included_services"`
	Dimensions            *HallDimensions `json:"dimensions"`
	HasNaturalLight       bool            `json:"has_natural_light"`
	FloorType             *string         `json:"floor_type"`
	TechnicalEquipment    []string        `json:"technical_equipment"`
	SeatingStyles         []string        `json:"seating_styles"`
	MaxPresenters         *int            `json:"max_presenters"`
	IsAvailable           *bool           `json:"is_available"`
	IsFeatured            bool            `json:"is_featured"`
	DisplayOrder          int             `json:"display_order"`
}

type HallDimensionsPatch struct {
	SquareMeters  *float64 `json:"square_meters"`
	Length        *float64 `json:"length"`
	Width         *float64 `json:"width"`
	CeilingHeight *float64 `json:"ceiling_height"`
}

type ConferenceHallPatch struct {
	Name                  *string              `json:"name"`
	Description           *string              `json:"description"`
	ShortDescription      *string              `json:"short_description"`
	ImageURL              *string              `json:"image_url"`
	Capacity              *int                 `json:"capacity"`
	PricePerHour          *float64             `json:"price_per_hour"`
	PriceHalfDay          *float64             `json:"price_half_day"`
	PriceFullDay          *float64             `json:"price_full_day"`
	PriceWeekendSurcharge *float64             `json:"price_weekend_surcharge"`
	Amenities             *[]string            `json:"amenities"`
	Features              *[]string            `json:"features"`
	IncludedServices      *[]string            `json:"included_services"`
	Dimensions            *HallDimensionsPatch `json:"dimensions"`
	HasNaturalLight       *bool                `json:"has_natural_light"`
	FloorType             *string              `json:"floor_type"`
	TechnicalEquipment    *[]string            `json:"technical_equipment"`
	SeatingStyles         *[]string            `json:"seating_styles"`
	MaxPresenters         *int                 `json:"max_presenters"`
	IsAvailable           *bool                `json:"is_available"`
	IsFeatured            *bool                `json:"is_featured"`
	DisplayOrder          *int                 `json:"display_order"`
	Clear                 []string             `json:"clear"`
}
