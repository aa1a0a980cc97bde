package models

import (
	"time"

	"gorm.io/datatypes"
)

type MenuItem struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	CategoryID  uint                        `gorm:"not null;index" json:"category_id"`
	Name        string                      `gorm:"size:255;not null" json:"name"`
	Description *string                     `gorm:"type:text" json:"description"`
	Price       float64                     `gorm:"not null" json:"price"`
	ImageURL    *string                     `gorm:"size:1024" json:"image_url"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	IsAvailable bool                        `gorm:"not null" json:"is_available"`
	SortOrder   int                         `gorm:"not null;index" json:"sort_order"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`

	// Filled by the LEFT JOIN on categories; never written.
	CategoryName *string `gorm:"->;-:migration" json:"category_name,omitempty"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

type MenuItemInput struct {
	CategoryID  uint     `json:"category_id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
	ImageURL    *string  `json:"image_url"`
	Tags        []string `json:"tags"`
	IsAvailable *bool    `json:"is_available"`
	SortOrder   *int     `json:"sort_order"`
}

type MenuItemPatch struct {
	CategoryID  *uint     `json:"category_id"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	ImageURL    *string   `json:"image_url"`
	Tags        *[]string `json:"tags"`
	IsAvailable *bool     `json:"is_available"`
	SortOrder   *int      `json:"sort_order"`
	Clear       []string  `json:"clear"`
}
