package models

import "time"

// Category groups menu items on the public menu.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	ImageURL    *string   `gorm:"size:1024" json:"image_url"`
	SortOrder   int       `gorm:"not null;index" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CategoryInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	SortOrder   *int    `json:"sort_order"`
}

type CategoryPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
	SortOrder   *int     `json:"sort_order"`
	Clear       []string `json:"clear"`
}

// MenuSection is a category together with the items shown under it on the public menu.
type MenuSection struct {
	Category
	Items []MenuItem `json:"items"`
}
