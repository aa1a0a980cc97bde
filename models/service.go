package models

import "time"

// Service is an extra offered to guests. A nil Price means complimentary.
type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Price       *float64  `json:"price"`
	IsAvailable bool      `gorm:"not null" json:"is_available"`
	SortOrder   int       `gorm:"not null;index" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ServiceInput struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	IsAvailable *bool    `json:"is_available"`
	SortOrder   *int     `json:"sort_order"`
}

type ServicePatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	IsAvailable *bool    `json:"is_available"`
	SortOrder   *int     `json:"sort_order"`
	Clear       []string `json:"clear"`
}
