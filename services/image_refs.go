package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"comfyinn-backend/models"
)

// imageOwners are the models whose image_url column points into the image store.
func imageOwners() []interface{} {
	return []interface{}{&models.Category{}, &models.MenuItem{}, &models.Room{}, &models.ConferenceHall{}}
}

// ImageURLs lists every non-empty image_url stored in the database.
func ImageURLs(ctx context.Context, db *gorm.DB) ([]string, error) {
	var all []string
	for _, model := range imageOwners() {
		var urls []string
		err := db.WithContext(ctx).Model(model).
			Where("image_url IS NOT NULL AND image_url <> ''").
			Pluck("image_url", &urls).Error
		if err != nil {
			return nil, fmt.Errorf("collect image urls: %w", err)
		}
		all = append(all, urls...)
	}
	return all, nil
}

// imageInUse reports whether any record still points at url.
func imageInUse(ctx context.Context, db *gorm.DB, url string) (bool, error) {
	for _, model := range imageOwners() {
		var n int64
		if err := db.WithContext(ctx).Model(model).Where("image_url = ?", url).Count(&n).Error; err != nil {
			return false, fmt.Errorf("count image references: %w", err)
		}
		if n > 0 {
			return true, nil
		}
	}
	return false, nil
}
