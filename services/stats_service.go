package services

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"comfyinn-backend/models"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// Dashboard counts the rows of every entity table concurrently.
func (s *StatsService) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	g, ctx := errgroup.WithContext(ctx)

	count := func(model interface{}, dst *int64) {
		g.Go(func() error {
			return s.DB.WithContext(ctx).Model(model).Count(dst).Error
		})
	}
	count(&models.Category{}, &stats.CategoriesCount)
	count(&models.MenuItem{}, &stats.ItemsCount)
	count(&models.Room{}, &stats.RoomsCount)
	count(&models.Service{}, &stats.ServicesCount)
	count(&models.ConferenceHall{}, &stats.ConferenceHallsCount)

	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, err
	}
	return stats, nil
}
