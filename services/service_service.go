package services

import (
	"context"

	"gorm.io/gorm"

	"comfyinn-backend/models"
)

// ServiceService manages the hotel's extra services (laundry, airport transfer, ...).
type ServiceService struct {
	DB *gorm.DB
}

func NewServiceService(db *gorm.DB) *ServiceService {
	return &ServiceService{DB: db}
}

func (s *ServiceService) List(ctx context.Context) ([]models.Service, error) {
	out := []models.Service{}
	err := s.DB.WithContext(ctx).Order("sort_order ASC, name ASC").Find(&out).Error
	return out, err
}

func (s *ServiceService) ListAvailable(ctx context.Context) ([]models.Service, error) {
	out := []models.Service{}
	err := s.DB.WithContext(ctx).
		Where("is_available = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&out).Error
	return out, err
}

func (s *ServiceService) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	return findByID[models.Service](ctx, s.DB, id)
}

func (s *ServiceService) Create(ctx context.Context, in models.ServiceInput) (*models.Service, error) {
	svc := models.Service{
		Name:        in.Name,
		Description: optionalText(in.Description),
		Price:       in.Price,
		IsAvailable: boolOr(in.IsAvailable, true),
		SortOrder:   intOr(in.SortOrder, 0),
	}
	if err := s.DB.WithContext(ctx).Create(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *ServiceService) Update(ctx context.Context, id uint, p models.ServicePatch) (*models.Service, error) {
	set := patchSet{}
	set.setText("name", p.Name)
	set.setText("description", p.Description)
	set.setFloat("price", p.Price)
	set.setBool("is_available", p.IsAvailable)
	set.setInt("sort_order", p.SortOrder)
	set.clearColumns(p.Clear, "description", "price")

	_, after, err := patchByID[models.Service](ctx, s.DB, id, set)
	return after, err
}

func (s *ServiceService) Delete(ctx context.Context, id uint) (bool, error) {
	_, deleted, err := deleteByID[models.Service](ctx, s.DB, id)
	return deleted, err
}
