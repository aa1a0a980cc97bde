package services

import (
	"context"

	"gorm.io/gorm"

	"comfyinn-backend/models"
)

type ConferenceHallService struct {
	DB     *gorm.DB
	Images ImageStore
}

func NewConferenceHallService(db *gorm.DB, images ImageStore) *ConferenceHallService {
	return &ConferenceHallService{DB: db, Images: images}
}

func (s *ConferenceHallService) List(ctx context.Context) ([]models.ConferenceHall, error) {
	halls := []models.ConferenceHall{}
	err := s.DB.WithContext(ctx).Order("display_order ASC, name ASC").Find(&halls).Error
	return halls, err
}

// ListAvailable is the public listing: unavailable halls are never included.
func (s *ConferenceHallService) ListAvailable(ctx context.Context) ([]models.ConferenceHall, error) {
	halls := []models.ConferenceHall{}
	err := s.DB.WithContext(ctx).
		Where("is_available = ?", true).
		Order("display_order ASC, name ASC").
		Find(&halls).Error
	return halls, err
}

func (s *ConferenceHallService) GetByID(ctx context.Context, id uint) (*models.ConferenceHall, error) {
	return findByID[models.ConferenceHall](ctx, s.DB, id)
}

func (s *ConferenceHallService) Create(ctx context.Context, in models.ConferenceHallInput) (*models.ConferenceHall, error) {
	hall := models.ConferenceHall{
		Name:                  in.Name,
		Description:           optionalText(in.Description),
		ShortDescription:      optionalText(in.ShortDescription),
		ImageURL:              optionalText(in.ImageURL),
		Capacity:              in.Capacity,
		PricePerHour:          in.PricePerHour,
		PriceHalfDay:          in.PriceHalfDay,
		PriceFullDay:          in.PriceFullDay,
		PriceWeekendSurcharge: in.PriceWeekendSurcharge,
		Amenities:             stringList(in.Amenities),
		Features:              stringList(in.Features),
		IncludedServices:      stringList(in.IncludedServices),
		HasNaturalLight:       in.HasNaturalLight,
		FloorType:             optionalText(in.FloorType),
		TechnicalEquipment:    stringList(in.TechnicalEquipment),
		SeatingStyles:         stringList(in.SeatingStyles),
		MaxPresenters:         intOr(in.MaxPresenters, 1),
		IsAvailable:           boolOr(in.IsAvailable, true),
		IsFeatured:            in.IsFeatured,
		DisplayOrder:          in.DisplayOrder,
	}
	if in.Dimensions != nil {
		hall.Dimensions = *in.Dimensions
	}
	if err := s.DB.WithContext(ctx).Create(&hall).Error; err != nil {
		return nil, err
	}
	return &hall, nil
}

func (s *ConferenceHallService) Update(ctx context.Context, id uint, p models.ConferenceHallPatch) (*models.ConferenceHall, error) {
	set := patchSet{}
	set.setText("name", p.Name)
	set.setText("description", p.Description)
	set.setText("short_description", p.ShortDescription)
	set.setText("image_url", p.ImageURL)
	set.setInt("capacity", p.Capacity)
	set.setFloat("price_per_hour", p.PricePerHour)
	set.setFloat("price_half_day", p.PriceHalfDay)
	set.setFloat("price_full_day", p.PriceFullDay)
	set.setFloat("price_weekend_surcharge", p.PriceWeekendSurcharge)
	set.setList("amenities", p.Amenities)
	set.setList("features", p.Features)
	set.setList("included_services", p.IncludedServices)
	if d := p.Dimensions; d != nil {
		set.setFloat("dim_square_meters", d.SquareMeters)
		set.setFloat("dim_length", d.Length)
		set.setFloat("dim_width", d.Width)
		set.setFloat("dim_ceiling_height", d.CeilingHeight)
	}
	set.setBool("has_natural_light", p.HasNaturalLight)
	set.setText("floor_type", p.FloorType)
	set.setList("technical_equipment", p.TechnicalEquipment)
	set.setList("seating_styles", p.SeatingStyles)
	set.setInt("max_presenters", p.MaxPresenters)
	set.setBool("is_available", p.IsAvailable)
	set.setBool("is_featured", p.IsFeatured)
	set.setInt("display_order", p.DisplayOrder)
	set.clearColumns(p.Clear,
		"description", "short_description", "image_url",
		"price_half_day", "price_full_day", "floor_type")

	before, after, err := patchByID[models.ConferenceHall](ctx, s.DB, id, set)
	if err != nil {
		return nil, err
	}
	discardImage(ctx, s.DB, s.Images, staleImage(before.ImageURL, after.ImageURL))
	return after, nil
}

func (s *ConferenceHallService) Delete(ctx context.Context, id uint) (bool, error) {
	hall, deleted, err := deleteByID[models.ConferenceHall](ctx, s.DB, id)
	if err != nil || !deleted {
		return deleted, err
	}
	discardImage(ctx, s.DB, s.Images, hall.ImageURL)
	return true, nil
}
