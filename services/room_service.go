package services

import (
	"context"

	"gorm.io/gorm"

	"comfyinn-backend/models"
)

const defaultRoomCapacity = 2

type RoomService struct {
	DB     *gorm.DB
	Images ImageStore
}

func NewRoomService(db *gorm.DB, images ImageStore) *RoomService {
	return &RoomService{DB: db, Images: images}
}

func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	rooms := []models.Room{}
	err := s.DB.WithContext(ctx).
		Order("sort_order ASC, price_per_night ASC").
		Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) ListAvailable(ctx context.Context) ([]models.Room, error) {
	rooms := []models.Room{}
	err := s.DB.WithContext(ctx).
		Where("is_available = ?", true).
		Order("sort_order ASC, price_per_night ASC").
		Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	return findByID[models.Room](ctx, s.DB, id)
}

func (s *RoomService) Create(ctx context.Context, in models.RoomInput) (*models.Room, error) {
	if err := checkRoomFacets(in.RoomType, in.BedType, in.MealPlan); err != nil {
		return nil, err
	}
	room := models.Room{
		Name:        in.Name,
		Description: optionalText(in.Description),
		ImageURL:    optionalText(in.ImageURL),
		Capacity:    intOr(in.Capacity, defaultRoomCapacity),
		Amenities:   stringList(in.Amenities),
		IsAvailable: boolOr(in.IsAvailable, true),
		SortOrder:   intOr(in.SortOrder, 0),
		RoomType:    in.RoomType,
		BedType:     in.BedType,
		MealPlan:    in.MealPlan,
	}
	if in.PricePerNight != nil {
		room.PricePerNight = *in.PricePerNight
	}
	if room.Capacity == 0 {
		room.Capacity = defaultRoomCapacity
	}
	if err := s.DB.WithContext(ctx).Create(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) Update(ctx context.Context, id uint, p models.RoomPatch) (*models.Room, error) {
	if err := checkRoomFacets(deref(p.RoomType), deref(p.BedType), deref(p.MealPlan)); err != nil {
		return nil, err
	}
	set := patchSet{}
	set.setText("name", p.Name)
	set.setText("description", p.Description)
	set.setFloat("price_per_night", p.PricePerNight)
	set.setText("image_url", p.ImageURL)
	set.setInt("capacity", p.Capacity)
	set.setList("amenities", p.Amenities)
	set.setBool("is_available", p.IsAvailable)
	set.setInt("sort_order", p.SortOrder)
	set.setText("room_type", p.RoomType)
	set.setText("bed_type", p.BedType)
	set.setText("meal_plan", p.MealPlan)
	set.clearColumns(p.Clear, "description", "image_url")
	// Clearing an explicit facet hands it back to the name.
	for _, name := range p.Clear {
		switch name {
		case "room_type", "bed_type", "meal_plan":
			set[name] = ""
		}
	}

	before, after, err := patchByID[models.Room](ctx, s.DB, id, set)
	if err != nil {
		return nil, err
	}
	discardImage(ctx, s.DB, s.Images, staleImage(before.ImageURL, after.ImageURL))
	return after, nil
}

func (s *RoomService) Delete(ctx context.Context, id uint) (bool, error) {
	room, deleted, err := deleteByID[models.Room](ctx, s.DB, id)
	if err != nil || !deleted {
		return deleted, err
	}
	discardImage(ctx, s.DB, s.Images, room.ImageURL)
	return true, nil
}

// Facets describes the filter options offered for the available rooms.
func (s *RoomService) Facets(ctx context.Context) (models.RoomFacets, error) {
	rooms, err := s.ListAvailable(ctx)
	if err != nil {
		return models.RoomFacets{}, err
	}
	return DeriveRoomFacets(rooms), nil
}

// Search filters the available rooms and returns them cheapest first.
func (s *RoomService) Search(ctx context.Context, f models.RoomFilter) ([]models.Room, error) {
	rooms, err := s.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return FilterRooms(rooms, f), nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
