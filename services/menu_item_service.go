package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"comfyinn-backend/models"
)

type MenuItemService struct {
	DB     *gorm.DB
	Images ImageStore
}

func NewMenuItemService(db *gorm.DB, images ImageStore) *MenuItemService {
	return &MenuItemService{DB: db, Images: images}
}

// withCategoryName selects menu items joined with the name of their category.
func (s *MenuItemService) withCategoryName(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Model(&models.MenuItem{}).
		Select("menu_items.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = menu_items.category_id")
}

func (s *MenuItemService) List(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	err := s.withCategoryName(ctx).
		Order("menu_items.sort_order ASC, menu_items.name ASC").
		Find(&items).Error
	return items, err
}

// ListAvailableByCategory returns the items of one category shown on the public menu.
func (s *MenuItemService) ListAvailableByCategory(ctx context.Context, categoryID uint) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	err := s.DB.WithContext(ctx).
		Where("category_id = ? AND is_available = ?", categoryID, true).
		Order("sort_order ASC, name ASC").
		Find(&items).Error
	return items, err
}

func (s *MenuItemService) GetByID(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.withCategoryName(ctx).
		Where("menu_items.id = ?", id).
		Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuItemService) Create(ctx context.Context, in models.MenuItemInput) (*models.MenuItem, error) {
	item := models.MenuItem{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: optionalText(in.Description),
		ImageURL:    optionalText(in.ImageURL),
		Tags:        stringList(in.Tags),
		IsAvailable: boolOr(in.IsAvailable, true),
		SortOrder:   intOr(in.SortOrder, 0),
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Create(&item).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, item.ID)
}

func (s *MenuItemService) Update(ctx context.Context, id uint, p models.MenuItemPatch) (*models.MenuItem, error) {
	set := patchSet{}
	set.setUint("category_id", p.CategoryID)
	set.setText("name", p.Name)
	set.setText("description", p.Description)
	set.setFloat("price", p.Price)
	set.setText("image_url", p.ImageURL)
	set.setList("tags", p.Tags)
	set.setBool("is_available", p.IsAvailable)
	set.setInt("sort_order", p.SortOrder)
	set.clearColumns(p.Clear, "description", "image_url")

	before, after, err := patchByID[models.MenuItem](ctx, s.DB, id, set)
	if err != nil {
		return nil, err
	}
	discardImage(ctx, s.DB, s.Images, staleImage(before.ImageURL, after.ImageURL))
	return s.GetByID(ctx, id)
}

func (s *MenuItemService) Delete(ctx context.Context, id uint) (bool, error) {
	item, deleted, err := deleteByID[models.MenuItem](ctx, s.DB, id)
	if err != nil || !deleted {
		return deleted, err
	}
	discardImage(ctx, s.DB, s.Images, item.ImageURL)
	return true, nil
}
