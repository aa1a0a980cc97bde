package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"comfyinn-backend/models"
)

type CategoryService struct {
	DB     *gorm.DB
	Images ImageStore
}

func NewCategoryService(db *gorm.DB, images ImageStore) *CategoryService {
	return &CategoryService{DB: db, Images: images}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := s.DB.WithContext(ctx).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	return categories, err
}

func (s *CategoryService) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return findByID[models.Category](ctx, s.DB, id)
}

func (s *CategoryService) Create(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	category := models.Category{
		Name:        in.Name,
		Description: optionalText(in.Description),
		ImageURL:    optionalText(in.ImageURL),
		SortOrder:   intOr(in.SortOrder, 0),
	}
	if err := s.DB.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, p models.CategoryPatch) (*models.Category, error) {
	set := patchSet{}
	set.setText("name", p.Name)
	set.setText("description", p.Description)
	set.setText("image_url", p.ImageURL)
	set.setInt("sort_order", p.SortOrder)
	set.clearColumns(p.Clear, "description", "image_url")

	before, after, err := patchByID[models.Category](ctx, s.DB, id, set)
	if err != nil {
		return nil, err
	}
	discardImage(ctx, s.DB, s.Images, staleImage(before.ImageURL, after.ImageURL))
	return after, nil
}

// Delete removes a category together with its menu items.
func (s *CategoryService) Delete(ctx context.Context, id uint) (bool, error) {
	var (
		category models.Category
		items    []models.MenuItem
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, id).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Find(&items).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	seen := map[string]bool{}
	for _, url := range append([]*string{category.ImageURL}, itemImages(items)...) {
		if url == nil || seen[*url] {
			continue
		}
		seen[*url] = true
		discardImage(ctx, s.DB, s.Images, url)
	}
	return true, nil
}

// Menu returns every category with its available items, both in display order.
// Categories without available items are kept so the menu shows them as empty.
func (s *CategoryService) Menu(ctx context.Context) ([]models.MenuSection, error) {
	categories, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var items []models.MenuItem
	if err := s.DB.WithContext(ctx).
		Where("is_available = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	byCategory := make(map[uint][]models.MenuItem, len(categories))
	for _, item := range items {
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], item)
	}

	sections := make([]models.MenuSection, 0, len(categories))
	for _, c := range categories {
		list := byCategory[c.ID]
		if list == nil {
			list = []models.MenuItem{}
		}
		sections = append(sections, models.MenuSection{Category: c, Items: list})
	}
	return sections, nil
}

func itemImages(items []models.MenuItem) []*string {
	out := make([]*string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ImageURL)
	}
	return out
}
