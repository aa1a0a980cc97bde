package services

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no row has the requested id.
var ErrNotFound = errors.New("record not found")

func findByID[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// patchByID applies updates to one row inside a transaction and returns the row
// as it was before and after the change.
func patchByID[T any](ctx context.Context, db *gorm.DB, id uint, updates map[string]interface{}) (*T, *T, error) {
	var before, after T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&before, id).Error; err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(new(T)).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.First(&after, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	return &before, &after, nil
}

// deleteByID removes one row and returns it. A missing row is (nil, false, nil).
func deleteByID[T any](ctx context.Context, db *gorm.DB, id uint) (*T, bool, error) {
	var row T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, id).Error; err != nil {
			return err
		}
		return tx.Delete(new(T), id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &row, true, nil
}

// patchSet collects column assignments for a partial update. Nil values and empty
// strings are skipped, so an absent field keeps its stored value.
type patchSet map[string]interface{}

func (p patchSet) setText(column string, v *string) {
	if v != nil && *v != "" {
		p[column] = *v
	}
}

func (p patchSet) setInt(column string, v *int) {
	if v != nil {
		p[column] = *v
	}
}

func (p patchSet) setUint(column string, v *uint) {
	if v != nil {
		p[column] = *v
	}
}

func (p patchSet) setFloat(column string, v *float64) {
	if v != nil {
		p[column] = *v
	}
}

func (p patchSet) setBool(column string, v *bool) {
	if v != nil {
		p[column] = *v
	}
}

func (p patchSet) setList(column string, v *[]string) {
	if v != nil {
		p[column] = stringList(*v)
	}
}

// clearColumns resets the requested nullable columns to NULL. Names outside nullable are ignored.
func (p patchSet) clearColumns(requested []string, nullable ...string) {
	for _, name := range requested {
		for _, column := range nullable {
			if name == column {
				p[column] = nil
				break
			}
		}
	}
}

func optionalText(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	s := *v
	return &s
}

func stringList(v []string) datatypes.JSONSlice[string] {
	if v == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.JSONSlice[string](v)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
