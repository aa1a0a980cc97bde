package config

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"comfyinn-backend/models"
)

func ptr[T any](v T) *T { return &v }

// defaultHalls are the venues listed on the conference page before halls were editable.
func defaultHalls() []models.ConferenceHall {
	hall := func(order int, name, short string, capacity int, fullDay, length, width float64, features []string) models.ConferenceHall {
		return models.ConferenceHall{
			Name:               name,
			ShortDescription:   ptr(short),
			Capacity:           capacity,
			PricePerHour:       fullDay / 8,
			PriceFullDay:       ptr(fullDay),
			Features:           features,
			Amenities:          datatypes.JSONSlice[string]{},
			IncludedServices:   datatypes.JSONSlice[string]{},
			TechnicalEquipment: datatypes.JSONSlice[string]{},
			SeatingStyles:      datatypes.JSONSlice[string]{},
			Dimensions: models.HallDimensions{
				SquareMeters: length * width,
				Length:       length,
				Width:        width,
			},
			MaxPresenters: 1,
			IsAvailable:   true,
			IsFeatured:    order == 0,
			DisplayOrder:  order,
		}
	}

	return []models.ConferenceHall{
		hall(0, "Kerio Hall", "Large conference venue with stage and seating", 125, 20000, 20, 15,
			[]string{"Large projector screen", "Professional stage", "PA system", "WiFi & streaming capability"}),
		hall(1, "Plateau Hall", "Versatile conference space with movable partitions", 80, 18000, 18, 12,
			[]string{"HD Projector & screen", "Professional sound system", "Movable partitions for flexibility",
				"Natural lighting options", "High-speed WiFi", "Catering preparation area"}),
		hall(2, "Sisibo Hall", "Medium-sized conference room with modern amenities", 40, 15000, 15, 10,
			[]string{"Whiteboards & flip charts", "Comfortable theater seating", "Multiple power outlets", "Breakout area access"}),
		hall(3, "Board Room", "Executive meeting room with video conferencing", 20, 10000, 8, 6,
			[]string{"Executive conference table", "Leather executive chairs", "Smart board display", "Soundproof walls"}),
	}
}

// SeedDatabase inserts the default conference halls into an empty table.
func SeedDatabase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ConferenceHall{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count conference halls: %w", err)
	}
	if count > 0 {
		zap.L().Info("conference halls already seeded", zap.Int64("count", count))
		return nil
	}

	halls := defaultHalls()
	if err := db.Create(&halls).Error; err != nil {
		return fmt.Errorf("seed conference halls: %w", err)
	}
	zap.L().Info("conference halls seeded", zap.Int("count", len(halls)))
	return nil
}
