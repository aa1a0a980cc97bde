package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"comfyinn-backend/models"
)

// facetOption is one selectable value of a facet and the name token that implies it.
type facetOption struct {
	Label string
	Token string
}

var (
	roomTypeOptions = []facetOption{
		{Label: "Standard", Token: "Standard"},
		{Label: "Deluxe", Token: "Deluxe"},
		{Label: "Twin", Token: "Twin"},
	}
	bedTypeOptions = []facetOption{
		{Label: "Single", Token: "Single"},
		{Label: "Double", Token: "Double"},
		{Label: "Twin", Token: "Twin Room"},
	}
	mealPlanOptions = []facetOption{
		{Label: "Bed Only", Token: "Bed Only"},
		{Label: "Bed & Breakfast", Token: "Bed & Breakfast"},
		{Label: "Half Board", Token: "Half Board"},
		{Label: "Full Board", Token: "Full Board"},
	}
)

// ErrInvalidFacet marks a room_type, bed_type or meal_plan outside its vocabulary.
var ErrInvalidFacet = errors.New("invalid room facet")

// checkFacet accepts "" (read the facet from the name) or one of the labels.
func checkFacet(column, value string, options []facetOption) error {
	if value == "" {
		return nil
	}
	labels := make([]string, 0, len(options))
	for _, opt := range options {
		if opt.Label == value {
			return nil
		}
		labels = append(labels, opt.Label)
	}
	return fmt.Errorf("%w: %s %q is not one of %s", ErrInvalidFacet, column, value, strings.Join(labels, ", "))
}

func checkRoomFacets(roomType, bedType, mealPlan string) error {
	return errors.Join(
		checkFacet("room_type", roomType, roomTypeOptions),
		checkFacet("bed_type", bedType, bedTypeOptions),
		checkFacet("meal_plan", mealPlan, mealPlanOptions),
	)
}

// hasFacet reports whether a room carries label. An explicit value wins; without one
// the room name is searched for the label's token.
func hasFacet(explicit, name, label string, options []facetOption) bool {
	if explicit != "" {
		return explicit == label
	}
	for _, opt := range options {
		if opt.Label == label && strings.Contains(name, opt.Token) {
			return true
		}
	}
	return false
}

func matchesAny(explicit, name string, selected []string, options []facetOption) bool {
	if len(selected) == 0 {
		return true
	}
	for _, label := range selected {
		if hasFacet(explicit, name, label, options) {
			return true
		}
	}
	return false
}

func presentLabels(rooms []models.Room, options []facetOption, explicit func(models.Room) string) []string {
	labels := []string{}
	for _, opt := range options {
		for _, r := range rooms {
			if hasFacet(explicit(r), r.Name, opt.Label, options) {
				labels = append(labels, opt.Label)
				break
			}
		}
	}
	return labels
}

// DeriveRoomFacets lists the facet values that occur in rooms, in vocabulary order,
// together with the price span. Values no room carries are left out.
func DeriveRoomFacets(rooms []models.Room) models.RoomFacets {
	facets := models.RoomFacets{
		RoomTypes: presentLabels(rooms, roomTypeOptions, func(r models.Room) string { return r.RoomType }),
		BedTypes:  presentLabels(rooms, bedTypeOptions, func(r models.Room) string { return r.BedType }),
		MealPlans: presentLabels(rooms, mealPlanOptions, func(r models.Room) string { return r.MealPlan }),
	}
	for i, r := range rooms {
		if i == 0 || r.PricePerNight < facets.MinPrice {
			facets.MinPrice = r.PricePerNight
		}
		if i == 0 || r.PricePerNight > facets.MaxPrice {
			facets.MaxPrice = r.PricePerNight
		}
	}
	return facets
}

// FilterRooms keeps the rooms matching f and sorts them by price, then name.
// A room without a bed-type token is dropped whenever a bed type is selected.
func FilterRooms(rooms []models.Room, f models.RoomFilter) []models.Room {
	out := []models.Room{}
	for _, r := range rooms {
		if !matchesAny(r.RoomType, r.Name, f.RoomTypes, roomTypeOptions) ||
			!matchesAny(r.BedType, r.Name, f.BedTypes, bedTypeOptions) ||
			!matchesAny(r.MealPlan, r.Name, f.MealPlans, mealPlanOptions) {
			continue
		}
		if f.MinPrice != nil && r.PricePerNight < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && r.PricePerNight > *f.MaxPrice {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PricePerNight != out[j].PricePerNight {
			return out[i].PricePerNight < out[j].PricePerNight
		}
		return out[i].Name < out[j].Name
	})
	return out
}
