package models

// Tables lists every model in parent-to-child migration order.
var Tables = []interface{}{
	&Category{},
	&MenuItem{},
	&Room{},
	&Service{},
	&ConferenceHall{},
}

type DashboardStats struct {
	CategoriesCount      int64 `json:"categoriesCount"`
	ItemsCount           int64 `json:"itemsCount"`
	RoomsCount           int64 `json:"roomsCount"`
	ServicesCount        int64 `json:"servicesCount"`
	ConferenceHallsCount int64 `json:"conferenceHallsCount"`
}
