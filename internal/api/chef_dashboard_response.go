package api

// swagger:model api.ChefDashboardResponse
type ChefDashboardResponse struct {
	Today       []ReservationResponse `json:"today"`
	Upcoming    []ReservationResponse `json:"upcoming"`
	TodayGuests int                   `json:"today_guests" example:"12"`
}
